package flash

import "maps"

// Map is a one-shot, kind-keyed message snapshot: at most one message
// per severity kind. Producers fill it, show it once and clear it; the
// toast reconciler only ever reads it.
type Map map[string]string

// Clone returns an independent copy of the map.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	out := make(Map, len(m))
	maps.Copy(out, m)
	return out
}

// Source provides read-only snapshots of an external flash map.
// Implementations must not require the caller to mutate the source;
// clearing is the producer's job.
type Source interface {
	Snapshot() Map
}

// StaticSource is a Source over a fixed map. Useful for the static
// render context and for tests.
type StaticSource Map

// Snapshot returns a copy of the underlying map.
func (s StaticSource) Snapshot() Map {
	return Map(s).Clone()
}
