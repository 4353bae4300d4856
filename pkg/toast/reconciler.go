package toast

import (
	"context"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/toastkit/pkg/flash"
)

// flashIDPrefix namespaces the IDs of flash-derived records so that
// repeated reconciliation of the same flash entry is idempotent, even
// across a static-to-live display upgrade.
const flashIDPrefix = "flash-"

// FlashID derives the deterministic record identity for a flash kind.
// The scheme assumes at most one active flash message per kind.
func FlashID(kind string) string {
	return flashIDPrefix + kind
}

// ReconcileFlash diffs the attached flash source against the store:
// every occupied kind is upserted as a persistent record in the
// default corner, and kinds that disappeared from the source have
// their derived record removed, unless client-side logic modified it
// in the meantime. Reconciling an unchanged source emits no events.
func (m *Manager) ReconcileFlash(ctx context.Context) {
	if m.flash == nil || !m.cfg.ShowServerFlashes {
		return
	}

	snap := m.flash.Snapshot()

	m.mu.Lock()
	defer m.mu.Unlock()

	for kind, message := range snap {
		id := FlashID(kind)
		st, seen := m.reconciled[kind]

		if seen && st.message == message {
			if _, live := m.store.revOf(id); !live {
				// Dismissed by the user since we created it; do not
				// resurrect until the source carries a new message.
				continue
			}
		}

		prev, _ := m.store.revOf(id)

		m.store.Upsert(Notification{
			ID:      id,
			Kind:    Kind(kind),
			Message: message,
			Corner:  m.cfg.Corner,
		})

		rev, _ := m.store.revOf(id)
		if seen && rev == prev {
			// No-op pass: keep the revision of our last effective
			// write, so client-side modifications retain ownership.
			rev = st.rev
		}
		m.reconciled[kind] = flashState{rev: rev, message: message}
	}

	for kind, st := range m.reconciled {
		if _, occupied := snap[kind]; occupied {
			continue
		}

		id := FlashID(kind)
		if rev, live := m.store.revOf(id); live && rev == st.rev {
			m.store.Remove(id)
		}
		delete(m.reconciled, kind)
	}

	m.logger.LogAttrs(ctx, slog.LevelDebug, "flash reconciled",
		slog.Int("flash_kinds", len(snap)),
	)
}

// FlashNotifications converts a flash snapshot into display records
// for contexts with no live store (one-time server-side rendering).
// Records come out in canonical kind order so output is deterministic.
func FlashNotifications(m flash.Map, corner Corner) []Notification {
	if corner == "" {
		corner = CornerTopRight
	}

	kinds := make([]string, 0, len(m))
	for kind := range m {
		kinds = append(kinds, kind)
	}
	slices.SortFunc(kinds, compareKinds)

	out := make([]Notification, 0, len(kinds))
	for _, kind := range kinds {
		out = append(out, Notification{
			ID:      FlashID(kind),
			Kind:    Kind(kind),
			Message: m[kind],
			Corner:  corner,
		})
	}
	return out
}

// compareKinds orders the four built-in severities first, in their
// declaration order, then everything else alphabetically.
func compareKinds(a, b string) int {
	ai := slices.Index(Kinds(), Kind(a))
	bi := slices.Index(Kinds(), Kind(b))
	switch {
	case ai >= 0 && bi >= 0:
		return ai - bi
	case ai >= 0:
		return -1
	case bi >= 0:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
