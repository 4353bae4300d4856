// Package toast manages ephemeral, corner-grouped notification state
// for live web UIs: an ordered in-memory store with upsert-by-identity
// semantics, auto-dismiss timers, synchronous change listeners, and a
// reconciler that merges one-shot server flash messages into the same
// store without double-emitting across reconnects.
//
// The package holds state only; rendering and transport are external
// collaborators. Records carry opaque Renderer references the store
// never inspects, and transports attach through Subscribe.
//
// # Basic Usage
//
//	m := toast.NewManager()
//
//	id, err := m.Emit(ctx, toast.KindInfo, "Saved",
//	    toast.WithDuration(3*time.Second),
//	)
//
//	// Update the same record in place.
//	_, err = m.Emit(ctx, toast.KindSuccess, "Saved",
//	    toast.WithID(id),
//	    toast.WithTitle("Done"),
//	)
//
//	m.Dismiss(id)
//
// # Flash Reconciliation
//
// Attach a flash.Source and call ReconcileFlash whenever the source
// may have changed. Records derived from flashes use deterministic
// IDs, so repeated passes never duplicate them:
//
//	m := toast.NewManager(toast.WithFlashSource(src))
//	m.ReconcileFlash(ctx)
package toast
