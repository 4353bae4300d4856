package toast_test

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dmitrymomot/toastkit/pkg/flash"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

func ExampleManager_Emit() {
	ctx := context.Background()

	m := toast.NewManager()

	// Emit a toast that dismisses itself after three seconds
	id, err := m.Emit(ctx, toast.KindInfo, "Saved",
		toast.WithDuration(3*time.Second),
	)
	if err != nil {
		log.Fatal(err)
	}

	// Update the same record in place; omitted fields are preserved
	_, err = m.Emit(ctx, toast.KindInfo, "Saved",
		toast.WithID(id),
		toast.WithTitle("Done"),
	)
	if err != nil {
		log.Fatal(err)
	}

	for _, n := range m.List("") {
		fmt.Printf("%s: %s (%s)\n", n.Title, n.Message, n.Kind)
	}
	// Output: Done: Saved (info)
}

func ExampleManager_ReconcileFlash() {
	ctx := context.Background()

	// The flash source is one-shot server state, e.g. read from a
	// signed cookie right after a redirect.
	src := flash.StaticSource{"success": "Profile updated"}

	m := toast.NewManager(toast.WithFlashSource(src))

	// Reconciling twice never duplicates: flash-derived records have
	// deterministic identities.
	m.ReconcileFlash(ctx)
	m.ReconcileFlash(ctx)

	for _, n := range m.List("") {
		fmt.Printf("%s: %s\n", n.ID, n.Message)
	}
	// Output: flash-success: Profile updated
}

func ExampleStore_Subscribe() {
	s := toast.NewStore()

	unsubscribe := s.Subscribe(func(e toast.Event) {
		fmt.Printf("%s %s\n", e.Type, e.Notification.Message)
	})
	defer unsubscribe()

	id := s.Upsert(toast.Notification{Kind: toast.KindInfo, Message: "Saved"})
	s.Remove(id)
	// Output:
	// upserted Saved
	// removed Saved
}
