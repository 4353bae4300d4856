// Package flash models one-shot, kind-keyed server messages: at most
// one message per severity kind, shown once and cleared by the
// producer.
//
// The package deliberately knows nothing about toasts. It exposes a
// Map snapshot type, a read-only Source interface for reconcilers to
// poll, and an HMAC-signed CookieStore that carries a pending map
// across a redirect and consumes it on the next render.
//
// Typical producer side:
//
//	store, _ := flash.NewCookieStore(secret)
//	store.Add(w, r, "success", "Profile updated")
//	http.Redirect(w, r, "/settings", http.StatusSeeOther)
//
// And the consumer side, on the following request:
//
//	msgs, _ := store.Consume(w, r)
//	// msgs == flash.Map{"success": "Profile updated"}
package flash
