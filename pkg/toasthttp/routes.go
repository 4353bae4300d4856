package toasthttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// DismissHandler removes a record by the "id" form value. Unknown IDs
// are a no-op, mirroring store semantics; only a missing id parameter
// is a client error.
func DismissHandler(m *toast.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.FormValue("id")
		if id == "" {
			http.Error(w, "missing id", http.StatusBadRequest)
			return
		}

		m.Dismiss(id)
		w.WriteHeader(http.StatusNoContent)
	}
}

// Mount wires the toast routes onto a chi router: the SSE stream for
// the live context and the dismiss endpoint user actions post to.
func Mount(r chi.Router, m *toast.Manager, render CornerRenderer, opts ...StreamOption) {
	r.Get("/toasts/stream", StreamHandler(m, render, opts...))
	r.Post("/toasts/dismiss", DismissHandler(m))
}
