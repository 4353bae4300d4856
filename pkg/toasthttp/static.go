package toasthttp

import (
	"net/http"

	"github.com/dmitrymomot/toastkit/pkg/flash"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// StaticHandler is the presentation context for surfaces with no live
// update channel: it renders the current flash snapshot once as plain
// HTML. There is no store behind it, so auto-dismiss timers and
// client-originated emits are unavailable in this mode.
func StaticHandler(src flash.Source, render CornerRenderer, corner toast.Corner) http.HandlerFunc {
	if render == nil {
		render = DefaultRenderer
	}
	if corner == "" {
		corner = toast.CornerTopRight
	}

	return func(w http.ResponseWriter, r *http.Request) {
		items := toast.FlashNotifications(src.Snapshot(), corner)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := render(corner, items).Render(r.Context(), w); err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}
