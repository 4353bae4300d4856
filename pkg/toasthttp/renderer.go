package toasthttp

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// CornerRenderer produces the markup for one corner container given
// its current records. The returned component must render the
// container element itself, with ContainerID(corner) as its element
// id, so live patches can replace the container wholesale.
type CornerRenderer func(corner toast.Corner, items []toast.Notification) templ.Component

// ContainerID returns the DOM element id of a corner container.
func ContainerID(corner toast.Corner) string {
	return "toasts-" + string(corner)
}

// DefaultRenderer renders minimal, unstyled containers. It honors the
// opaque renderer references on each record: a Body renderer replaces
// the default message markup, Icon and Action render before and after
// it. Applications normally supply their own templ components instead.
func DefaultRenderer(corner toast.Corner, items []toast.Notification) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="%s" data-corner="%s">`, ContainerID(corner), corner); err != nil {
			return err
		}

		for _, n := range items {
			if err := renderToast(ctx, w, n); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func renderToast(ctx context.Context, w io.Writer, n toast.Notification) error {
	if _, err := fmt.Fprintf(w, `<div class="toast toast-%s" data-id="%s">`, n.Kind, html.EscapeString(n.ID)); err != nil {
		return err
	}

	if n.Icon != nil {
		if err := n.Icon.Render(ctx, w); err != nil {
			return err
		}
	}

	if n.Title != "" {
		if _, err := fmt.Fprintf(w, `<strong>%s</strong>`, html.EscapeString(n.Title)); err != nil {
			return err
		}
	}

	if n.Body != nil {
		if err := n.Body.Render(ctx, w); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintf(w, `<span>%s</span>`, html.EscapeString(n.Message)); err != nil {
		return err
	}

	if n.Action != nil {
		if err := n.Action.Render(ctx, w); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, `</div>`)
	return err
}
