package toasthttp

import (
	"log/slog"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// StreamOption configures a stream handler.
type StreamOption func(*streamConfig)

type streamConfig struct {
	logger *slog.Logger
}

// WithStreamLogger sets the logger used for stream delivery failures.
func WithStreamLogger(logger *slog.Logger) StreamOption {
	return func(c *streamConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// StreamHandler is the live presentation context: it subscribes to the
// manager's store, runs one flash reconcile pass on connect, pushes an
// initial render of all four corner containers, then re-patches
// containers over DataStar SSE after every store change until the
// request context ends.
func StreamHandler(m *toast.Manager, render CornerRenderer, opts ...StreamOption) http.HandlerFunc {
	cfg := streamConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if render == nil {
		render = DefaultRenderer
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sse := datastar.NewSSE(w, r)

		// Coalescing wakeup: the buffered signal collapses a burst of
		// mutations into one patch cycle instead of one per event.
		wake := make(chan struct{}, 1)

		unsubscribe := m.Subscribe(func(toast.Event) {
			select {
			case wake <- struct{}{}:
			default:
			}
		})
		defer unsubscribe()

		// Merge any pending server flashes before the first paint so a
		// static-to-live upgrade shows them exactly once.
		m.ReconcileFlash(ctx)

		patchAll := func() error {
			for _, corner := range toast.Corners() {
				err := sse.PatchElementTempl(
					render(corner, m.List(corner)),
					datastar.WithSelector("#"+ContainerID(corner)),
					datastar.WithMode(datastar.ElementPatchModeOuter),
				)
				if err != nil {
					return err
				}
			}
			return nil
		}

		if err := patchAll(); err != nil {
			cfg.logger.LogAttrs(ctx, slog.LevelDebug, "toast stream closed during initial render",
				slog.Any("error", err),
			)
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-wake:
				if err := patchAll(); err != nil {
					cfg.logger.LogAttrs(ctx, slog.LevelDebug, "toast stream closed",
						slog.Any("error", err),
					)
					return
				}
			}
		}
	}
}
