package toast

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/dmitrymomot/toastkit/pkg/flash"
)

// Manager is the producer-facing surface: it validates and emits
// records into a Store, and reconciles an external flash source into
// the same store without becoming a second source of truth.
type Manager struct {
	store  *Store
	flash  flash.Source
	cfg    Config
	logger *slog.Logger

	mu         sync.Mutex
	reconciled map[string]flashState
}

type flashState struct {
	rev     uint64
	message string
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger for the Manager.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithStore supplies a pre-built store instead of the default one.
func WithStore(s *Store) ManagerOption {
	return func(m *Manager) {
		if s != nil {
			m.store = s
		}
	}
}

// WithFlashSource attaches the external one-shot flash source the
// Manager reconciles against. Without one, ReconcileFlash is a no-op.
func WithFlashSource(src flash.Source) ManagerOption {
	return func(m *Manager) {
		m.flash = src
	}
}

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) ManagerOption {
	return func(m *Manager) {
		m.cfg = cfg
	}
}

// NewManager creates a toast manager.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		cfg:        DefaultConfig(),
		logger:     slog.Default(),
		reconciled: make(map[string]flashState),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		corner := m.cfg.Corner
		if corner == "" {
			corner = CornerTopRight
		}
		m.store = NewStore(WithDefaultCorner(corner))
	}

	return m
}

// Option configures a single Emit call.
type Option func(*emitOptions)

type emitOptions struct {
	n     Notification
	front bool
}

// WithID requests an update of an existing record instead of a fresh
// insert.
func WithID(id string) Option {
	return func(o *emitOptions) { o.n.ID = id }
}

// WithTitle sets the optional heading.
func WithTitle(title string) Option {
	return func(o *emitOptions) { o.n.Title = title }
}

// WithIcon attaches an opaque icon renderer.
func WithIcon(r Renderer) Option {
	return func(o *emitOptions) { o.n.Icon = r }
}

// WithAction attaches an opaque call-to-action renderer.
func WithAction(r Renderer) Option {
	return func(o *emitOptions) { o.n.Action = r }
}

// WithBody attaches an opaque custom body renderer, replacing the
// default message rendering.
func WithBody(r Renderer) Option {
	return func(o *emitOptions) { o.n.Body = r }
}

// WithDuration sets the auto-dismiss delay. On an update it restarts
// the expiry clock from now.
func WithDuration(d time.Duration) Option {
	return func(o *emitOptions) { o.n.Duration = &d }
}

// WithPersist cancels any pending auto-dismiss timer, making the
// record stay until explicitly dismissed.
func WithPersist() Option {
	return func(o *emitOptions) {
		var zero time.Duration
		o.n.Duration = &zero
	}
}

// WithCorner targets a specific container.
func WithCorner(c Corner) Option {
	return func(o *emitOptions) { o.n.Corner = c }
}

// WithBringToFront promotes the record to the head of its container's
// display order.
func WithBringToFront() Option {
	return func(o *emitOptions) { o.front = true }
}

// Emit validates and upserts a record, returning its resolved ID.
// The only failures are caller contract violations: an empty message
// (ErrInvalidNotification) or a kind outside the configured allow-set
// (ErrKindNotAllowed).
func (m *Manager) Emit(ctx context.Context, kind Kind, message string, opts ...Option) (string, error) {
	var o emitOptions
	for _, opt := range opts {
		opt(&o)
	}

	n := o.n
	n.Kind = kind
	n.Message = message

	if kind == "" {
		return "", fmt.Errorf("%w: kind is required", ErrInvalidNotification)
	}
	if err := n.Validate(); err != nil {
		return "", err
	}
	if len(m.cfg.Kinds) > 0 && !slices.Contains(m.cfg.Kinds, kind) {
		return "", fmt.Errorf("%w: %q", ErrKindNotAllowed, kind)
	}

	// Config default applies only to fresh inserts with no explicit
	// duration; updates keep whatever timer is running.
	if n.ID == "" && n.Duration == nil && m.cfg.DefaultDuration > 0 {
		d := m.cfg.DefaultDuration
		n.Duration = &d
	}

	var uo []UpsertOption
	if o.front {
		uo = append(uo, BringToFront())
	}

	id := m.store.Upsert(n, uo...)

	m.logger.LogAttrs(ctx, slog.LevelDebug, "toast emitted",
		slog.String("toast_id", id),
		slog.String("kind", string(kind)),
	)

	return id, nil
}

// Dismiss removes a record by ID. Dismissing an unknown ID is a no-op.
func (m *Manager) Dismiss(id string) {
	m.store.Remove(id)
}

// List returns the current records of one corner in display order.
func (m *Manager) List(corner Corner) []Notification {
	return m.store.List(corner)
}

// Subscribe registers a store change listener.
func (m *Manager) Subscribe(fn ListenerFunc) func() {
	return m.store.Subscribe(fn)
}

// Store returns the underlying toast store.
func (m *Manager) Store() *Store {
	return m.store
}

// Config returns the manager's effective configuration.
func (m *Manager) Config() Config {
	return m.cfg
}
