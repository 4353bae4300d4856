package toast

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Kind represents the toast severity/category.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Kinds returns the four built-in severities.
func Kinds() []Kind {
	return []Kind{KindInfo, KindSuccess, KindWarning, KindError}
}

// Corner identifies one of the four screen-corner containers a toast
// can be displayed in. The empty value resolves to the store's default
// corner at upsert time.
type Corner string

const (
	CornerTopLeft     Corner = "top-left"
	CornerTopRight    Corner = "top-right"
	CornerBottomLeft  Corner = "bottom-left"
	CornerBottomRight Corner = "bottom-right"
)

// Corners returns all four corner identities.
func Corners() []Corner {
	return []Corner{CornerTopLeft, CornerTopRight, CornerBottomLeft, CornerBottomRight}
}

// Valid reports whether c names a known corner.
func (c Corner) Valid() bool {
	switch c {
	case CornerTopLeft, CornerTopRight, CornerBottomLeft, CornerBottomRight:
		return true
	}
	return false
}

// Renderer is an opaque render capability supplied by the caller.
// It matches github.com/a-h/templ.Component without importing it, so
// any templ component (or hand-written equivalent) satisfies it.
// The store never inspects or invokes renderers; they are forwarded
// untouched to the rendering layer.
type Renderer interface {
	Render(ctx context.Context, w io.Writer) error
}

// Notification is a single displayable toast message.
//
// Duration is a pointer so that a partial update can distinguish
// "leave the running timer alone" (nil) from "cancel the timer and
// make the record persistent" (explicit zero).
type Notification struct {
	ID       string         `json:"id"`
	Kind     Kind           `json:"kind"`
	Title    string         `json:"title,omitempty"`
	Message  string         `json:"message"`
	Icon     Renderer       `json:"-"`
	Action   Renderer       `json:"-"`
	Body     Renderer       `json:"-"`
	Duration *time.Duration `json:"duration,omitempty"`
	Corner   Corner         `json:"corner"`
}

// Validate checks the caller contract for a freshly emitted record.
func (n Notification) Validate() error {
	if n.Message == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidNotification)
	}
	if n.Corner != "" && !n.Corner.Valid() {
		return fmt.Errorf("%w: unknown corner %q", ErrInvalidNotification, n.Corner)
	}
	return nil
}

// Persistent reports whether the record has no auto-dismiss delay.
func (n Notification) Persistent() bool {
	return n.Duration == nil || *n.Duration <= 0
}
