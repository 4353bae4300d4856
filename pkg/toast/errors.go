package toast

import "errors"

var (
	// ErrInvalidNotification is returned when a caller tries to emit a
	// record that violates the construction contract (e.g. no message).
	ErrInvalidNotification = errors.New("invalid notification")

	// ErrKindNotAllowed is returned when the emitted kind is not in the
	// configured allow-set.
	ErrKindNotAllowed = errors.New("notification kind not allowed")

	// ErrInvalidConfig is returned when the configuration fails to
	// parse or names unknown values.
	ErrInvalidConfig = errors.New("invalid toast config")
)
