package flash

import "errors"

var (
	// ErrNoSecret is returned when a cookie store is created without a
	// signing secret.
	ErrNoSecret = errors.New("no signing secret provided")

	// ErrSecretTooShort is returned when the signing secret does not
	// meet the minimum length requirement.
	ErrSecretTooShort = errors.New("signing secret too short")

	// ErrNoFlash is returned when the request carries no flash cookie.
	ErrNoFlash = errors.New("no flash messages")

	// ErrInvalidFlash is returned when the flash cookie payload is
	// malformed or its signature does not verify.
	ErrInvalidFlash = errors.New("invalid flash cookie")
)
