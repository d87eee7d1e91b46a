package domain

import "errors"

var (
	// ErrInvalidLocale is returned for any locale code outside the fixed
	// supported set. Rejected before touching persistence.
	ErrInvalidLocale = errors.New("invalid locale")

	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
)
