package semtext

import "errors"

var (
	// ErrEmpty is returned when a specification requires non-blank input.
	ErrEmpty = errors.New("value must not be empty")

	// ErrInvalidEmail is returned when input is not a usable email address.
	ErrInvalidEmail = errors.New("invalid email address")
)
