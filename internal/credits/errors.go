package credits

import "errors"

var (
	// ErrNotFound indicates the user has no credit account row.
	ErrNotFound = errors.New("credit account not found")
	// ErrInvalidInput indicates a malformed argument.
	ErrInvalidInput = errors.New("invalid input")
)
