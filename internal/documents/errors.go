package documents

import "errors"

var (
	// ErrNotFound indicates the document does not exist for the user.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidInput indicates a malformed argument.
	ErrInvalidInput = errors.New("invalid input")
)
