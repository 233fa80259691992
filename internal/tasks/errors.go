package tasks

import "errors"

var (
	// ErrNotFound indicates the task does not exist for the user.
	ErrNotFound = errors.New("task not found")
	// ErrInvalidInput indicates a malformed argument.
	ErrInvalidInput = errors.New("invalid input")
)
