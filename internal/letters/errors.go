package letters

import "errors"

var (
	// ErrNotFound indicates the letter does not exist.
	ErrNotFound = errors.New("letter not found")
	// ErrForbidden indicates the letter belongs to another user.
	ErrForbidden = errors.New("letter access denied")
	// ErrUnauthenticated indicates the caller has no identity.
	ErrUnauthenticated = errors.New("caller is not authenticated")
	// ErrEmptyPrompt indicates the generation input failed validation.
	ErrEmptyPrompt = errors.New("prompt is required")
	// ErrPaymentRequired indicates the caller has no credits and no valid
	// subscription.
	ErrPaymentRequired = errors.New("user has not paid or is out of credits")
	// ErrUpstream wraps completion provider failures.
	ErrUpstream = errors.New("completion provider failed")
)
