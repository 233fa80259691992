package letters

import "time"

// GeneratedLetter is an immutable record of one successful completion
// call, owned by the requesting user.
type GeneratedLetter struct {
	ID        string
	UserID    string
	Content   string
	CreatedAt time.Time
}
