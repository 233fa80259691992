package letters

import "context"

// Repo defines persistence operations for generated letters.
type Repo interface {
	Create(ctx context.Context, letter GeneratedLetter) error
	GetByID(ctx context.Context, userID, letterID string) (GeneratedLetter, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]GeneratedLetter, error)
	DeleteByUser(ctx context.Context, userID string) (int, error)
}
