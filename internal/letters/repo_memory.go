package letters

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores generated letters in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]GeneratedLetter
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]GeneratedLetter)}
}

// Create stores the letter.
func (r *MemoryRepo) Create(ctx context.Context, letter GeneratedLetter) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[letter.ID] = letter
	return nil
}

// GetByID returns a letter by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, letterID string) (GeneratedLetter, error) {
	if err := ctx.Err(); err != nil {
		return GeneratedLetter{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	letter, ok := r.byID[letterID]
	if !ok {
		return GeneratedLetter{}, ErrNotFound
	}
	if letter.UserID != userID {
		return GeneratedLetter{}, ErrForbidden
	}
	return letter, nil
}

// ListByUser returns a user's letters, newest first, with limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]GeneratedLetter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	var out []GeneratedLetter
	for _, letter := range r.byID {
		if letter.UserID == userID {
			out = append(out, letter)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if offset >= len(out) {
		return []GeneratedLetter{}, nil
	}
	end := len(out)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return out[offset:end], nil
}

// ClaimGuest reassigns letters owned by a guest user to an authenticated user.
func (r *MemoryRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for id, letter := range r.byID {
		if letter.UserID == guestUserID {
			letter.UserID = authedUserID
			r.byID[id] = letter
			count++
		}
	}
	return count, nil
}

// DeleteByUser removes all letters owned by a user and reports the count.
func (r *MemoryRepo) DeleteByUser(ctx context.Context, userID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for id, letter := range r.byID {
		if letter.UserID == userID {
			delete(r.byID, id)
			count++
		}
	}
	return count, nil
}

var _ Repo = (*MemoryRepo)(nil)
