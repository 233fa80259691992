package tasks

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of TasksRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Task
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Task)}
}

// Create stores the task.
func (r *MemoryRepo) Create(ctx context.Context, task Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[task.ID] = task
	return nil
}

// GetByID returns a task by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, taskID string) (Task, error) {
	if err := ctx.Err(); err != nil {
		return Task{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	task, ok := r.byID[taskID]
	if !ok || task.UserID != userID {
		return Task{}, ErrNotFound
	}
	return task, nil
}

// ListByUser returns a user's tasks, newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	var out []Task
	for _, task := range r.byID {
		if task.UserID == userID {
			out = append(out, task)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Update replaces the stored task if it belongs to the user.
func (r *MemoryRepo) Update(ctx context.Context, task Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byID[task.ID]
	if !ok || existing.UserID != task.UserID {
		return ErrNotFound
	}
	r.byID[task.ID] = task
	return nil
}

// Delete removes a task owned by the user.
func (r *MemoryRepo) Delete(ctx context.Context, userID, taskID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.byID[taskID]
	if !ok || task.UserID != userID {
		return ErrNotFound
	}
	delete(r.byID, taskID)
	return nil
}

// DeleteByUser removes all tasks owned by a user and reports the count.
func (r *MemoryRepo) DeleteByUser(ctx context.Context, userID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for id, task := range r.byID {
		if task.UserID == userID {
			delete(r.byID, id)
			count++
		}
	}
	return count, nil
}

var _ TasksRepo = (*MemoryRepo)(nil)
