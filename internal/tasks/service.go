package tasks

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for tasks.
type Service struct {
	Repo TasksRepo
}

// Create adds a task for the user. New tasks default to one hour and
// not done.
func (s *Service) Create(ctx context.Context, userID, description string) (Task, error) {
	if userID == "" || strings.TrimSpace(description) == "" {
		return Task{}, ErrInvalidInput
	}
	task := Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Description: strings.TrimSpace(description),
		Time:        "1",
		IsDone:      false,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, task); err != nil {
		return Task{}, err
	}
	return task, nil
}

// List returns all tasks for the user, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Task, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID)
}

// TaskUpdate carries the mutable task fields. Nil means unchanged.
type TaskUpdate struct {
	IsDone *bool
	Time   *string
}

// Update applies the given changes to a task owned by the user.
func (s *Service) Update(ctx context.Context, userID, taskID string, update TaskUpdate) (Task, error) {
	if userID == "" || taskID == "" {
		return Task{}, ErrInvalidInput
	}
	task, err := s.Repo.GetByID(ctx, userID, taskID)
	if err != nil {
		return Task{}, err
	}
	if update.IsDone != nil {
		task.IsDone = *update.IsDone
	}
	if update.Time != nil {
		task.Time = *update.Time
	}
	if err := s.Repo.Update(ctx, task); err != nil {
		return Task{}, err
	}
	return task, nil
}

// Delete removes a task owned by the user.
func (s *Service) Delete(ctx context.Context, userID, taskID string) error {
	if userID == "" || taskID == "" {
		return ErrInvalidInput
	}
	return s.Repo.Delete(ctx, userID, taskID)
}
