package tasks

import "context"

// TasksRepo defines persistence operations for tasks.
type TasksRepo interface {
	Create(ctx context.Context, task Task) error
	GetByID(ctx context.Context, userID, taskID string) (Task, error)
	ListByUser(ctx context.Context, userID string) ([]Task, error)
	Update(ctx context.Context, task Task) error
	Delete(ctx context.Context, userID, taskID string) error
	DeleteByUser(ctx context.Context, userID string) (int, error)
}
