package tasks

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements TasksRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new task.
func (r *PGRepo) Create(ctx context.Context, task Task) error {
	const query = `
INSERT INTO tasks (id, user_id, description, time, is_done, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		task.ID,
		task.UserID,
		task.Description,
		task.Time,
		task.IsDone,
		task.CreatedAt,
	)
	return err
}

// GetByID returns a task by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, taskID string) (Task, error) {
	const query = `
SELECT id, user_id, description, time, is_done, created_at
FROM tasks
WHERE user_id = $1 AND id = $2
LIMIT 1`
	var task Task
	err := r.DB.QueryRowContext(ctx, query, userID, taskID).Scan(
		&task.ID,
		&task.UserID,
		&task.Description,
		&task.Time,
		&task.IsDone,
		&task.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		return Task{}, err
	}
	return task, nil
}

// ListByUser returns a user's tasks, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Task, error) {
	const query = `
SELECT id, user_id, description, time, is_done, created_at
FROM tasks
WHERE user_id = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		var task Task
		if err := rows.Scan(&task.ID, &task.UserID, &task.Description, &task.Time, &task.IsDone, &task.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

// Update writes the mutable task fields if the task belongs to the user.
func (r *PGRepo) Update(ctx context.Context, task Task) error {
	const query = `
UPDATE tasks
SET description = $3, time = $4, is_done = $5
WHERE user_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query,
		task.UserID,
		task.ID,
		task.Description,
		task.Time,
		task.IsDone,
	)
	if err != nil {
		return err
	}
	updated, _ := res.RowsAffected()
	if updated == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a task owned by the user.
func (r *PGRepo) Delete(ctx context.Context, userID, taskID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM tasks WHERE user_id = $1 AND id = $2`, userID, taskID)
	if err != nil {
		return err
	}
	deleted, _ := res.RowsAffected()
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByUser removes all tasks owned by a user and reports the count.
func (r *PGRepo) DeleteByUser(ctx context.Context, userID string) (int, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM tasks WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	deleted, _ := res.RowsAffected()
	return int(deleted), nil
}

var _ TasksRepo = (*PGRepo)(nil)
