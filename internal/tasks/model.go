package tasks

import "time"

// Task is a to-do item with an estimated time in hours.
type Task struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	Description string    `json:"description"`
	Time        string    `json:"time"`
	IsDone      bool      `json:"isDone"`
	CreatedAt   time.Time `json:"createdAt"`
}
