package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateInsertsTask(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	task := Task{
		ID:          "task-1",
		UserID:      "user-1",
		Description: "Collect transcripts",
		Time:        "1",
		CreatedAt:   time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO tasks").
		WithArgs(task.ID, task.UserID, task.Description, task.Time, task.IsDone, task.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), task); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListOrdersNewestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "user_id", "description", "time", "is_done", "created_at"}).
		AddRow("task-2", "user-1", "second", "1", false, now).
		AddRow("task-1", "user-1", "first", "1", false, now.Add(-time.Minute))

	mock.ExpectQuery("ORDER BY created_at DESC").
		WithArgs("user-1").
		WillReturnRows(rows)

	out, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(out) != 2 || out[0].ID != "task-2" || out[1].ID != "task-1" {
		t.Fatalf("expected newest first, got %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateMissingTask(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("UPDATE tasks").
		WithArgs("user-1", "task-1", "desc", "2", true).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), Task{
		ID:          "task-1",
		UserID:      "user-1",
		Description: "desc",
		Time:        "2",
		IsDone:      true,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoDeleteMissingTask(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("DELETE FROM tasks").
		WithArgs("user-1", "task-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "user-1", "task-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
