package account

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"letter-backend/internal/documents"
	"letter-backend/internal/letters"
	"letter-backend/internal/tasks"
)

type Service struct {
	DocRepo    documents.DocumentsRepo
	LetterRepo letters.Repo
	TaskRepo   tasks.TasksRepo
}

type ClaimResult struct {
	MigratedDocuments int `json:"migratedDocuments"`
	MigratedLetters   int `json:"migratedLetters"`
}

type DeleteResult struct {
	DeletedDocuments int `json:"deletedDocuments"`
	DeletedLetters   int `json:"deletedLetters"`
	DeletedTasks     int `json:"deletedTasks"`
}

func NewService(docRepo documents.DocumentsRepo, letterRepo letters.Repo, taskRepo tasks.TasksRepo) *Service {
	return &Service{DocRepo: docRepo, LetterRepo: letterRepo, TaskRepo: taskRepo}
}

// ClaimGuest migrates guest-owned documents and letters to the
// authenticated user. Both repos on the same Postgres database share
// one transaction; the memory repos migrate one at a time.
func (s *Service) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (ClaimResult, error) {
	if strings.TrimSpace(guestUserID) == "" || strings.TrimSpace(authedUserID) == "" {
		return ClaimResult{}, errors.New("guestUserID and authedUserID are required")
	}

	if docPG, ok := s.DocRepo.(*documents.PGRepo); ok && docPG != nil && docPG.DB != nil {
		if letterPG, ok := s.LetterRepo.(*letters.PGRepo); ok && letterPG != nil && letterPG.DB != nil {
			return claimWithTx(ctx, docPG.DB, guestUserID, authedUserID)
		}
	}

	docCount, err := s.DocRepo.ClaimGuest(ctx, guestUserID, authedUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	letterCount, err := claimLetters(ctx, s.LetterRepo, guestUserID, authedUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	return ClaimResult{MigratedDocuments: docCount, MigratedLetters: letterCount}, nil
}

// DeleteAccount removes all user-owned data. Documents are
// soft-deleted; letters and tasks are removed outright.
func (s *Service) DeleteAccount(ctx context.Context, userID string) (DeleteResult, error) {
	if strings.TrimSpace(userID) == "" {
		return DeleteResult{}, errors.New("userID is required")
	}

	docCount, err := s.DocRepo.DeleteByUser(ctx, userID)
	if err != nil {
		return DeleteResult{}, err
	}
	letterCount, err := s.LetterRepo.DeleteByUser(ctx, userID)
	if err != nil {
		return DeleteResult{}, err
	}
	taskCount, err := s.TaskRepo.DeleteByUser(ctx, userID)
	if err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{
		DeletedDocuments: docCount,
		DeletedLetters:   letterCount,
		DeletedTasks:     taskCount,
	}, nil
}

func claimWithTx(ctx context.Context, db *sql.DB, guestUserID, authedUserID string) (ClaimResult, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return ClaimResult{}, err
	}
	defer tx.Rollback()

	docRes, err := tx.ExecContext(ctx, `UPDATE documents SET user_id = $1 WHERE user_id = $2 AND deleted_at IS NULL`, authedUserID, guestUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	docCount, _ := docRes.RowsAffected()

	letterRes, err := tx.ExecContext(ctx, `UPDATE letters SET user_id = $1 WHERE user_id = $2`, authedUserID, guestUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	letterCount, _ := letterRes.RowsAffected()

	if err := tx.Commit(); err != nil {
		return ClaimResult{}, err
	}
	return ClaimResult{MigratedDocuments: int(docCount), MigratedLetters: int(letterCount)}, nil
}

type guestLetterClaimer interface {
	ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error)
}

func claimLetters(ctx context.Context, repo letters.Repo, guestUserID, authedUserID string) (int, error) {
	if claimer, ok := repo.(guestLetterClaimer); ok {
		return claimer.ClaimGuest(ctx, guestUserID, authedUserID)
	}
	return 0, errors.New("letters repo does not support claim")
}
