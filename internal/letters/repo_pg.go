package letters

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a generated letter.
func (r *PGRepo) Create(ctx context.Context, letter GeneratedLetter) error {
	const query = `
INSERT INTO letters (id, user_id, content, created_at)
VALUES ($1, $2, $3, $4)`
	_, err := r.DB.ExecContext(ctx, query,
		letter.ID,
		letter.UserID,
		letter.Content,
		letter.CreatedAt,
	)
	return err
}

// GetByID returns a letter by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, letterID string) (GeneratedLetter, error) {
	const query = `
SELECT id, user_id, content, created_at
FROM letters
WHERE id = $1
LIMIT 1`
	var letter GeneratedLetter
	err := r.DB.QueryRowContext(ctx, query, letterID).Scan(
		&letter.ID,
		&letter.UserID,
		&letter.Content,
		&letter.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GeneratedLetter{}, ErrNotFound
		}
		return GeneratedLetter{}, err
	}
	if letter.UserID != userID {
		return GeneratedLetter{}, ErrForbidden
	}
	return letter, nil
}

// ListByUser lists a user's letters ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]GeneratedLetter, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, content, created_at
FROM letters
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GeneratedLetter
	for rows.Next() {
		var letter GeneratedLetter
		if err := rows.Scan(&letter.ID, &letter.UserID, &letter.Content, &letter.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, letter)
	}
	return out, rows.Err()
}

// ClaimGuest reassigns letters owned by a guest user to an authenticated user.
func (r *PGRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	res, err := r.DB.ExecContext(ctx, `UPDATE letters SET user_id = $1 WHERE user_id = $2`, authedUserID, guestUserID)
	if err != nil {
		return 0, err
	}
	updated, _ := res.RowsAffected()
	return int(updated), nil
}

// DeleteByUser removes all letters owned by a user.
func (r *PGRepo) DeleteByUser(ctx context.Context, userID string) (int, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM letters WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	count, _ := res.RowsAffected()
	return int(count), nil
}

var _ Repo = (*PGRepo)(nil)
