package credits

import (
	"context"
	"database/sql"
	"errors"
)

type pgStore struct {
	DB *sql.DB
}

// NewPGStore constructs a Postgres-backed credit store. Balances live
// on the users row so the OAuth upsert and the debit share one record.
func NewPGStore(db *sql.DB) *pgStore {
	return &pgStore{DB: db}
}

func (s *pgStore) Get(ctx context.Context, userID string) (Account, error) {
	return s.ensure(ctx, userID)
}

func (s *pgStore) Debit(ctx context.Context, userID string, n int) (Account, error) {
	if _, err := s.ensure(ctx, userID); err != nil {
		return Account{}, err
	}
	const query = `
UPDATE users SET credits = credits - $2, updated_at = now()
WHERE id = $1
RETURNING credits, COALESCE(subscription_status, '')`
	return s.scanRow(ctx, userID, query, userID, n)
}

func (s *pgStore) Grant(ctx context.Context, userID string, n int) (Account, error) {
	if _, err := s.ensure(ctx, userID); err != nil {
		return Account{}, err
	}
	const query = `
UPDATE users SET credits = credits + $2, updated_at = now()
WHERE id = $1
RETURNING credits, COALESCE(subscription_status, '')`
	return s.scanRow(ctx, userID, query, userID, n)
}

func (s *pgStore) SetSubscriptionStatus(ctx context.Context, userID, status string) (Account, error) {
	if _, err := s.ensure(ctx, userID); err != nil {
		return Account{}, err
	}
	const query = `
UPDATE users SET subscription_status = NULLIF($2, ''), updated_at = now()
WHERE id = $1
RETURNING credits, COALESCE(subscription_status, '')`
	return s.scanRow(ctx, userID, query, userID, status)
}

// ensure creates a bare users row for identities that never went
// through OAuth, such as guests.
func (s *pgStore) ensure(ctx context.Context, userID string) (Account, error) {
	const insert = `
INSERT INTO users (id, email, credits, created_at, updated_at)
VALUES ($1, '', $2, now(), now())
ON CONFLICT (id) DO NOTHING`
	if _, err := s.DB.ExecContext(ctx, insert, userID, startingCredits); err != nil {
		return Account{}, err
	}
	const query = `
SELECT credits, COALESCE(subscription_status, '') FROM users WHERE id = $1 LIMIT 1`
	return s.scanRow(ctx, userID, query, userID)
}

func (s *pgStore) scanRow(ctx context.Context, userID, query string, args ...any) (Account, error) {
	a := Account{UserID: userID}
	err := s.DB.QueryRowContext(ctx, query, args...).Scan(&a.Credits, &a.SubscriptionStatus)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Account{}, ErrNotFound
		}
		return Account{}, err
	}
	return a, nil
}

var _ store = (*pgStore)(nil)
