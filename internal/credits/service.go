package credits

import "context"

type store interface {
	Get(ctx context.Context, userID string) (Account, error)
	Debit(ctx context.Context, userID string, n int) (Account, error)
	Grant(ctx context.Context, userID string, n int) (Account, error)
	SetSubscriptionStatus(ctx context.Context, userID, status string) (Account, error)
}

// Service manages credit balances via an underlying store.
type Service struct {
	store store
}

// NewService constructs a Service with an in-memory store.
func NewService() *Service {
	return &Service{store: newMemoryStore()}
}

// NewPostgresService constructs a Service backed by Postgres.
func NewPostgresService(pgStore store) *Service {
	return &Service{store: pgStore}
}

// Get returns the account for a user, initializing defaults if absent.
func (s *Service) Get(ctx context.Context, userID string) (Account, error) {
	if userID == "" {
		return Account{}, ErrInvalidInput
	}
	return s.store.Get(ctx, userID)
}

// Entitled reports whether the user may start a paid generation.
func (s *Service) Entitled(ctx context.Context, userID string) (bool, Account, error) {
	a, err := s.Get(ctx, userID)
	if err != nil {
		return false, Account{}, err
	}
	return a.Entitled(), a, nil
}

// Debit subtracts n credits. The balance is decremented even when the
// user is covered by a subscription and may go negative; billing
// reconciles it on renewal.
func (s *Service) Debit(ctx context.Context, userID string, n int) (Account, error) {
	if userID == "" || n <= 0 {
		return Account{}, ErrInvalidInput
	}
	return s.store.Debit(ctx, userID, n)
}

// Grant adds n credits to the user's balance.
func (s *Service) Grant(ctx context.Context, userID string, n int) (Account, error) {
	if userID == "" || n <= 0 {
		return Account{}, ErrInvalidInput
	}
	return s.store.Grant(ctx, userID, n)
}

// SetSubscriptionStatus records the latest provider status for a user.
func (s *Service) SetSubscriptionStatus(ctx context.Context, userID, status string) (Account, error) {
	if userID == "" {
		return Account{}, ErrInvalidInput
	}
	return s.store.SetSubscriptionStatus(ctx, userID, status)
}
