package credits

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu   sync.RWMutex
	data map[string]Account
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string]Account)}
}

func (s *memoryStore) Get(ctx context.Context, userID string) (Account, error) {
	if err := ctx.Err(); err != nil {
		return Account{}, err
	}
	s.mu.RLock()
	a, ok := s.data[userID]
	s.mu.RUnlock()
	if ok {
		return a, nil
	}
	return s.ensure(ctx, userID)
}

func (s *memoryStore) ensure(ctx context.Context, userID string) (Account, error) {
	if err := ctx.Err(); err != nil {
		return Account{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.data[userID]
	if !ok {
		a = defaultAccount(userID)
		s.data[userID] = a
	}
	return a, nil
}

func (s *memoryStore) Debit(ctx context.Context, userID string, n int) (Account, error) {
	if err := ctx.Err(); err != nil {
		return Account{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.data[userID]
	if !ok {
		a = defaultAccount(userID)
	}
	a.Credits -= n
	s.data[userID] = a
	return a, nil
}

func (s *memoryStore) Grant(ctx context.Context, userID string, n int) (Account, error) {
	if err := ctx.Err(); err != nil {
		return Account{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.data[userID]
	if !ok {
		a = defaultAccount(userID)
	}
	a.Credits += n
	s.data[userID] = a
	return a, nil
}

func (s *memoryStore) SetSubscriptionStatus(ctx context.Context, userID, status string) (Account, error) {
	if err := ctx.Err(); err != nil {
		return Account{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.data[userID]
	if !ok {
		a = defaultAccount(userID)
	}
	a.SubscriptionStatus = status
	s.data[userID] = a
	return a, nil
}

var _ store = (*memoryStore)(nil)
