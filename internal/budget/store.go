package budget

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

// Store persists budget limits by category.
type Store interface {
	// Get returns the limit of a category. ok is false if no limit has been set.
	Get(ctx context.Context, category string) (limit decimal.Decimal, ok bool, err error)

	// Set stores the limit of a category, replacing any previous limit.
	Set(ctx context.Context, category string, limit decimal.Decimal) error

	// All returns all stored limits.
	All(ctx context.Context) (Limits, error)
}

// MemoryStore keeps limits in memory. The zero value is ready to use.
type MemoryStore struct {
	mu     sync.RWMutex
	limits Limits
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(_ context.Context, category string) (decimal.Decimal, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit, ok := s.limits[category]
	return limit, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, category string, limit decimal.Decimal) error {
	if err := ValidateLimit(limit); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.limits == nil {
		s.limits = make(Limits)
	}
	s.limits[category] = limit
	return nil
}

// All returns a copy of the stored limits.
func (s *MemoryStore) All(_ context.Context) (Limits, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limits := make(Limits, len(s.limits))
	for category, limit := range s.limits {
		limits[category] = limit
	}
	return limits, nil
}
