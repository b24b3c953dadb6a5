package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/mailctl/internal/core/domain"
	"github.com/custodia-labs/mailctl/internal/core/ports/driven"
)

// Ensure RateLimitStore implements the interface.
var _ driven.RateLimitStore = (*RateLimitStore)(nil)

// RateLimitStore is an in-memory implementation of driven.RateLimitStore.
type RateLimitStore struct {
	mu      sync.RWMutex
	records map[domain.AccountRef]domain.RateLimitRecord
}

// NewRateLimitStore creates a new in-memory rate-limit store.
func NewRateLimitStore() *RateLimitStore {
	return &RateLimitStore{
		records: make(map[domain.AccountRef]domain.RateLimitRecord),
	}
}

// Save stores or updates a record.
func (s *RateLimitStore) Save(_ context.Context, record domain.RateLimitRecord) error {
	if record.Account.IsZero() {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Account] = record
	return nil
}

// Get retrieves the record for an account.
func (s *RateLimitStore) Get(_ context.Context, account domain.AccountRef) (domain.RateLimitRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[account]
	if !ok {
		return domain.RateLimitRecord{}, domain.ErrNotFound
	}
	return record, nil
}

// Delete removes the record for an account. Absent records are a no-op.
func (s *RateLimitStore) Delete(_ context.Context, account domain.AccountRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, account)
	return nil
}

// List returns all stored records.
func (s *RateLimitStore) List(_ context.Context) ([]domain.RateLimitRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.RateLimitRecord, 0, len(s.records))
	for _, record := range s.records {
		result = append(result, record)
	}
	return result, nil
}
