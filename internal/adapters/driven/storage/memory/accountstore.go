// Package memory provides in-memory implementations of the driven store
// ports. Used by tests and by the ephemeral (no data dir) mode.
package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/mailctl/internal/core/domain"
	"github.com/custodia-labs/mailctl/internal/core/ports/driven"
)

// Ensure AccountStore implements the interface.
var _ driven.AccountStore = (*AccountStore)(nil)

// AccountStore is an in-memory implementation of driven.AccountStore,
// scoped to a single connector.
type AccountStore struct {
	connector domain.ConnectorID

	mu       sync.RWMutex
	accounts map[string]domain.EmailAccount
}

// NewAccountStore creates a new in-memory account store for a connector.
func NewAccountStore(connector domain.ConnectorID) *AccountStore {
	return &AccountStore{
		connector: connector,
		accounts:  make(map[string]domain.EmailAccount),
	}
}

// Save stores or updates an account.
func (s *AccountStore) Save(_ context.Context, account domain.EmailAccount) error {
	if account.ID == "" {
		return domain.ErrInvalidInput
	}
	account.Connector = s.connector
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.ID] = account
	return nil
}

// Get retrieves an account by ID.
func (s *AccountStore) Get(_ context.Context, id string) (*domain.EmailAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &account, nil
}

// Delete removes an account. Absent IDs are a no-op.
func (s *AccountStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.accounts, id)
	return nil
}

// List returns all stored accounts.
func (s *AccountStore) List(_ context.Context) ([]domain.EmailAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.EmailAccount, 0, len(s.accounts))
	for _, account := range s.accounts {
		result = append(result, account)
	}
	return result, nil
}
