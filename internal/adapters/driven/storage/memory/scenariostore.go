package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/mailctl/internal/core/domain"
	"github.com/custodia-labs/mailctl/internal/core/ports/driven"
)

// Ensure ScenarioStore implements the interface.
var _ driven.ScenarioStore = (*ScenarioStore)(nil)

// ScenarioStore is an in-memory implementation of driven.ScenarioStore.
type ScenarioStore struct {
	mu          sync.RWMutex
	assignments map[domain.Scenario]domain.AccountRef
}

// NewScenarioStore creates a new in-memory scenario store.
func NewScenarioStore() *ScenarioStore {
	return &ScenarioStore{
		assignments: make(map[domain.Scenario]domain.AccountRef),
	}
}

// Get returns the account bound to a scenario.
func (s *ScenarioStore) Get(_ context.Context, scenario domain.Scenario) (domain.AccountRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ref, ok := s.assignments[scenario]
	if !ok {
		return domain.AccountRef{}, domain.ErrNotFound
	}
	return ref, nil
}

// Set binds an account to a scenario, replacing any prior binding.
func (s *ScenarioStore) Set(_ context.Context, scenario domain.Scenario, account domain.AccountRef) error {
	if scenario == "" || account.IsZero() {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assignments[scenario] = account
	return nil
}

// Clear removes a scenario's binding. Unassigned scenarios are a no-op.
func (s *ScenarioStore) Clear(_ context.Context, scenario domain.Scenario) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.assignments, scenario)
	return nil
}

// List returns all current assignments.
func (s *ScenarioStore) List(_ context.Context) ([]domain.ScenarioAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.ScenarioAssignment, 0, len(s.assignments))
	for scenario, ref := range s.assignments {
		result = append(result, domain.ScenarioAssignment{Scenario: scenario, Account: ref})
	}
	return result, nil
}
