package driven

import (
	"context"

	"github.com/custodia-labs/mailctl/internal/core/domain"
)

// ScenarioStore persists which account is bound to each named scenario.
// Each scenario maps to at most one account at a time.
type ScenarioStore interface {
	// Get returns the account bound to a scenario.
	// Returns domain.ErrNotFound when the scenario is unassigned.
	Get(ctx context.Context, scenario domain.Scenario) (domain.AccountRef, error)

	// Set binds an account to a scenario, replacing any prior binding.
	Set(ctx context.Context, scenario domain.Scenario, account domain.AccountRef) error

	// Clear removes a scenario's binding. Clearing an unassigned scenario
	// is a no-op.
	Clear(ctx context.Context, scenario domain.Scenario) error

	// List returns all current assignments.
	List(ctx context.Context) ([]domain.ScenarioAssignment, error)
}
