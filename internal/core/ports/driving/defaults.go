package driving

import (
	"context"

	"github.com/custodia-labs/mailctl/internal/core/domain"
)

// DefaultAccountManager maintains the invariant that each scenario is
// bound to at most one existing account, and repairs the "default"
// scenario when its account is deleted.
type DefaultAccountManager interface {
	// DefaultAccount resolves the current default account against the
	// live account listing. Returns nil when no valid default exists.
	DefaultAccount(ctx context.Context) (*domain.EmailAccount, error)

	// MakeDefault binds an account to the default scenario, replacing any
	// prior binding. Requires an administrator principal. A zero account
	// reference is a no-op.
	MakeDefault(ctx context.Context, principal domain.Principal, account domain.EmailAccount) error

	// RepairDefault restores the default invariant after deletions.
	// priorDefault is the assignment captured before the deletions ran.
	// When suppressPrompt is set no interactive chooser is offered and a
	// dangling default is cleared instead.
	RepairDefault(ctx context.Context, priorDefault domain.AccountRef, suppressPrompt bool) error

	// Assign binds an account to a named scenario.
	Assign(ctx context.Context, principal domain.Principal, scenario domain.Scenario, account domain.EmailAccount) error

	// ClearScenario removes a scenario binding.
	ClearScenario(ctx context.Context, principal domain.Principal, scenario domain.Scenario) error

	// ScenarioAccount resolves the account bound to a scenario.
	// Returns nil when the scenario is unassigned or its account is gone.
	ScenarioAccount(ctx context.Context, scenario domain.Scenario) (*domain.EmailAccount, error)
}
