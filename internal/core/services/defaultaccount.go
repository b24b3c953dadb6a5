package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/mailctl/internal/core/domain"
	"github.com/custodia-labs/mailctl/internal/core/ports/driven"
	"github.com/custodia-labs/mailctl/internal/core/ports/driving"
	"github.com/custodia-labs/mailctl/internal/logger"
)

// Ensure DefaultAccountService implements the interfaces it is wired as.
var (
	_ driving.DefaultAccountManager = (*DefaultAccountService)(nil)
	_ defaultCoordinator            = (*DefaultAccountService)(nil)
)

// DefaultAccountService maintains the scenario-to-account bindings and
// repairs the "default" scenario after deletions. The invariant it
// protects: each scenario is bound to at most one account, and the default
// binding either references an existing account or is absent.
type DefaultAccountService struct {
	scenarios driven.ScenarioStore
	chooser   driven.AccountChooser
	notifier  driven.Notifier
	directory driving.AccountDirectory
}

// NewDefaultAccountService creates the coordinator.
// chooser and notifier may be nil; without a chooser the repair step
// clears a dangling default instead of offering a selection.
func NewDefaultAccountService(
	scenarios driven.ScenarioStore,
	chooser driven.AccountChooser,
	notifier driven.Notifier,
) *DefaultAccountService {
	return &DefaultAccountService{
		scenarios: scenarios,
		chooser:   chooser,
		notifier:  notifier,
	}
}

// SetDirectory wires the account directory used for relisting.
// Set after construction to break the mutual dependency between the
// coordinator and the directory.
func (s *DefaultAccountService) SetDirectory(directory driving.AccountDirectory) {
	s.directory = directory
}

// DefaultAccount resolves the default binding against the live listing.
// A binding that points at an account that no longer exists reads as "no
// default".
func (s *DefaultAccountService) DefaultAccount(ctx context.Context) (*domain.EmailAccount, error) {
	return s.ScenarioAccount(ctx, domain.ScenarioDefault)
}

// MakeDefault binds an account to the default scenario, replacing any
// prior binding. A zero account reference is a no-op.
func (s *DefaultAccountService) MakeDefault(ctx context.Context, principal domain.Principal, account domain.EmailAccount) error {
	if !principal.CanAdminister() {
		return domain.ErrPermissionDenied
	}
	if account.ID == "" {
		return nil
	}
	if s.scenarios == nil {
		return domain.ErrNotImplemented
	}
	if err := s.scenarios.Set(ctx, domain.ScenarioDefault, account.Ref()); err != nil {
		return fmt.Errorf("assigning default account: %w", err)
	}
	if s.notifier != nil {
		s.notifier.DefaultChanged(ctx, &account)
	}
	return nil
}

// RepairDefault restores the default invariant after deletions.
//
// priorDefault is the binding captured before the deletions ran. The
// repair relists the remaining accounts and then:
//
//   - nothing remains: nothing to repair, exit
//   - the prior default survived: the invariant already holds, exit
//   - exactly one account remains: it becomes the default outright
//   - otherwise: offer the chooser (unless suppressed); no selection
//     clears the binding rather than leaving it dangling
func (s *DefaultAccountService) RepairDefault(ctx context.Context, priorDefault domain.AccountRef, suppressPrompt bool) error {
	if s.directory == nil || s.scenarios == nil {
		return domain.ErrNotImplemented
	}

	// Repair needs a complete picture: promoting a "sole survivor" off a
	// partial listing could steal the default from an account that a
	// failing connector is hiding.
	remaining, err := s.directory.ListAllAccounts(ctx, false)
	if err != nil {
		return fmt.Errorf("relisting accounts for default repair: %w", err)
	}

	if len(remaining) == 0 {
		logger.Debug("no accounts remain, default repair not applicable")
		return nil
	}

	if !priorDefault.IsZero() {
		for i := range remaining {
			if remaining[i].Ref() == priorDefault {
				// The default was not among the deleted accounts.
				return nil
			}
		}
	}

	if len(remaining) == 1 {
		survivor := remaining[0]
		logger.Info("promoting sole remaining account %s to default", survivor.EmailAddress)
		if err := s.scenarios.Set(ctx, domain.ScenarioDefault, survivor.Ref()); err != nil {
			return fmt.Errorf("promoting sole remaining account: %w", err)
		}
		if s.notifier != nil {
			s.notifier.DefaultChanged(ctx, &survivor)
		}
		return nil
	}

	if !suppressPrompt && s.chooser != nil {
		chosen, err := s.chooser.Choose(ctx, remaining)
		if err != nil {
			return fmt.Errorf("choosing replacement default: %w", err)
		}
		if chosen != nil {
			if err := s.scenarios.Set(ctx, domain.ScenarioDefault, chosen.Ref()); err != nil {
				return fmt.Errorf("assigning chosen default: %w", err)
			}
			if s.notifier != nil {
				s.notifier.DefaultChanged(ctx, chosen)
			}
			return nil
		}
	}

	// No selection was possible or none was made: clear the binding so it
	// does not point at a deleted account.
	if err := s.scenarios.Clear(ctx, domain.ScenarioDefault); err != nil {
		return fmt.Errorf("clearing default assignment: %w", err)
	}
	if s.notifier != nil {
		s.notifier.DefaultChanged(ctx, nil)
	}
	return nil
}

// Assign binds an account to a named scenario, replacing any prior
// binding for that scenario.
func (s *DefaultAccountService) Assign(ctx context.Context, principal domain.Principal, scenario domain.Scenario, account domain.EmailAccount) error {
	if !principal.CanAdminister() {
		return domain.ErrPermissionDenied
	}
	if scenario == "" || account.ID == "" {
		return domain.ErrInvalidInput
	}
	if s.scenarios == nil {
		return domain.ErrNotImplemented
	}
	return s.scenarios.Set(ctx, scenario, account.Ref())
}

// ClearScenario removes a scenario binding.
func (s *DefaultAccountService) ClearScenario(ctx context.Context, principal domain.Principal, scenario domain.Scenario) error {
	if !principal.CanAdminister() {
		return domain.ErrPermissionDenied
	}
	if scenario == "" {
		return domain.ErrInvalidInput
	}
	if s.scenarios == nil {
		return domain.ErrNotImplemented
	}
	if err := s.scenarios.Clear(ctx, scenario); err != nil {
		return err
	}
	if scenario == domain.ScenarioDefault && s.notifier != nil {
		s.notifier.DefaultChanged(ctx, nil)
	}
	return nil
}

// ScenarioAccount resolves the account bound to a scenario against the
// live listing. Returns nil when the scenario is unassigned or its
// account no longer exists.
func (s *DefaultAccountService) ScenarioAccount(ctx context.Context, scenario domain.Scenario) (*domain.EmailAccount, error) {
	if s.scenarios == nil || s.directory == nil {
		return nil, domain.ErrNotImplemented
	}
	ref, err := s.scenarios.Get(ctx, scenario)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	accounts, err := s.directory.ListAllAccounts(ctx, false)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].Ref() == ref {
			return &accounts[i], nil
		}
	}
	return nil, nil
}

// currentAssignment reads the raw default binding without resolving it.
// Returns a zero ref when the scenario is unassigned.
func (s *DefaultAccountService) currentAssignment(ctx context.Context) (domain.AccountRef, error) {
	if s.scenarios == nil {
		return domain.AccountRef{}, nil
	}
	ref, err := s.scenarios.Get(ctx, domain.ScenarioDefault)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.AccountRef{}, nil
		}
		return domain.AccountRef{}, err
	}
	return ref, nil
}
