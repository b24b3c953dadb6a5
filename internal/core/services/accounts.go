package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/custodia-labs/mailctl/internal/core/domain"
	"github.com/custodia-labs/mailctl/internal/core/ports/driven"
	"github.com/custodia-labs/mailctl/internal/core/ports/driving"
	"github.com/custodia-labs/mailctl/internal/logger"
)

// Ensure AccountService implements the interface.
var _ driving.AccountDirectory = (*AccountService)(nil)

// defaultCoordinator is the slice of the default-account manager the
// directory needs around deletions.
type defaultCoordinator interface {
	currentAssignment(ctx context.Context) (domain.AccountRef, error)
	RepairDefault(ctx context.Context, priorDefault domain.AccountRef, suppressPrompt bool) error
}

// AccountService aggregates accounts and metadata across every installed
// connector and coordinates bulk deletion.
type AccountService struct {
	catalog    driven.ConnectorCatalog
	rateLimits *RateLimitTracker
	confirm    driven.ConfirmPrompt
	notifier   driven.Notifier
	defaults   defaultCoordinator

	// Logo cache: populated at most once per connector per process.
	// Races on first population resolve as last-writer-wins; the payload
	// from a given connector is identical either way.
	logoMu sync.Mutex
	logos  map[domain.ConnectorID][]byte
}

// NewAccountService creates the account directory service.
// confirm and notifier may be nil.
func NewAccountService(
	catalog driven.ConnectorCatalog,
	rateLimits *RateLimitTracker,
	confirm driven.ConfirmPrompt,
	notifier driven.Notifier,
) *AccountService {
	return &AccountService{
		catalog:    catalog,
		rateLimits: rateLimits,
		confirm:    confirm,
		notifier:   notifier,
		logos:      make(map[domain.ConnectorID][]byte),
	}
}

// SetDefaultCoordinator wires the default-account coordinator.
// Set after construction to break the mutual dependency between the
// directory and the coordinator.
func (s *AccountService) SetDefaultCoordinator(coordinator *DefaultAccountService) {
	s.defaults = coordinator
}

// ListAllAccounts returns every account from every installed connector,
// ordered by display name. A failing connector does not abort aggregation:
// its accounts are skipped and the failure is reported in the returned
// error alongside the accounts that could be collected.
func (s *AccountService) ListAllAccounts(ctx context.Context, loadLogos bool) ([]domain.EmailAccount, error) {
	if s.catalog == nil {
		return nil, domain.ErrNotImplemented
	}

	var all []domain.EmailAccount
	var errs []error
	for _, connector := range s.catalog.Connectors() {
		accounts, err := connector.ListAccounts(ctx)
		if err != nil {
			logger.Warn("connector %s failed to list accounts: %v", connector.ID(), err)
			errs = append(errs, fmt.Errorf("connector %s: %w", connector.ID(), err))
			continue
		}
		var logo []byte
		if loadLogos {
			logo = s.cachedLogo(ctx, connector)
		}
		for i := range accounts {
			accounts[i].Connector = connector.ID()
			if loadLogos {
				accounts[i].Logo = logo
			}
		}
		all = append(all, accounts...)
	}

	domain.SortAccounts(all)
	return all, errors.Join(errs...)
}

// IsAnyAccountRegistered reports whether any connector has at least one
// account.
func (s *AccountService) IsAnyAccountRegistered(ctx context.Context) (bool, error) {
	accounts, err := s.ListAllAccounts(ctx, false)
	if err != nil {
		return false, err
	}
	return len(accounts) > 0, nil
}

// IsAccountRegistered reports whether the (accountID, connector) pair
// exists. An empty ID or an uninstalled connector answer false without a
// listing call.
func (s *AccountService) IsAccountRegistered(ctx context.Context, accountID string, connector domain.ConnectorID) (bool, error) {
	if accountID == "" || !s.IsValidConnector(connector) {
		return false, nil
	}
	accounts, err := s.ListAllAccounts(ctx, false)
	if err != nil {
		return false, err
	}
	for i := range accounts {
		if accounts[i].ID == accountID && accounts[i].Connector == connector {
			return true, nil
		}
	}
	return false, nil
}

// ListAllConnectors describes every installed connector, whether or not
// it has accounts. Description and logo are queried fresh from the
// connector, bypassing the logo cache.
func (s *AccountService) ListAllConnectors(ctx context.Context) ([]domain.ConnectorInfo, error) {
	if s.catalog == nil {
		return nil, domain.ErrNotImplemented
	}

	var infos []domain.ConnectorInfo
	var errs []error
	for _, connector := range s.catalog.Connectors() {
		info := domain.ConnectorInfo{
			ID:          connector.ID(),
			Description: connector.Description(),
		}
		logo, err := connector.Logo(ctx)
		if err != nil {
			logger.Warn("connector %s failed to provide a logo: %v", connector.ID(), err)
			errs = append(errs, fmt.Errorf("connector %s: %w", connector.ID(), err))
		} else {
			info.Logo = logo
		}
		infos = append(infos, info)
	}
	return infos, errors.Join(errs...)
}

// IsValidConnector reports whether the ID is currently installed.
// The installed set can change between calls, so this is always answered
// from the live catalog.
func (s *AccountService) IsValidConnector(id domain.ConnectorID) bool {
	if s.catalog == nil {
		return false
	}
	_, ok := s.catalog.Get(id)
	return ok
}

// DeleteAccounts deletes the given accounts through their owning
// connectors, drops their rate-limit records, and repairs the default
// assignment afterwards.
//
// An account whose connector was uninstalled since it was listed is
// skipped silently; that is an expected race, not an error. A connector
// refusing a deletion aborts the operation; deletions already performed
// are not undone.
func (s *AccountService) DeleteAccounts(
	ctx context.Context,
	principal domain.Principal,
	accounts []domain.EmailAccount,
	promptConfirmation bool,
) error {
	if !principal.CanAdminister() {
		return domain.ErrPermissionDenied
	}
	if s.catalog == nil {
		return domain.ErrNotImplemented
	}
	if len(accounts) == 0 {
		return nil
	}

	if promptConfirmation && s.confirm != nil {
		message := fmt.Sprintf("Delete %d account(s)? This cannot be undone.", len(accounts))
		ok, err := s.confirm.Confirm(ctx, message)
		if err != nil {
			return fmt.Errorf("confirming deletion: %w", err)
		}
		if !ok {
			logger.Info("deletion declined")
			return nil
		}
	}

	// Capture the current default before anything is deleted; the repair
	// step needs to know whether one of the deleted accounts held it.
	var priorDefault domain.AccountRef
	if s.defaults != nil {
		var err error
		priorDefault, err = s.defaults.currentAssignment(ctx)
		if err != nil {
			return fmt.Errorf("reading default assignment: %w", err)
		}
	}

	for i := range accounts {
		account := &accounts[i]
		connector, ok := s.catalog.Get(account.Connector)
		if !ok {
			// Uninstalled since the listing was taken. Skip.
			logger.Info("connector %s no longer installed, skipping account %s", account.Connector, account.ID)
			continue
		}
		if err := connector.DeleteAccount(ctx, account.ID); err != nil {
			return fmt.Errorf("deleting account %s via connector %s: %w", account.ID, account.Connector, err)
		}
		if s.rateLimits != nil {
			if err := s.rateLimits.Forget(ctx, account.Ref()); err != nil {
				logger.Warn("dropping rate-limit record for %s/%s: %v", account.Connector, account.ID, err)
			}
		}
		if s.notifier != nil {
			s.notifier.AccountDeleted(ctx, *account)
		}
	}

	if s.defaults != nil {
		return s.defaults.RepairDefault(ctx, priorDefault, !promptConfirmation)
	}
	return nil
}

// cachedLogo returns the connector's logo, fetching and memoizing it on
// first use. Fetch failures are logged and yield an empty logo; the next
// listing retries.
func (s *AccountService) cachedLogo(ctx context.Context, connector driven.Connector) []byte {
	s.logoMu.Lock()
	logo, ok := s.logos[connector.ID()]
	s.logoMu.Unlock()
	if ok {
		return logo
	}

	logo, err := connector.Logo(ctx)
	if err != nil {
		logger.Warn("connector %s failed to provide a logo: %v", connector.ID(), err)
		return nil
	}

	s.logoMu.Lock()
	s.logos[connector.ID()] = logo
	s.logoMu.Unlock()
	return logo
}
