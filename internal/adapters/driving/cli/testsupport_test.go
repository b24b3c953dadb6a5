package cli

import (
	"context"

	"github.com/custodia-labs/mailctl/internal/core/domain"
)

// mockDirectory implements driving.AccountDirectory for testing.
type mockDirectory struct {
	accounts    []domain.EmailAccount
	listErr     error
	deleted     []domain.AccountRef
	deleteErr   error
	connectors  []domain.ConnectorInfo
	validIDs    map[domain.ConnectorID]bool
	promptFlags []bool
}

func (m *mockDirectory) ListAllAccounts(_ context.Context, _ bool) ([]domain.EmailAccount, error) {
	return m.accounts, m.listErr
}

func (m *mockDirectory) IsAnyAccountRegistered(_ context.Context) (bool, error) {
	return len(m.accounts) > 0, m.listErr
}

func (m *mockDirectory) IsAccountRegistered(_ context.Context, accountID string, connector domain.ConnectorID) (bool, error) {
	for i := range m.accounts {
		if m.accounts[i].ID == accountID && m.accounts[i].Connector == connector {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockDirectory) ListAllConnectors(_ context.Context) ([]domain.ConnectorInfo, error) {
	return m.connectors, nil
}

func (m *mockDirectory) IsValidConnector(id domain.ConnectorID) bool {
	return m.validIDs[id]
}

func (m *mockDirectory) DeleteAccounts(_ context.Context, _ domain.Principal, accounts []domain.EmailAccount, promptConfirmation bool) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i := range accounts {
		m.deleted = append(m.deleted, accounts[i].Ref())
	}
	m.promptFlags = append(m.promptFlags, promptConfirmation)
	return nil
}

// mockDefaultManager implements driving.DefaultAccountManager for testing.
type mockDefaultManager struct {
	current    *domain.EmailAccount
	assigned   map[domain.Scenario]domain.AccountRef
	cleared    []domain.Scenario
	repaired   bool
	repairErr  error
	suppressed bool
}

func (m *mockDefaultManager) DefaultAccount(_ context.Context) (*domain.EmailAccount, error) {
	return m.current, nil
}

func (m *mockDefaultManager) MakeDefault(_ context.Context, _ domain.Principal, account domain.EmailAccount) error {
	if m.assigned == nil {
		m.assigned = make(map[domain.Scenario]domain.AccountRef)
	}
	m.assigned[domain.ScenarioDefault] = account.Ref()
	m.current = &account
	return nil
}

func (m *mockDefaultManager) RepairDefault(_ context.Context, _ domain.AccountRef, suppressPrompt bool) error {
	m.repaired = true
	m.suppressed = suppressPrompt
	return m.repairErr
}

func (m *mockDefaultManager) Assign(_ context.Context, _ domain.Principal, scenario domain.Scenario, account domain.EmailAccount) error {
	if m.assigned == nil {
		m.assigned = make(map[domain.Scenario]domain.AccountRef)
	}
	m.assigned[scenario] = account.Ref()
	return nil
}

func (m *mockDefaultManager) ClearScenario(_ context.Context, _ domain.Principal, scenario domain.Scenario) error {
	m.cleared = append(m.cleared, scenario)
	return nil
}

func (m *mockDefaultManager) ScenarioAccount(_ context.Context, scenario domain.Scenario) (*domain.EmailAccount, error) {
	if scenario == domain.ScenarioDefault {
		return m.current, nil
	}
	if m.assigned == nil {
		return nil, nil
	}
	if _, ok := m.assigned[scenario]; !ok {
		return nil, nil
	}
	return m.current, nil
}

// setupCLITest swaps the package services for mocks and grants the admin
// role; the returned cleanup restores the previous wiring.
func setupCLITest(dir *mockDirectory, mgr *mockDefaultManager) func() {
	oldDir := accountDirectory
	oldMgr := defaultManager
	oldPrincipal := principal

	accountDirectory = dir
	defaultManager = mgr
	principal = domain.Principal{Name: "test", Admin: true}

	return func() {
		accountDirectory = oldDir
		defaultManager = oldMgr
		principal = oldPrincipal
	}
}
