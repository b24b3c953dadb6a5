package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/mailctl/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/mailctl/internal/core/domain"
)

// fakeConnector is a configurable connector double for service tests.
type fakeConnector struct {
	id          domain.ConnectorID
	description string
	logo        []byte

	listErr   error
	logoErr   error
	deleteErr error

	mu        sync.Mutex
	accounts  map[string]domain.EmailAccount
	deleted   []string
	logoCalls int
}

func newFakeConnector(id domain.ConnectorID, accounts ...domain.EmailAccount) *fakeConnector {
	c := &fakeConnector{
		id:          id,
		description: string(id) + " test connector",
		logo:        []byte("logo-" + string(id)),
		accounts:    make(map[string]domain.EmailAccount),
	}
	for _, account := range accounts {
		c.accounts[account.ID] = account
	}
	return c
}

func (c *fakeConnector) ID() domain.ConnectorID { return c.id }
func (c *fakeConnector) Description() string    { return c.description }

func (c *fakeConnector) Logo(context.Context) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logoCalls++
	if c.logoErr != nil {
		return nil, c.logoErr
	}
	return c.logo, nil
}

func (c *fakeConnector) ListAccounts(context.Context) ([]domain.EmailAccount, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.listErr != nil {
		return nil, c.listErr
	}
	result := make([]domain.EmailAccount, 0, len(c.accounts))
	for _, account := range c.accounts {
		result = append(result, account)
	}
	return result, nil
}

func (c *fakeConnector) DeleteAccount(_ context.Context, accountID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.deleteErr != nil {
		return c.deleteErr
	}
	delete(c.accounts, accountID)
	c.deleted = append(c.deleted, accountID)
	return nil
}

// stubChooser returns a preconfigured selection.
type stubChooser struct {
	pick   *domain.EmailAccount
	err    error
	called bool
}

func (c *stubChooser) Choose(_ context.Context, _ []domain.EmailAccount) (*domain.EmailAccount, error) {
	c.called = true
	return c.pick, c.err
}

// stubConfirm answers every confirmation the same way.
type stubConfirm struct {
	answer bool
	err    error
	called bool
}

func (c *stubConfirm) Confirm(_ context.Context, _ string) (bool, error) {
	c.called = true
	return c.answer, c.err
}

// recordingNotifier captures emitted events.
type recordingNotifier struct {
	mu             sync.Mutex
	deleted        []domain.EmailAccount
	defaultChanges []*domain.EmailAccount
}

func (n *recordingNotifier) AccountDeleted(_ context.Context, account domain.EmailAccount) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.deleted = append(n.deleted, account)
}

func (n *recordingNotifier) DefaultChanged(_ context.Context, account *domain.EmailAccount) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.defaultChanges = append(n.defaultChanges, account)
}

// testEnv wires a full registry + coordinator pair over in-memory stores.
type testEnv struct {
	catalog    *memory.Catalog
	scenarios  *memory.ScenarioStore
	rateLimits *memory.RateLimitStore
	tracker    *RateLimitTracker
	chooser    *stubChooser
	confirm    *stubConfirm
	notifier   *recordingNotifier
	directory  *AccountService
	defaults   *DefaultAccountService
}

func newTestEnv(connectors ...*fakeConnector) *testEnv {
	env := &testEnv{
		catalog:    memory.NewCatalog(),
		scenarios:  memory.NewScenarioStore(),
		rateLimits: memory.NewRateLimitStore(),
		chooser:    &stubChooser{},
		confirm:    &stubConfirm{answer: true},
		notifier:   &recordingNotifier{},
	}
	for _, connector := range connectors {
		env.catalog.Install(connector)
	}
	env.tracker = NewRateLimitTracker(env.rateLimits)
	env.directory = NewAccountService(env.catalog, env.tracker, env.confirm, env.notifier)
	env.defaults = NewDefaultAccountService(env.scenarios, env.chooser, env.notifier)
	env.directory.SetDefaultCoordinator(env.defaults)
	env.defaults.SetDirectory(env.directory)
	return env
}

func admin() domain.Principal {
	return domain.Principal{Name: "ops", Admin: true}
}

func viewer() domain.Principal {
	return domain.Principal{Name: "viewer"}
}
