package driving

import (
	"context"

	"github.com/custodia-labs/mailctl/internal/core/domain"
)

// AccountDirectory aggregates accounts and metadata across every installed
// connector.
type AccountDirectory interface {
	// ListAllAccounts returns every account from every installed
	// connector, ordered by display name. When loadLogos is set, each
	// account carries its connector's (cached) logo. A failing connector
	// is skipped; its failure is reported in the returned error alongside
	// the accounts that could be aggregated.
	ListAllAccounts(ctx context.Context, loadLogos bool) ([]domain.EmailAccount, error)

	// IsAnyAccountRegistered reports whether any connector has at least
	// one account.
	IsAnyAccountRegistered(ctx context.Context) (bool, error)

	// IsAccountRegistered reports whether the (accountID, connector) pair
	// exists. An empty accountID or an uninstalled connector short-circuit
	// to false without a listing call.
	IsAccountRegistered(ctx context.Context, accountID string, connector domain.ConnectorID) (bool, error)

	// ListAllConnectors describes every installed connector, with
	// description and logo queried fresh from the connector itself.
	ListAllConnectors(ctx context.Context) ([]domain.ConnectorInfo, error)

	// IsValidConnector reports whether the ID is currently installed.
	// Always re-checked against the live catalog, never cached.
	IsValidConnector(id domain.ConnectorID) bool

	// DeleteAccounts deletes the given accounts through their owning
	// connectors and repairs the default assignment afterwards. Requires
	// an administrator principal. When promptConfirmation is set, the
	// user is asked before anything is deleted.
	DeleteAccounts(ctx context.Context, principal domain.Principal, accounts []domain.EmailAccount, promptConfirmation bool) error
}
