package driven

import (
	"context"

	"github.com/custodia-labs/mailctl/internal/core/domain"
)

// Connector is one installed provider integration. Each connector owns its
// accounts outright: the core only ever reads transient snapshots and asks
// the connector to delete, it never writes into connector storage itself.
type Connector interface {
	// ID returns the connector's stable identifier.
	ID() domain.ConnectorID

	// Description returns a short human-readable description.
	Description() string

	// Logo returns the connector's logo as an encoded image payload.
	// An empty payload with a nil error means the connector has no logo.
	Logo(ctx context.Context) ([]byte, error)

	// ListAccounts returns a snapshot of the connector's accounts.
	// Implementations fill in every field except Logo; the caller tags
	// logos on when asked to.
	ListAccounts(ctx context.Context) ([]domain.EmailAccount, error)

	// DeleteAccount removes an account by its connector-local ID.
	// Deleting an ID that no longer exists is a silent no-op.
	DeleteAccount(ctx context.Context, accountID string) error
}

// ConnectorCatalog is the set of currently installed connectors.
// The set can change while the process runs (another session may install
// or uninstall a connector), so results must be re-queried rather than
// cached before any destructive operation.
type ConnectorCatalog interface {
	// Connectors returns the currently installed connectors.
	Connectors() []Connector

	// Get returns the installed connector with the given ID, if any.
	Get(id domain.ConnectorID) (Connector, bool)
}
