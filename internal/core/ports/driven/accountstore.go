package driven

import (
	"context"

	"github.com/custodia-labs/mailctl/internal/core/domain"
)

// AccountStore persists accounts for connectors whose accounts live
// locally (imap, smtp). Remote connectors (mailcow) keep their accounts on
// the provider side and do not use this interface.
//
// A store instance is scoped to a single connector; the connector is the
// only component that writes through it.
type AccountStore interface {
	// Save stores or updates an account.
	Save(ctx context.Context, account domain.EmailAccount) error

	// Get retrieves an account by its connector-local ID.
	// Returns domain.ErrNotFound when the account does not exist.
	Get(ctx context.Context, id string) (*domain.EmailAccount, error)

	// Delete removes an account. Deleting an absent ID is a no-op.
	Delete(ctx context.Context, id string) error

	// List returns all accounts owned by the scoped connector.
	List(ctx context.Context) ([]domain.EmailAccount, error)
}
