// Package imap implements the connector for generic IMAP mailboxes.
// Account records live in this connector's partition of the local store;
// the optional probe verifies credentials against the live server.
package imap

import (
	"context"
	_ "embed"

	"github.com/google/uuid"

	"github.com/custodia-labs/mailctl/internal/core/domain"
	"github.com/custodia-labs/mailctl/internal/core/ports/driven"
)

//go:embed logo.png
var logo []byte

// Ensure Connector implements the port.
var _ driven.Connector = (*Connector)(nil)

// Connector manages locally stored IMAP accounts.
type Connector struct {
	store driven.AccountStore
}

// New creates the IMAP connector over its scoped account store.
func New(store driven.AccountStore) *Connector {
	return &Connector{store: store}
}

// ID returns the connector identifier.
func (c *Connector) ID() domain.ConnectorID {
	return domain.ConnectorIMAP
}

// Description returns a short human-readable description.
func (c *Connector) Description() string {
	return "Generic IMAP mailbox accounts"
}

// Logo returns the embedded connector logo.
func (c *Connector) Logo(context.Context) ([]byte, error) {
	return logo, nil
}

// ListAccounts returns a snapshot of the stored accounts.
func (c *Connector) ListAccounts(ctx context.Context) ([]domain.EmailAccount, error) {
	if c.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return c.store.List(ctx)
}

// DeleteAccount removes an account. Absent IDs are a silent no-op.
func (c *Connector) DeleteAccount(ctx context.Context, accountID string) error {
	if c.store == nil {
		return domain.ErrNotImplemented
	}
	return c.store.Delete(ctx, accountID)
}

// AddAccount validates and stores a new account, returning the stored
// record with its minted ID.
func (c *Connector) AddAccount(ctx context.Context, displayName, address string) (*domain.EmailAccount, error) {
	if c.store == nil {
		return nil, domain.ErrNotImplemented
	}
	normalized, err := domain.ValidateAddress(address, false)
	if err != nil {
		return nil, err
	}
	if displayName == "" {
		displayName = normalized
	}

	account := domain.EmailAccount{
		ID:           uuid.NewString(),
		Connector:    domain.ConnectorIMAP,
		DisplayName:  displayName,
		EmailAddress: normalized,
	}
	if err := c.store.Save(ctx, account); err != nil {
		return nil, err
	}
	return &account, nil
}
