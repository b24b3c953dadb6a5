package mailcow

import (
	"context"
	_ "embed"

	"github.com/custodia-labs/mailctl/internal/core/domain"
	"github.com/custodia-labs/mailctl/internal/core/ports/driven"
)

//go:embed logo.png
var logo []byte

// Throttle gates outgoing API calls per account. Implemented by the
// rate-limit tracker; may be nil to disable throttling.
type Throttle interface {
	Wait(ctx context.Context, account domain.AccountRef) error
}

// Ensure Connector implements the port.
var _ driven.Connector = (*Connector)(nil)

// Connector exposes a Mailcow server's mailboxes as accounts.
// The mailbox username (its full address) doubles as the account ID.
type Connector struct {
	client   *Client
	throttle Throttle
}

// New creates the Mailcow connector. throttle may be nil.
func New(client *Client, throttle Throttle) *Connector {
	return &Connector{client: client, throttle: throttle}
}

// ID returns the connector identifier.
func (c *Connector) ID() domain.ConnectorID {
	return domain.ConnectorMailcow
}

// Description returns a short human-readable description.
func (c *Connector) Description() string {
	return "Mailboxes hosted on a Mailcow server"
}

// Logo returns the embedded connector logo.
func (c *Connector) Logo(context.Context) ([]byte, error) {
	return logo, nil
}

// ListAccounts queries the server for its mailboxes.
func (c *Connector) ListAccounts(ctx context.Context) ([]domain.EmailAccount, error) {
	mailboxes, err := c.client.ListMailboxes(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.EmailAccount, 0, len(mailboxes))
	for _, mailbox := range mailboxes {
		name := mailbox.Name
		if name == "" {
			name = mailbox.Username
		}
		accounts = append(accounts, domain.EmailAccount{
			ID:           mailbox.Username,
			Connector:    domain.ConnectorMailcow,
			DisplayName:  name,
			EmailAddress: mailbox.Username,
		})
	}
	return accounts, nil
}

// DeleteAccount deletes the mailbox on the server, honoring the
// account's throttle first.
func (c *Connector) DeleteAccount(ctx context.Context, accountID string) error {
	if c.throttle != nil {
		ref := domain.AccountRef{AccountID: accountID, Connector: domain.ConnectorMailcow}
		if err := c.throttle.Wait(ctx, ref); err != nil {
			return err
		}
	}
	return c.client.DeleteMailbox(ctx, accountID)
}
