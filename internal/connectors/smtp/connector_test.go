package smtp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mailctl/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/mailctl/internal/core/domain"
)

func TestConnector_Identity(t *testing.T) {
	connector := New(memory.NewAccountStore(domain.ConnectorSMTP))

	assert.Equal(t, domain.ConnectorSMTP, connector.ID())
	assert.NotEmpty(t, connector.Description())

	logo, err := connector.Logo(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, logo)
}

func TestConnector_AddAndDelete(t *testing.T) {
	connector := New(memory.NewAccountStore(domain.ConnectorSMTP))
	ctx := context.Background()

	account, err := connector.AddAccount(ctx, "Relay", "relay@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "relay@example.com", account.EmailAddress)
	assert.Equal(t, domain.ConnectorSMTP, account.Connector)

	accounts, err := connector.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)

	require.NoError(t, connector.DeleteAccount(ctx, account.ID))

	accounts, err = connector.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestConnector_AddAccount_InvalidAddress(t *testing.T) {
	connector := New(memory.NewAccountStore(domain.ConnectorSMTP))

	_, err := connector.AddAccount(context.Background(), "Bad", "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}
