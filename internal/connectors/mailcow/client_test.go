package mailcow

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mailctl/internal/core/domain"
)

func TestClient_ListMailboxes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/get/mailbox/all", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))

		_ = json.NewEncoder(w).Encode([]Mailbox{
			{Username: "a@example.com", Name: "Alice", LocalPart: "a", Domain: "example.com", Active: 1},
			{Username: "b@example.com", Name: "", LocalPart: "b", Domain: "example.com", Active: 1},
		})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "secret"})

	mailboxes, err := client.ListMailboxes(context.Background())
	require.NoError(t, err)
	require.Len(t, mailboxes, 2)
	assert.Equal(t, "a@example.com", mailboxes[0].Username)
}

func TestClient_ListMailboxes_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "secret"})

	_, err := client.ListMailboxes(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_DeleteMailbox(t *testing.T) {
	var gotPayload []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/delete/mailbox", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))

		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotPayload))
		_ = json.NewEncoder(w).Encode([]APIResponse{{Type: "success"}})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "secret"})

	require.NoError(t, client.DeleteMailbox(context.Background(), "a@example.com"))
	assert.Equal(t, []string{"a@example.com"}, gotPayload)
}

func TestClient_DeleteMailbox_APIFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]APIResponse{{Type: "danger", Msg: []string{"object not found"}}})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "secret"})

	err := client.DeleteMailbox(context.Background(), "missing@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "object not found")
}

func TestClient_NotConfigured(t *testing.T) {
	client := NewClient(Config{})

	assert.False(t, client.IsConfigured())
	_, err := client.ListMailboxes(context.Background())
	assert.Error(t, err)
	assert.Error(t, client.DeleteMailbox(context.Background(), "a@example.com"))
}

func TestConnector_ListAccounts_MapsMailboxes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]Mailbox{
			{Username: "a@example.com", Name: "Alice", Active: 1},
			{Username: "b@example.com", Active: 1},
		})
	}))
	defer server.Close()

	connector := New(NewClient(Config{BaseURL: server.URL, APIKey: "secret"}), nil)

	accounts, err := connector.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	assert.Equal(t, domain.ConnectorMailcow, accounts[0].Connector)
	assert.Equal(t, "a@example.com", accounts[0].ID)
	assert.Equal(t, "Alice", accounts[0].DisplayName)
	// Mailboxes without a name fall back to their address.
	assert.Equal(t, "b@example.com", accounts[1].DisplayName)
}

func TestConnector_Identity(t *testing.T) {
	connector := New(NewClient(Config{}), nil)

	assert.Equal(t, domain.ConnectorMailcow, connector.ID())
	assert.NotEmpty(t, connector.Description())

	logo, err := connector.Logo(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, logo)
}
