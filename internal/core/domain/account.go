package domain

import (
	"sort"
	"strings"
)

// EmailAccount represents one configured email account.
// Accounts are created and deleted exclusively by the connector that owns
// them; everything outside the connector only ever sees transient snapshots.
type EmailAccount struct {
	// ID is the connector-assigned account identifier. IDs are only
	// unique within a connector; different connectors may mint colliding
	// IDs, so account identity is always the (ID, Connector) pair.
	ID string

	// Connector identifies the owning connector.
	Connector ConnectorID

	// DisplayName is the human-readable account name.
	DisplayName string

	// EmailAddress is the account's address.
	EmailAddress string

	// Logo is the owning connector's logo payload. Only populated when a
	// listing was asked to load logos; empty otherwise.
	Logo []byte
}

// Ref returns the identity pair for this account.
func (a *EmailAccount) Ref() AccountRef {
	return AccountRef{AccountID: a.ID, Connector: a.Connector}
}

// AccountRef is the (account, connector) identity pair used to reference
// an account without carrying its full snapshot.
type AccountRef struct {
	AccountID string
	Connector ConnectorID
}

// IsZero reports whether the reference is empty.
func (r AccountRef) IsZero() bool {
	return r.AccountID == "" && r.Connector == ""
}

// SortAccounts orders accounts by display name, falling back to email
// address and then connector so the order is stable across listings.
func SortAccounts(accounts []EmailAccount) {
	sort.SliceStable(accounts, func(i, j int) bool {
		a, b := &accounts[i], &accounts[j]
		if c := strings.Compare(strings.ToLower(a.DisplayName), strings.ToLower(b.DisplayName)); c != 0 {
			return c < 0
		}
		if c := strings.Compare(a.EmailAddress, b.EmailAddress); c != 0 {
			return c < 0
		}
		return a.Connector < b.Connector
	})
}
