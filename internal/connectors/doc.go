// Package connectors contains the provider integrations.
//
// Each subpackage implements the driven.Connector port for one provider:
//
//   - imap: generic IMAP mailboxes, accounts stored locally
//   - smtp: outbound SMTP relays, accounts stored locally
//   - mailcow: mailboxes living on a remote Mailcow server
//
// Connectors own their accounts outright. The core only reads snapshots
// via ListAccounts and requests deletions via DeleteAccount; it never
// writes into a connector's storage.
package connectors
