package domain

// ConnectorID identifies a provider integration (e.g., "imap", "mailcow").
// The set of valid IDs is whatever the catalog has installed at call time;
// connectors can be installed and uninstalled while the process runs, so
// callers must re-check validity before acting on an ID they captured earlier.
type ConnectorID string

// Built-in connector identifiers.
const (
	// ConnectorIMAP is the generic IMAP mailbox connector.
	ConnectorIMAP ConnectorID = "imap"
	// ConnectorSMTP is the outbound SMTP relay connector.
	ConnectorSMTP ConnectorID = "smtp"
	// ConnectorMailcow is the Mailcow server API connector.
	ConnectorMailcow ConnectorID = "mailcow"
)

// ConnectorInfo describes an installed connector, whether or not it
// currently has any accounts.
type ConnectorInfo struct {
	// ID is the connector's stable identifier.
	ID ConnectorID

	// Description is a short human-readable explanation of the connector.
	Description string

	// Logo is an encoded image payload. May be empty if the connector
	// provides no logo.
	Logo []byte
}
