package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mailctl/internal/core/domain"
)

func TestConnectorsListCmd_Empty(t *testing.T) {
	cleanup := setupCLITest(&mockDirectory{}, &mockDefaultManager{})
	defer cleanup()

	out, err := execute(t, "connectors", "list")

	assert.NoError(t, err)
	assert.Contains(t, out, "No connectors installed.")
}

func TestConnectorsListCmd_ShowsConnectors(t *testing.T) {
	dir := &mockDirectory{
		connectors: []domain.ConnectorInfo{
			{ID: domain.ConnectorIMAP, Description: "Generic IMAP mailboxes", Logo: []byte{1, 2, 3}},
			{ID: domain.ConnectorSMTP, Description: "Outbound SMTP relays"},
		},
	}
	cleanup := setupCLITest(dir, &mockDefaultManager{})
	defer cleanup()

	out, err := execute(t, "connectors", "list")

	assert.NoError(t, err)
	assert.Contains(t, out, "imap")
	assert.Contains(t, out, "Generic IMAP mailboxes")
	assert.Contains(t, out, "logo: 3 bytes")
	assert.Contains(t, out, "smtp")
}

func TestConnectorsExportLogosCmd(t *testing.T) {
	dir := &mockDirectory{
		connectors: []domain.ConnectorInfo{
			{ID: domain.ConnectorIMAP, Description: "IMAP", Logo: []byte("png-bytes")},
			{ID: domain.ConnectorSMTP, Description: "SMTP"},
		},
	}
	cleanup := setupCLITest(dir, &mockDefaultManager{})
	defer cleanup()

	tmpDir := t.TempDir()
	out, err := execute(t, "connectors", "export-logos", "--dir", tmpDir)
	defer func() { exportLogosDir = "." }()

	assert.NoError(t, err)
	assert.Contains(t, out, "Exported 1 logos")

	data, err := os.ReadFile(filepath.Join(tmpDir, "imap.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}
