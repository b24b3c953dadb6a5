package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCmd_NormalisesAddresses(t *testing.T) {
	cleanup := setupCLITest(&mockDirectory{}, &mockDefaultManager{})
	defer cleanup()

	out, err := execute(t, "validate", "Alice@EXAMPLE.com")

	assert.NoError(t, err)
	assert.Contains(t, out, "Alice@example.com")
}

func TestValidateCmd_MultipleAddresses(t *testing.T) {
	cleanup := setupCLITest(&mockDirectory{}, &mockDefaultManager{})
	defer cleanup()

	out, err := execute(t, "validate", "a@example.com; b@Example.Org")

	assert.NoError(t, err)
	assert.Contains(t, out, "a@example.com")
	assert.Contains(t, out, "b@example.org")
}

func TestValidateCmd_InvalidAddress(t *testing.T) {
	cleanup := setupCLITest(&mockDirectory{}, &mockDefaultManager{})
	defer cleanup()

	_, err := execute(t, "validate", "not-an-address")

	assert.ErrorContains(t, err, "validation failed")
}

func TestValidateCmd_AllowEmpty(t *testing.T) {
	cleanup := setupCLITest(&mockDirectory{}, &mockDefaultManager{})
	defer cleanup()

	out, err := execute(t, "validate", " ; ", "--allow-empty")

	assert.NoError(t, err)
	assert.Contains(t, out, "(empty)")
}

func TestVersionCmd(t *testing.T) {
	cleanup := setupCLITest(&mockDirectory{}, &mockDefaultManager{})
	defer cleanup()

	out, err := execute(t, "version")

	assert.NoError(t, err)
	assert.Contains(t, out, "mailctl version")
}
