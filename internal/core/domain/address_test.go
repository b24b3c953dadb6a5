package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAddress_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "user@example.com", "user@example.com"},
		{"domain lowercased", "user@EXAMPLE.COM", "user@example.com"},
		{"local part case preserved", "User@Example.com", "User@example.com"},
		{"surrounding whitespace trimmed", "  user@example.com  ", "user@example.com"},
		{"plus tag", "user+tag@example.com", "user+tag@example.com"},
		{"subdomain", "a@mail.example.co.uk", "a@mail.example.co.uk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAddress(tt.input, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateAddress_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no at sign", "userexample.com"},
		{"no domain", "user@"},
		{"no local part", "@example.com"},
		{"spaces inside", "user name@example.com"},
		{"display name form", "User <user@example.com>"},
		{"bare angle form", "<user@example.com>"},
		{"double at", "a@b@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAddress(tt.input, false)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidAddress)
			assert.Contains(t, err.Error(), tt.input)
		})
	}
}

func TestValidateAddress_Empty(t *testing.T) {
	_, err := ValidateAddress("", false)
	assert.ErrorIs(t, err, ErrEmptyAddress)

	_, err = ValidateAddress("   ", false)
	assert.ErrorIs(t, err, ErrEmptyAddress)

	got, err := ValidateAddress("", true)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestValidateAddresses_List(t *testing.T) {
	got, err := ValidateAddresses("a@b.com;c@D.com", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a@b.com", "c@d.com"}, got)
}

func TestValidateAddresses_SkipsEmptySegments(t *testing.T) {
	got, err := ValidateAddresses("a@b.com;;c@d.com;", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a@b.com", "c@d.com"}, got)
}

func TestValidateAddresses_ReportsOffendingSegment(t *testing.T) {
	_, err := ValidateAddresses("a@b.com;bad;c@d.com", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAddress)
	assert.Contains(t, err.Error(), "bad")
}

func TestValidateAddresses_Empty(t *testing.T) {
	got, err := ValidateAddresses("", true)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ValidateAddresses("", false)
	assert.ErrorIs(t, err, ErrEmptyAddress)
}
