package domain

import (
	"fmt"
	"net/mail"
	"strings"
)

// addressSeparator splits multi-address input strings.
const addressSeparator = ";"

// ValidateAddress checks a single email address against the mailbox
// address grammar (local-part@domain, RFC 5322 quoting rules) and returns
// the normalized form: surrounding whitespace trimmed and the domain part
// lower-cased. The local part is preserved as written, since its case is
// significant to some providers.
//
// An empty address fails with ErrEmptyAddress unless allowEmpty is set,
// in which case the empty string is returned unchanged.
func ValidateAddress(address string, allowEmpty bool) (string, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		if allowEmpty {
			return "", nil
		}
		return "", ErrEmptyAddress
	}

	parsed, err := mail.ParseAddress(trimmed)
	if err != nil || parsed.Name != "" || strings.Contains(trimmed, "<") {
		// Display names, angle brackets and other envelope decoration are
		// not acceptable here: the input must be a bare mailbox address.
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}

	at := strings.LastIndex(parsed.Address, "@")
	if at < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return parsed.Address[:at+1] + strings.ToLower(parsed.Address[at+1:]), nil
}

// ValidateAddresses validates a semicolon-separated list of addresses and
// returns the normalized, non-empty entries in input order. Empty segments
// between separators are skipped. The whole string being empty fails with
// ErrEmptyAddress unless allowEmpty is set.
func ValidateAddresses(text string, allowEmpty bool) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		if allowEmpty {
			return nil, nil
		}
		return nil, ErrEmptyAddress
	}

	var out []string
	for _, segment := range strings.Split(text, addressSeparator) {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		normalized, err := ValidateAddress(segment, false)
		if err != nil {
			return nil, err
		}
		out = append(out, normalized)
	}
	return out, nil
}
