package imap

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-imap/client"

	"github.com/custodia-labs/mailctl/internal/core/domain"
	"github.com/custodia-labs/mailctl/internal/logger"
)

// probeTimeout bounds the whole connect-login-logout round trip.
const probeTimeout = 15 * time.Second

// Probe connects to the account's IMAP server over TLS and attempts a
// login, verifying that the stored account is actually usable. server may
// be empty, in which case the conventional host for the address domain is
// tried (imap.<domain>:993).
func (c *Connector) Probe(ctx context.Context, account domain.EmailAccount, password, server string) error {
	if server == "" {
		derived, err := deriveServer(account.EmailAddress)
		if err != nil {
			return err
		}
		server = derived
	}
	if !strings.Contains(server, ":") {
		server += ":993"
	}

	logger.Debug("probing %s via %s", account.EmailAddress, server)

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	type result struct {
		conn *client.Client
		err  error
	}
	dialed := make(chan result, 1)
	go func() {
		conn, err := client.DialTLS(server, &tls.Config{ServerName: strings.Split(server, ":")[0]})
		dialed <- result{conn: conn, err: err}
	}()

	var conn *client.Client
	select {
	case <-ctx.Done():
		return fmt.Errorf("connecting to %s: %w", server, ctx.Err())
	case r := <-dialed:
		if r.err != nil {
			return fmt.Errorf("connecting to %s: %w", server, r.err)
		}
		conn = r.conn
	}
	defer func() {
		if err := conn.Logout(); err != nil {
			logger.Debug("logout from %s: %v", server, err)
		}
	}()

	conn.Timeout = probeTimeout
	if err := conn.Login(account.EmailAddress, password); err != nil {
		return fmt.Errorf("login as %s: %w", account.EmailAddress, err)
	}

	logger.Info("probe succeeded for %s", account.EmailAddress)
	return nil
}

func deriveServer(address string) (string, error) {
	at := strings.LastIndex(address, "@")
	if at < 0 || at == len(address)-1 {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidAddress, address)
	}
	return "imap." + address[at+1:] + ":993", nil
}
