// Package mailcow implements the connector for mailboxes hosted on a
// Mailcow server. Unlike the local connectors, accounts live remotely:
// every listing and deletion is an API call.
package mailcow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a minimal Mailcow API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Config for the Mailcow client.
type Config struct {
	BaseURL string // e.g., https://mail.example.com
	APIKey  string
}

// Mailbox represents a mailbox in Mailcow.
type Mailbox struct {
	Username  string `json:"username"` // full address, unique per server
	Name      string `json:"name"`
	LocalPart string `json:"local_part"`
	Domain    string `json:"domain"`
	Active    int    `json:"active"`
}

// APIResponse is the generic mutation response envelope.
type APIResponse struct {
	Type string   `json:"type"`
	Msg  []string `json:"msg"`
}

// NewClient creates a new Mailcow API client.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// IsConfigured returns true if the Mailcow integration is configured.
func (c *Client) IsConfigured() bool {
	return c.baseURL != "" && c.apiKey != ""
}

// ListMailboxes returns every mailbox on the server.
func (c *Client) ListMailboxes(ctx context.Context) ([]Mailbox, error) {
	if !c.IsConfigured() {
		return nil, fmt.Errorf("mailcow not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/get/mailbox/all", nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error: %s (status %d)", string(body), resp.StatusCode)
	}

	var mailboxes []Mailbox
	if err := json.Unmarshal(body, &mailboxes); err != nil {
		return nil, fmt.Errorf("parsing response: %w (body: %s)", err, string(body))
	}
	return mailboxes, nil
}

// DeleteMailbox deletes a mailbox by its full address.
func (c *Client) DeleteMailbox(ctx context.Context, address string) error {
	if !c.IsConfigured() {
		return fmt.Errorf("mailcow not configured")
	}

	payload, err := json.Marshal([]string{address})
	if err != nil {
		return fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/delete/mailbox", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API error: %s (status %d)", string(body), resp.StatusCode)
	}

	var responses []APIResponse
	if err := json.Unmarshal(body, &responses); err != nil {
		return fmt.Errorf("parsing response: %w (body: %s)", err, string(body))
	}
	for _, r := range responses {
		if r.Type != "success" {
			msg := "unknown error"
			if len(r.Msg) > 0 {
				msg = r.Msg[0]
			}
			return fmt.Errorf("API error: %s", msg)
		}
	}
	return nil
}
