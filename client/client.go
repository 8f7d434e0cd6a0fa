// Package client implements the shared HTTP client every resource operation
// delegates to. It owns auth, JSON encoding, idempotency keys and the
// decoding of API error envelopes; resource packages only compose paths.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is the live API endpoint.
const DefaultBaseURL = "https://api.stripe.com/v1"

const defaultTimeout = 30 * time.Second

type Client struct {
	// BaseURL defaults to DefaultBaseURL. Overridable so tests and mock
	// servers can redirect the client.
	BaseURL string

	apiKey     string
	httpClient *http.Client
}

// New returns a client authenticating with the given secret key.
func New(apiKey string) *Client {
	return NewWithHTTPClient(apiKey, &http.Client{Timeout: defaultTimeout})
}

// NewWithHTTPClient returns a client that issues requests through the given
// http.Client. Timeouts, TLS config and proxies belong to the caller.
func NewWithHTTPClient(apiKey string, httpClient *http.Client) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Get issues a GET for path and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// Post serializes body as JSON, issues a POST for path and decodes the
// response into out. A nil body sends an empty request body. Every POST
// carries a fresh idempotency key so a retransmitted request can't double
// apply on the remote end.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	var buf []byte
	if body != nil {
		var err error
		buf, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error encoding request: %w", err)
		}
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Idempotency-Key", uuid.NewString())
	return c.do(req, out)
}

// Delete issues a DELETE for path and decodes the response into out. Any
// parameters must already be query-encoded into path by the caller.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}
	return nil
}
