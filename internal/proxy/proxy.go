// Package proxy implements the client side of the network indirection
// boundary the fast provider is reached through. The proxy itself is an
// external collaborator: it accepts a request envelope and returns the
// upstream HTTP response verbatim.
package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Request is the envelope the proxy accepts.
type Request struct {
	Protocol string            `json:"protocol"`
	Origin   string            `json:"origin"`
	Path     string            `json:"path"`
	Method   string            `json:"method"`
	Headers  map[string]string `json:"headers,omitempty"`
	Body     string            `json:"body,omitempty"`
}

// Response carries the upstream status and body back to the caller.
type Response struct {
	StatusCode int
	Body       []byte
}

type Client struct {
	endpoint string
	client   *http.Client
}

func New(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Forward posts the envelope to the proxy and returns the upstream response.
// A transport or proxy-level failure is an error; an upstream non-2xx status
// is not — interpreting the status is the caller's concern.
func (c *Client) Forward(ctx context.Context, req Request) (*Response, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal proxy request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create proxy request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("proxy request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read proxy response: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}
