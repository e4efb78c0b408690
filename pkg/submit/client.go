// Package submit posts quote form payloads to the relay endpoint.
package submit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// Client sends each payload exactly once. There is no retry and no timeout
// beyond what the transport and the caller's context impose.
type Client struct {
	endpoint   string
	encoding   Encoding
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

func WithEncoding(enc Encoding) Option {
	return func(c *Client) { c.encoding = enc }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func New(endpoint string, opts ...Option) (*Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("submit: endpoint is required")
	}
	c := &Client{
		endpoint:   endpoint,
		encoding:   EncodingURL,
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) Endpoint() string { return c.endpoint }

// Submit issues one POST and maps the answer to an Outcome: any 2xx is a
// success, every other status or transport error a failure.
func (c *Client) Submit(ctx context.Context, p Payload) Outcome {
	body, contentType, err := p.Encode(c.encoding)
	if err != nil {
		return Failure(0, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Failure(0, fmt.Sprintf("build request: %v", err))
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("quote submission failed", "endpoint", c.endpoint, "error", err)
		return Failure(0, err.Error())
	}
	defer resp.Body.Close()

	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reason := strings.TrimSpace(string(msg))
		if reason == "" {
			reason = resp.Status
		}
		c.logger.Warn("quote submission rejected", "endpoint", c.endpoint, "status", resp.StatusCode)
		return Failure(resp.StatusCode, reason)
	}

	c.logger.Debug("quote submitted", "endpoint", c.endpoint, "status", resp.StatusCode)
	return Success(resp.StatusCode)
}
