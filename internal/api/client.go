// Package api implements the HTTP client for the lingua assistant backend.
package api

import (
	"net/http"
	"strings"
)

// Client talks to the assistant backend over plain HTTP. One request is
// in flight at a time; the caller serializes access.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Used by tests.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a client for the backend at baseURL. The default
// HTTP client carries no timeout: a slow backend keeps the exchange
// pending rather than failing it.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	client := &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + path
}
