package catalog

import (
	"net/http"
	"time"

	"github.com/quickwick/rpgvault/internal/ratelimit"
)

const (
	defaultTimeout       = 20 * time.Second
	defaultRatePerSecond = 4
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is a catalog API client bound to one vendor profile.
type Client struct {
	vendor      Vendor
	httpClient  HTTPDoer
	rateLimiter *ratelimit.Limiter
	timeout     time.Duration
}

// NewClient creates a catalog client for the given vendor.
func NewClient(vendor Vendor, opts ...Option) *Client {
	client := &Client{
		vendor:      vendor,
		timeout:     defaultTimeout,
		rateLimiter: ratelimit.New(vendor.Name, defaultRatePerSecond),
	}
	client.httpClient = &http.Client{Timeout: client.timeout}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Vendor returns the vendor profile this client is bound to.
func (c *Client) Vendor() Vendor {
	return c.vendor
}

// Clone returns a client with an independent HTTP connection state but the
// same vendor, timeout and rate limiter. Each detail fetch runs on its own
// clone so tasks do not share cookies or connections.
func (c *Client) Clone() *Client {
	clone := *c
	clone.httpClient = &http.Client{Timeout: c.timeout}
	return &clone
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. Clone still creates plain
// net/http clients; use this only when the caller drives all requests.
func WithHTTPClient(d HTTPDoer) Option {
	return func(client *Client) {
		if d != nil {
			client.httpClient = d
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(client *Client) {
		if timeout > 0 {
			client.timeout = timeout
			client.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// WithRateLimiter sets a custom rate limiter for the client.
func WithRateLimiter(limiter *ratelimit.Limiter) Option {
	return func(client *Client) {
		if limiter != nil {
			client.rateLimiter = limiter
		}
	}
}
