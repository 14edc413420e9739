package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

func (c *Client) do(ctx context.Context, endpoint string) (*http.Response, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

func (c *Client) getJSON(ctx context.Context, endpoint string, target any) error {
	resp, err := c.do(ctx, endpoint)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return ErrEmptyResponse
	}

	return json.Unmarshal(raw, target)
}

// FetchDocument retrieves and decodes one product detail document. A 404
// answer maps to ErrNotFound so callers can report a malformed URL; an empty
// body maps to ErrEmptyResponse. Redirects are followed by the underlying
// HTTP client.
func (c *Client) FetchDocument(ctx context.Context, endpoint string) (*ProductDocument, error) {
	resp, err := c.do(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrEmptyResponse
	}

	var doc ProductDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode product document: %w", err)
	}

	return &doc, nil
}

// FetchBytes retrieves an asset (a cover image) and returns its raw bytes.
func (c *Client) FetchBytes(ctx context.Context, endpoint string) ([]byte, error) {
	resp, err := c.do(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, endpoint)
	}

	return io.ReadAll(resp.Body)
}
