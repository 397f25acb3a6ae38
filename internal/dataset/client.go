// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tomtom215/dailymoma/internal/logging"
	"github.com/tomtom215/dailymoma/internal/metrics"
)

// lfsPointerPrefix starts every Git LFS pointer file.
var lfsPointerPrefix = []byte("version https://git-lfs.github.com/spec/v1")

// Fetcher retrieves the raw collection payload.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// Ensure Client implements Fetcher
var _ Fetcher = (*Client)(nil)

// Client downloads the collection export over HTTP.
type Client struct {
	url        string
	userAgent  string
	maxBytes   int64
	httpClient *http.Client
}

// NewClient creates an upstream client from cfg. The request timeout covers
// the whole download including the body.
func NewClient(cfg Config) *Client {
	return &Client{
		url:       cfg.URL,
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBytes,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// URL returns the collection endpoint.
func (c *Client) URL() string {
	return c.url
}

// Fetch downloads the collection and returns the raw body.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("%w: %d %s", ErrUpstreamStatus, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if c.maxBytes > 0 && resp.ContentLength > c.maxBytes {
		return nil, fmt.Errorf("%w: content length %d > %d", ErrPayloadTooLarge, resp.ContentLength, c.maxBytes)
	}

	reader := io.Reader(resp.Body)
	if c.maxBytes > 0 {
		reader = io.LimitReader(resp.Body, c.maxBytes+1)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if c.maxBytes > 0 && int64(len(body)) > c.maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrPayloadTooLarge, c.maxBytes)
	}

	if bytes.HasPrefix(bytes.TrimLeft(body, " \t\r\n"), lfsPointerPrefix) {
		return nil, ErrLFSPointer
	}

	metrics.DatasetFetchBytes.Observe(float64(len(body)))
	logging.Debug().Str("url", c.url).Int("bytes", len(body)).Msg("Fetched collection payload")

	return body, nil
}
