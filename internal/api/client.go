// Package api implements the read-only client for the users collection
// endpoint. One GET per acquisition, no retries, no pagination.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"userdash/internal/model"
)

// IsCancelled reports whether err came from a cancelled acquisition,
// as opposed to a transport or status failure.
func IsCancelled(err error) bool {
	return errors.Is(err, context.Canceled)
}

type Client struct {
	endpoint string
	hc       *http.Client
	logger   *zap.Logger
}

// NewClient builds a client for the given endpoint. A nil logger is
// replaced with a no-op one so callers without logging set up stay quiet.
func NewClient(endpoint string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		endpoint: endpoint,
		hc:       &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// FetchUsers performs one GET against the endpoint and decodes the JSON
// array of users. A non-2xx status is an error carrying the status code.
// Context cancellation surfaces as an error wrapping context.Canceled so
// the caller can tell teardown apart from failure.
func (c *Client) FetchUsers(ctx context.Context) ([]model.User, error) {
	start := time.Now()
	c.logger.Debug("fetching users", zap.String("endpoint", c.endpoint))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			c.logger.Debug("fetch cancelled")
			return nil, fmt.Errorf("fetch users: %w", context.Canceled)
		}
		c.logger.Warn("fetch failed", zap.Error(err))
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		c.logger.Warn("unexpected status", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("fetch users: unexpected status %d", resp.StatusCode)
	}

	var users []model.User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		c.logger.Warn("decode failed", zap.Error(err))
		return nil, fmt.Errorf("decode users: %w", err)
	}

	c.logger.Info("fetched users",
		zap.Int("count", len(users)),
		zap.Duration("elapsed", time.Since(start)))
	return users, nil
}
