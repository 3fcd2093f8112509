// Package liveclient queries the Riot Live Client Data API that runs on
// the local machine during an active game (https://127.0.0.1:2999). The
// endpoint uses a self-signed certificate and requires no authentication;
// it simply stops answering when no game is running.
//
// The package is the estimator's snapshot provider: it converts the raw
// API payloads into snapshot structures with canonical keys. A missing or
// unreachable API surfaces as ErrUnavailable, never as a zero-value
// snapshot, so callers can distinguish "no data" from "data says zero".
package liveclient

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/kperrault/ganksense/internal/config"
)

// ErrUnavailable marks a tick on which the Live Client API could not be
// reached or returned no usable state. Callers show a waiting state and
// retry next tick.
var ErrUnavailable = errors.New("live client API unavailable")

// Client is an HTTP client for the Live Client Data API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a Client from configuration.
//
// Precondition: logger must be non-nil; cfg must have been validated.
func NewClient(cfg config.LiveClientConfig, logger *zap.Logger) *Client {
	transport := &http.Transport{}
	if cfg.InsecureSkipVerify {
		// Riot's local endpoint ships a self-signed certificate.
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		logger: logger,
	}
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	url := c.baseURL + "/" + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("live client API not reachable",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return fmt.Errorf("%s: %w", endpoint, ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: status %d: %w", endpoint, resp.StatusCode, ErrUnavailable)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", endpoint, err)
	}
	return nil
}

// GameActive reports whether a game is currently running.
func (c *Client) GameActive(ctx context.Context) bool {
	var stats apiGameStats
	return c.get(ctx, "gamestats", &stats) == nil
}

// GameTime returns the elapsed match time in seconds.
func (c *Client) GameTime(ctx context.Context) (float64, error) {
	var stats apiGameStats
	if err := c.get(ctx, "gamestats", &stats); err != nil {
		return 0, err
	}
	return stats.GameTime, nil
}
