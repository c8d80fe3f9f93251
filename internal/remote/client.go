// Package remote talks to the optional analytics API that can serve
// pre-aggregated dashboard data. It is a pure optimization path: any error,
// timeout or unexpected payload shape makes the caller fall back to local
// computation, and no remote failure ever reaches the end caller.
package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/analytics"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/config"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/pkg/logger"
)

// Client wraps the remote analytics API with a lazily checked, cached
// availability flag. The flag lives on the client, not in package state, so
// tests and callers can hold independently configured instances; Invalidate
// forces the next call to probe again.
type Client struct {
	baseURL string
	http    *http.Client

	mu        sync.Mutex
	checked   bool
	available bool
}

func NewClient(cfg config.RemoteConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Available reports whether the remote API is reachable. The first call
// probes the health endpoint; the answer is cached until Invalidate.
func (c *Client) Available(ctx context.Context) bool {
	if c.baseURL == "" {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.checked {
		return c.available
	}

	c.checked = true
	c.available = c.probe(ctx)
	return c.available
}

// Invalidate drops the cached availability answer. Call it after a dataset
// upload or when a remote request fails mid-flight.
func (c *Client) Invalidate() {
	c.mu.Lock()
	c.checked = false
	c.available = false
	c.mu.Unlock()
}

func (c *Client) probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		log := logger.Component("remote")
		log.Debug().Err(err).Msg("analytics API not reachable")
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// FetchReport asks the remote API for the fully aggregated dashboard
// payload for the given filter. ok is false whenever the result cannot be
// used and the caller should compute locally.
func (c *Client) FetchReport(ctx context.Context, filter analytics.Filter) (analytics.Report, bool) {
	var report analytics.Report
	if !c.Available(ctx) {
		return report, false
	}

	endpoint := c.baseURL + "/api/v1/analytics/report?" + filterQuery(filter).Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return report, false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log := logger.Component("remote")
		log.Warn().Err(err).Msg("remote report fetch failed, computing locally")
		c.Invalidate()
		return report, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log := logger.Component("remote")
		log.Warn().Int("status", resp.StatusCode).Msg("remote report fetch failed, computing locally")
		return report, false
	}

	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		log := logger.Component("remote")
		log.Warn().Err(err).Msg("remote report had unexpected shape, computing locally")
		return report, false
	}

	return report, true
}

func filterQuery(filter analytics.Filter) url.Values {
	q := url.Values{}
	if filter.Range != "" && filter.Range != analytics.RangeLifetime {
		q.Set("range", string(filter.Range))
	}
	if filter.From != nil {
		q.Set("from", filter.From.Format("2006-01-02"))
	}
	if filter.To != nil {
		q.Set("to", filter.To.Format("2006-01-02"))
	}
	if len(filter.Products) > 0 {
		q.Set("products", strings.Join(filter.Products, ","))
	}
	if filter.Pincode != "" {
		q.Set("pincode", filter.Pincode)
	}
	return q
}
