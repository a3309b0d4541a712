// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scholar fetches and parses Google Scholar profile pages.
package scholar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/SamirRachidZaim/scholar-metrics/internal/httputil"
)

// profileBase is the public Google Scholar citations endpoint. Clients use
// it as the default request target; tests point them elsewhere with
// WithBaseURL.
var profileBase = "https://scholar.google.com/citations"

// ErrBlocked indicates Google Scholar refused the request (HTTP 403).
// Scraping blocks do not clear quickly, so callers should fall back to
// another source rather than retry.
var ErrBlocked = errors.New("scholar: request blocked (HTTP 403)")

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRequestsPerMinute keeps the scrape well below anything that
	// looks like automation to the profile page.
	DefaultRequestsPerMinute = 6.0
)

// Client is a rate-limited HTTP client for Google Scholar profile pages.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
	cookie     string
	baseURL    string
	maxRetries int
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom citations endpoint (for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithUserAgent sets the User-Agent header sent with requests.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithCookie sets a Cookie header sent with requests. A browser session
// cookie sometimes gets past blocks that anonymous requests hit.
func WithCookie(cookie string) ClientOption {
	return func(c *Client) {
		c.cookie = cookie
	}
}

// WithRequestsPerMinute overrides the scrape rate limit.
func WithRequestsPerMinute(rpm float64) ClientOption {
	return func(c *Client) {
		if rpm > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rpm/60.0), 1)
		}
	}
}

// WithMaxRetries sets the retry budget for transient HTTP failures.
func WithMaxRetries(n int) ClientOption {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// NewClient creates a Google Scholar profile page client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(DefaultRequestsPerMinute/60.0), 1),
		userAgent:  "scholar-metrics/0.1",
		baseURL:    profileBase,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ProfileURL returns the public URL of a profile page for a user ID.
func ProfileURL(userID string) string {
	return fmt.Sprintf("%s?user=%s&hl=en", profileBase, url.QueryEscape(userID))
}

// FetchSummary downloads a profile page and parses its citation summary
// table. A 403 response returns ErrBlocked.
func (c *Client) FetchSummary(ctx context.Context, userID string) (Summary, error) {
	if userID == "" {
		return Summary{}, fmt.Errorf("scholar: empty profile ID")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return Summary{}, err
	}

	params := url.Values{
		"user": {userID},
		"hl":   {"en"},
	}
	reqURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Summary{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.maxRetries)
	if err != nil {
		return Summary{}, fmt.Errorf("profile page request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return Summary{}, ErrBlocked
	case resp.StatusCode != http.StatusOK:
		return Summary{}, fmt.Errorf("profile page returned HTTP %d", resp.StatusCode)
	}

	summary, err := ParseSummary(resp.Body)
	if err != nil {
		return Summary{}, fmt.Errorf("parsing profile page for %s: %w", userID, err)
	}
	return summary, nil
}
