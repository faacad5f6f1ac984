package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"
)

// ClientConfig holds configuration for the download client
type ClientConfig struct {
	Timeout      time.Duration
	MaxRetries   int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	RateLimit    float64 // requests per second
}

// DefaultClientConfig returns recommended defaults for football-data.co.uk,
// which is a static file host and does not appreciate being hammered.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Timeout:      30 * time.Second,
		MaxRetries:   3,
		RetryWaitMin: 200 * time.Millisecond,
		RetryWaitMax: 5 * time.Second,
		RateLimit:    2.0,
	}
}

// Client is a rate-limited HTTP client for fetching season files.
type Client struct {
	client  *retryablehttp.Client
	limiter *rate.Limiter
}

// NewClient creates a new rate-limited download client
func NewClient(cfg ClientConfig) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.RetryMax = cfg.MaxRetries
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.CheckRetry = downloadRetryPolicy
	retryClient.Logger = nil

	return &Client{
		client:  retryClient,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
	}
}

// Fetch downloads one URL and returns its body.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	return body, nil
}

// Close closes any resources held by the client
func (c *Client) Close() {
	c.client.HTTPClient.CloseIdleConnections()
}

// downloadRetryPolicy retries network errors, rate limiting and server
// errors, never other client errors.
func downloadRetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return true, err
	}
	switch resp.StatusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true, nil
	}
	return false, nil
}
