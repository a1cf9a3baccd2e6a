// Package fetch retrieves raw feed and API payloads over HTTP.
//
// It deliberately knows nothing about feed formats; parsing lives in the
// feeds package. What it does own is politeness: one rate limiter per
// host, a stable user agent, and context-aware requests.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// userAgent identifies us to feed servers.
const userAgent = "Parallax/1.0 (https://github.com/abelbrown/parallax)"

// Per-host politeness: at most 2 requests per second with a small burst.
const (
	perHostRate  = 2
	perHostBurst = 4
)

// maxBodyBytes caps how much of a response we read. Feeds are small;
// anything larger is a misconfigured URL.
const maxBodyBytes = 10 << 20

// Fetcher retrieves payloads from feed sources with per-host rate
// limiting. Safe for concurrent use.
type Fetcher struct {
	client *http.Client

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewFetcher creates a Fetcher with the given HTTP timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		limiters: make(map[string]*rate.Limiter),
	}
}

// Fetch retrieves a URL and returns the body and the response content
// type. Extra headers (API keys and the like) are applied to the
// request. The call blocks on the host's rate limiter and respects
// context cancellation throughout.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, headers map[string]string) ([]byte, string, error) {
	if ctx.Err() != nil {
		return nil, "", ctx.Err()
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, "", fmt.Errorf("invalid URL: %w", err)
	}

	if err := f.limiterFor(parsed.Hostname()).Wait(ctx); err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read body: %w", err)
	}

	return body, resp.Header.Get("Content-Type"), nil
}

// limiterFor returns the rate limiter for a host, creating it on first
// use.
func (f *Fetcher) limiterFor(host string) *rate.Limiter {
	f.mu.Lock()
	defer f.mu.Unlock()
	lim, ok := f.limiters[host]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(perHostRate), perHostBurst)
		f.limiters[host] = lim
	}
	return lim
}
