// Package http provides net/http implementations of kashi.Fetcher and
// kashi.SourceFinder for static lyrics pages and web search.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/kashi"
)

// DefaultFetchTimeout is the default timeout for page requests.
const DefaultFetchTimeout = 15 * time.Second

// DefaultUserAgent is a desktop browser user agent. Several lyrics sites
// refuse requests from obvious bots.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// maxBodySize caps how much of a page is read.
const maxBodySize = 10 << 20

// Ensure Fetcher implements kashi.Fetcher at compile time.
var _ kashi.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML pages with plain HTTP requests. It does not
// execute JavaScript; use rod.Fetcher for pages rendered client side.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// A 404 response returns ENOTFOUND and a 429 response returns ERATELIMIT.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := newPageRequest(ctx, url, f.userAgent)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, url); err != nil {
		return "", err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// newPageRequest builds a GET request carrying browser-like headers.
func newPageRequest(ctx context.Context, url, userAgent string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, kashi.Errorf(kashi.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	return req, nil
}

// checkStatus maps non-200 responses to errors.
func checkStatus(resp *http.Response, url string) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return kashi.Errorf(kashi.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	case http.StatusTooManyRequests:
		return kashi.Errorf(kashi.ERATELIMIT, "HTTP %d for %s", resp.StatusCode, url)
	default:
		return fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
}
