// Package rod implements kashi.Fetcher with a headless Chrome browser, for
// lyrics sites that render their content with JavaScript.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/kashi"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page load, including navigation and
// waiting for the load event.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements kashi.Fetcher at compile time.
var _ kashi.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager  *BrowserManager
	timeout  time.Duration
	maxPages int64
	closed   atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithBrowserRecycle sets how many pages are rendered before the browser
// process is replaced.
func WithBrowserRecycle(maxPages int64) Option {
	return func(f *Fetcher) {
		f.maxPages = maxPages
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager(WithMaxPages(f.maxPages))
	if err != nil {
		return nil, err
	}
	f.manager = manager
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
// Returns EINVALID if the fetcher has been closed.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", kashi.Errorf(kashi.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	browser, release := f.manager.Acquire()
	defer release()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}

// LauncherPID returns the process ID of the browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}
