package kashi

import "context"

// Fetcher retrieves the HTML of a candidate lyrics page.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the URL and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
