// Package slog provides logging decorators for the kashi pipeline services.
package slog

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/kashi"
)

// Ensure LoggingFetcher implements kashi.Fetcher.
var _ kashi.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs every page fetch with the lyrics site host, the page
// size and the time taken.
type LoggingFetcher struct {
	next   kashi.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next kashi.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, rawURL string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("page fetch",
			"site", siteHost(rawURL),
			"url", rawURL,
			"bytes", len(html),
			"japanese", kashi.ContainsJapanese(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, rawURL)
}

// siteHost returns the host of rawURL without a leading "www.", or an
// empty string when rawURL has no host.
func siteHost(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
