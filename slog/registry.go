package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/kashi"
)

// Ensure LoggingRegistry implements kashi.ExtractorRegistry.
var _ kashi.ExtractorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps an ExtractorRegistry so that every extractor it
// hands out logs its extraction.
type LoggingRegistry struct {
	next   kashi.ExtractorRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next kashi.ExtractorRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// GetForURL returns the wrapped registry's extractor decorated with logging.
func (r *LoggingRegistry) GetForURL(rawURL string) kashi.LyricsExtractor {
	ext := r.next.GetForURL(rawURL)
	if ext == nil {
		return nil
	}
	return &LoggingExtractor{next: ext, url: rawURL, logger: r.logger}
}

// Ensure LoggingExtractor implements kashi.LyricsExtractor.
var _ kashi.LyricsExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a LyricsExtractor with debug logging.
type LoggingExtractor struct {
	next   kashi.LyricsExtractor
	url    string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. The url is only used
// as a log attribute and may be empty.
func NewLoggingExtractor(next kashi.LyricsExtractor, url string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, url: url, logger: logger}
}

// ExtractLyrics delegates to the wrapped extractor and logs the line count.
func (e *LoggingExtractor) ExtractLyrics(html string) (lines []string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("lyrics extraction",
			"url", e.url,
			"lines", len(lines),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractLyrics(html)
}
