package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/kashi"
)

// Ensure LoggingSourceFinder implements kashi.SourceFinder.
var _ kashi.SourceFinder = (*LoggingSourceFinder)(nil)

// LoggingSourceFinder wraps a SourceFinder with debug logging.
type LoggingSourceFinder struct {
	next   kashi.SourceFinder
	logger *slog.Logger
}

// NewLoggingSourceFinder creates a new LoggingSourceFinder.
func NewLoggingSourceFinder(next kashi.SourceFinder, logger *slog.Logger) *LoggingSourceFinder {
	return &LoggingSourceFinder{next: next, logger: logger}
}

// FindSources delegates to the wrapped finder and logs the operation.
func (s *LoggingSourceFinder) FindSources(ctx context.Context, title string) (sources []kashi.Source, err error) {
	defer func(begin time.Time) {
		s.logger.Info("source discovery",
			"title", title,
			"count", len(sources),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSources(ctx, title)
}
