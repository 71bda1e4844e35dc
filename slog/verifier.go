package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/kashi"
)

// Ensure LoggingVerifier implements kashi.Verifier.
var _ kashi.Verifier = (*LoggingVerifier)(nil)

// LoggingVerifier wraps a Verifier with debug logging. Prompt text is not
// logged.
type LoggingVerifier struct {
	next   kashi.Verifier
	logger *slog.Logger
}

// NewLoggingVerifier creates a new LoggingVerifier.
func NewLoggingVerifier(next kashi.Verifier, logger *slog.Logger) *LoggingVerifier {
	return &LoggingVerifier{next: next, logger: logger}
}

// Verify delegates to the wrapped verifier and logs the operation.
func (v *LoggingVerifier) Verify(ctx context.Context, original, romanized string) (critique string, err error) {
	defer func(begin time.Time) {
		v.logger.Info("verification",
			"chars", len(original),
			"response_bytes", len(critique),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return v.next.Verify(ctx, original, romanized)
}
