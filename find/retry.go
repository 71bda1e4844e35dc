package find

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/kashi"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry attempts to fetch a URL, retrying after each delay in
// delays. Missing pages and invalid URLs are not retried since a repeat
// request cannot succeed. Each retry is logged when logger is not nil.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if !retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if logger != nil {
			logger.Info("retry", "url", url, "attempt", attempt+2, "err", err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

func retryable(err error) bool {
	switch kashi.ErrorCode(err) {
	case kashi.ENOTFOUND, kashi.EINVALID:
		return false
	}
	return true
}
