package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/kashi"
	"github.com/fwojciec/kashi/mock"
	kashislog "github.com/fwojciec/kashi/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const zankyosankaURL = "https://www.lyrical-nonsense.com/global/lyrics/aimer/zankyosanka/"

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs site host and page size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<p>1. 残響散歌</p>", nil
			},
		}

		fetcher := kashislog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), zankyosankaURL)

		require.NoError(t, err)
		assert.Equal(t, "<p>1. 残響散歌</p>", html)
		output := buf.String()
		assert.Contains(t, output, `msg="page fetch"`)
		assert.Contains(t, output, "site=lyrical-nonsense.com")
		assert.Contains(t, output, "url="+zankyosankaURL)
		assert.Contains(t, output, "japanese=true")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error and empty site for a relative path", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", kashi.Errorf(kashi.ENOTFOUND, "page gone")
			},
		}

		fetcher := kashislog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "lyrics/zankyosanka")

		require.Error(t, err)
		assert.Equal(t, kashi.ENOTFOUND, kashi.ErrorCode(err))
		output := buf.String()
		assert.Contains(t, output, `site=""`)
		assert.Contains(t, output, "bytes=0")
		assert.Contains(t, output, "japanese=false")
		assert.Contains(t, output, "err=")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	closed := make(chan struct{}, 1)
	inner := &mock.Fetcher{
		CloseFn: func() error {
			closed <- struct{}{}
			return nil
		},
	}

	fetcher := kashislog.NewLoggingFetcher(inner, slog.New(slog.DiscardHandler))

	require.NoError(t, fetcher.Close())
	assert.Len(t, closed, 1)
}
