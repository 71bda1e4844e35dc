package mock

import (
	"context"

	"github.com/fwojciec/kashi"
)

var _ kashi.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of kashi.Fetcher. Close succeeds when
// CloseFn is not set, so page-only tests need not stub it.
type Fetcher struct {
	FetchFn func(ctx context.Context, pageURL string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	return f.FetchFn(ctx, pageURL)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
