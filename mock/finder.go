package mock

import (
	"context"

	"github.com/fwojciec/kashi"
)

var _ kashi.LyricsFinder = (*LyricsFinder)(nil)

// LyricsFinder is a mock implementation of kashi.LyricsFinder.
type LyricsFinder struct {
	FindFn func(ctx context.Context, title string, opts kashi.FindOptions, progress kashi.FindProgressFunc) (*kashi.Result, error)
}

func (f *LyricsFinder) Find(ctx context.Context, title string, opts kashi.FindOptions, progress kashi.FindProgressFunc) (*kashi.Result, error) {
	return f.FindFn(ctx, title, opts, progress)
}

var _ kashi.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of kashi.ResultWriter.
type ResultWriter struct {
	WriteResultFn func(ctx context.Context, r *kashi.Result) (string, error)
}

func (w *ResultWriter) WriteResult(ctx context.Context, r *kashi.Result) (string, error) {
	return w.WriteResultFn(ctx, r)
}
