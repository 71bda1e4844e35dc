package mock

import (
	"context"

	"github.com/fwojciec/kashi"
)

var _ kashi.SourceFinder = (*SourceFinder)(nil)

// SourceFinder is a mock implementation of kashi.SourceFinder.
type SourceFinder struct {
	FindSourcesFn func(ctx context.Context, title string) ([]kashi.Source, error)
}

func (f *SourceFinder) FindSources(ctx context.Context, title string) ([]kashi.Source, error) {
	return f.FindSourcesFn(ctx, title)
}
