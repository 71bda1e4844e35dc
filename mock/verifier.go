package mock

import (
	"context"

	"github.com/fwojciec/kashi"
)

var _ kashi.Verifier = (*Verifier)(nil)

// Verifier is a mock implementation of kashi.Verifier.
type Verifier struct {
	VerifyFn func(ctx context.Context, original, romanized string) (string, error)
}

func (v *Verifier) Verify(ctx context.Context, original, romanized string) (string, error) {
	return v.VerifyFn(ctx, original, romanized)
}

var _ kashi.CallLimiter = (*CallLimiter)(nil)

// CallLimiter is a mock implementation of kashi.CallLimiter.
type CallLimiter struct {
	AllowFn     func() error
	RemainingFn func() int
}

func (l *CallLimiter) Allow() error {
	return l.AllowFn()
}

func (l *CallLimiter) Remaining() int {
	return l.RemainingFn()
}
