package ratelimit

import (
	"context"

	"github.com/fwojciec/kashi"
)

var _ kashi.Verifier = (*Verifier)(nil)

// Verifier gates a kashi.Verifier behind a CallLimiter.
type Verifier struct {
	next    kashi.Verifier
	limiter kashi.CallLimiter
}

// NewVerifier wraps next so every call first reserves quota from limiter.
func NewVerifier(next kashi.Verifier, limiter kashi.CallLimiter) *Verifier {
	return &Verifier{next: next, limiter: limiter}
}

// Verify calls the wrapped verifier if the limiter allows it.
func (v *Verifier) Verify(ctx context.Context, original, romanized string) (string, error) {
	if err := v.limiter.Allow(); err != nil {
		return "", err
	}
	return v.next.Verify(ctx, original, romanized)
}

// Remaining returns how many calls are left in the current window.
func (v *Verifier) Remaining() int {
	return v.limiter.Remaining()
}
