package ratelimit

import (
	"sync"
	"time"

	"github.com/fwojciec/kashi"
	"golang.org/x/time/rate"
)

// Defaults for verification calls.
const (
	DefaultInterval    = 2 * time.Second
	DefaultHourlyLimit = 50
)

var _ kashi.CallLimiter = (*Quota)(nil)

// Quota limits calls to a metered service with a minimum interval between
// calls and a cap on calls per rolling hour. Quota never blocks.
type Quota struct {
	mu       sync.Mutex
	limiter  *rate.Limiter
	interval time.Duration
	window   time.Duration
	limit    int
	calls    []time.Time
	now      func() time.Time
}

// QuotaOption configures a Quota.
type QuotaOption func(*Quota)

// WithClock replaces the time source. Used by tests.
func WithClock(now func() time.Time) QuotaOption {
	return func(q *Quota) {
		q.now = now
	}
}

// WithWindow sets the length of the rolling window. Defaults to one hour.
func WithWindow(d time.Duration) QuotaOption {
	return func(q *Quota) {
		q.window = d
	}
}

// NewQuota creates a Quota allowing one call per interval and at most
// limit calls per window.
func NewQuota(interval time.Duration, limit int, opts ...QuotaOption) *Quota {
	q := &Quota{
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
		interval: interval,
		window:   time.Hour,
		limit:    limit,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Allow reserves one call. Returns ERATELIMIT when the window is exhausted
// or the previous call was too recent. Rejected calls use no quota.
func (q *Quota) Allow() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	q.prune(now)

	if len(q.calls) >= q.limit {
		return kashi.Errorf(kashi.ERATELIMIT, "limit of %d calls per %s reached", q.limit, q.window)
	}
	if !q.limiter.AllowN(now, 1) {
		return kashi.Errorf(kashi.ERATELIMIT, "calls are limited to one per %s", q.interval)
	}

	q.calls = append(q.calls, now)
	return nil
}

// Remaining returns how many calls are left in the current window.
func (q *Quota) Remaining() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.prune(q.now())
	return q.limit - len(q.calls)
}

// prune drops calls that fell out of the window.
func (q *Quota) prune(now time.Time) {
	cutoff := now.Add(-q.window)
	i := 0
	for i < len(q.calls) && !q.calls[i].After(cutoff) {
		i++
	}
	q.calls = q.calls[i:]
}
