// Package ratelimit throttles outbound traffic: page fetches per lyrics
// site and metered language model calls.
package ratelimit

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/kashi"
	"golang.org/x/time/rate"
)

var _ kashi.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter provides per-domain rate limiting using token buckets, so
// candidate pages on different lyrics sites can be fetched concurrently
// while each site sees at most rps requests per second.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a new DomainLimiter with the specified requests per second limit.
// Each domain gets its own limiter with a burst of 1.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// "www.example.com" and "Example.com" share one limiter.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	domain = strings.TrimPrefix(strings.ToLower(domain), "www.")

	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

// Domain returns the host of rawURL, or rawURL itself if it has none.
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Hostname()
}
