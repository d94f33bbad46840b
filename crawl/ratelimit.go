package crawl

import (
	"context"
	"sync"

	"github.com/reeldata/reeldata"
	"golang.org/x/time/rate"
)

var _ reeldata.Limiter = (*HostLimiter)(nil)

// HostLimiter enforces a per-host request rate using token buckets, so the
// crawl stays polite to the source no matter how wide the worker pool is.
// Each host gets its own limiter with a burst of 1 — no bursting.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewHostLimiter creates a HostLimiter with the given requests-per-second
// limit per host.
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the host.
// Returns an error if the context is canceled before the wait completes.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.limiters[host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
