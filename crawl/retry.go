package crawl

import (
	"context"
	"time"
)

// FetchFunc is the signature of a fetch operation.
type FetchFunc func(ctx context.Context, url string) (string, error)

// DefaultRetryDelays returns the backoff schedule for fetch retries:
// 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays attempts a fetch with backoff between attempts:
// one initial attempt plus one retry per delay. The last error wins once
// the schedule is exhausted. Transient transport failures are expected on
// a long crawl; only a permanently failing URL surfaces as an error.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
