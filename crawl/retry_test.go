package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/reeldata/reeldata"
	"github.com/reeldata/reeldata/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	t.Run("returns on first success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "body", nil
		}

		html, err := crawl.FetchWithRetryDelays(context.Background(), "u", fetch, []time.Duration{0, 0})

		require.NoError(t, err)
		assert.Equal(t, "body", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until the schedule is exhausted", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, url string) (string, error) {
			calls++
			if calls < 3 {
				return "", reeldata.Errorf(reeldata.EUNAVAILABLE, "HTTP 503 for %s", url)
			}
			return "body", nil
		}

		html, err := crawl.FetchWithRetryDelays(context.Background(), "u", fetch, []time.Duration{0, 0})

		require.NoError(t, err)
		assert.Equal(t, "body", html)
		assert.Equal(t, 3, calls)
	})

	t.Run("last error wins after exhaustion", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "", reeldata.Errorf(reeldata.EUNAVAILABLE, "attempt %d failed", calls)
		}

		_, err := crawl.FetchWithRetryDelays(context.Background(), "u", fetch, []time.Duration{0})

		require.Error(t, err)
		assert.Equal(t, 2, calls)
		assert.Equal(t, "attempt 2 failed", reeldata.ErrorMessage(err))
	})

	t.Run("cancellation interrupts the backoff", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(_ context.Context, _ string) (string, error) {
			cancel()
			return "", reeldata.Errorf(reeldata.EUNAVAILABLE, "down")
		}

		_, err := crawl.FetchWithRetryDelays(ctx, "u", fetch, []time.Duration{time.Minute})

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDefaultRetryDelays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, crawl.DefaultRetryDelays())
}
