package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/reeldata/reeldata"
	reeldatahttp "github.com/reeldata/reeldata/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the response body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>ok</html>"))
		}))
		defer srv.Close()

		f := reeldatahttp.NewFetcher()
		defer f.Close()

		html, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
	})

	t.Run("sends the configured user agent", func(t *testing.T) {
		t.Parallel()

		var ua string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ua = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		f := reeldatahttp.NewFetcher(reeldatahttp.WithUserAgent("reeldata/1.0"))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "reeldata/1.0", ua)
	})

	t.Run("non-200 status is EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		f := reeldatahttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, reeldata.EUNAVAILABLE, reeldata.ErrorCode(err))
	})

	t.Run("transport failure is EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		f := reeldatahttp.NewFetcher(reeldatahttp.WithTimeout(time.Second))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, reeldata.EUNAVAILABLE, reeldata.ErrorCode(err))
	})

	t.Run("malformed URL is EINVALID", func(t *testing.T) {
		t.Parallel()

		f := reeldatahttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), "http://example.com/%zz\x7f")

		require.Error(t, err)
		assert.Equal(t, reeldata.EINVALID, reeldata.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		f := reeldatahttp.NewFetcher()
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := f.Fetch(ctx, srv.URL)

		require.Error(t, err)
		assert.Equal(t, reeldata.EUNAVAILABLE, reeldata.ErrorCode(err))
	})
}
