package imdb_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/reeldata/reeldata"
	"github.com/reeldata/reeldata/goquery"
	"github.com/reeldata/reeldata/imdb"
	"github.com/reeldata/reeldata/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listingHeaderHTML(count string) string {
	return fmt.Sprintf(`<html><body>
<div class="article">
	<div class="desc">
		<span>1-100 of %s titles.</span>
	</div>
</div>
</body></html>`, count)
}

func testSearch() reeldata.Search {
	return reeldata.Search{
		First:  "https://example.com/search/title/?count=100&view=simple",
		Second: "https://example.com/search/title/?count=100&view=simple&start=101&ref_=adv_nxt",
	}
}

func pagerSite(html string) *imdb.Site {
	return &imdb.Site{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return html, nil
			},
		},
		Parser:      goquery.NewParser(),
		RetryDelays: []time.Duration{},
	}
}

func TestSite_DiscoverPages(t *testing.T) {
	t.Parallel()

	t.Run("250 titles yield exactly 3 pages", func(t *testing.T) {
		t.Parallel()

		site := pagerSite(listingHeaderHTML("250"))
		urls, err := site.DiscoverPages(context.Background(), testSearch())

		require.NoError(t, err)
		require.Len(t, urls, 3)
		assert.Equal(t, testSearch().First, urls[0])
		assert.Equal(t, testSearch().Second, urls[1])
		assert.Equal(t, "https://example.com/search/title/?count=100&view=simple&start=201&ref_=adv_nxt", urls[2])
	})

	t.Run("100 titles yield exactly 2 pages", func(t *testing.T) {
		t.Parallel()

		site := pagerSite(listingHeaderHTML("100"))
		urls, err := site.DiscoverPages(context.Background(), testSearch())

		require.NoError(t, err)
		assert.Equal(t, []string{testSearch().First, testSearch().Second}, urls)
	})

	t.Run("strips thousands separators from the count", func(t *testing.T) {
		t.Parallel()

		site := pagerSite(listingHeaderHTML("1,417"))
		urls, err := site.DiscoverPages(context.Background(), testSearch())

		require.NoError(t, err)
		// 1417 titles over 100-item pages: the two seed URLs plus 13 more.
		require.Len(t, urls, 15)
		assert.Contains(t, urls[2], "start=201")
		assert.Contains(t, urls[14], "start=1401")
	})

	t.Run("only the offset token is substituted", func(t *testing.T) {
		t.Parallel()

		search := reeldata.Search{
			First:  "https://example.com/search/title/?release_date=,2101-01-01&count=100",
			Second: "https://example.com/search/title/?release_date=,2101-01-01&count=100&start=101",
		}
		site := pagerSite(listingHeaderHTML("450"))
		urls, err := site.DiscoverPages(context.Background(), search)

		require.NoError(t, err)
		require.Len(t, urls, 5)
		assert.Equal(t, "https://example.com/search/title/?release_date=,2101-01-01&count=100&start=201", urls[2])
		assert.Equal(t, "https://example.com/search/title/?release_date=,2101-01-01&count=100&start=301", urls[3])
		assert.Equal(t, "https://example.com/search/title/?release_date=,2101-01-01&count=100&start=401", urls[4])
	})

	t.Run("exact page-size multiples derive no trailing page", func(t *testing.T) {
		t.Parallel()

		site := pagerSite(listingHeaderHTML("300"))
		urls, err := site.DiscoverPages(context.Background(), testSearch())

		require.NoError(t, err)
		require.Len(t, urls, 3)
		assert.Contains(t, urls[2], "start=201")

		site = pagerSite(listingHeaderHTML("200"))
		urls, err = site.DiscoverPages(context.Background(), testSearch())

		require.NoError(t, err)
		assert.Equal(t, []string{testSearch().First, testSearch().Second}, urls)
	})

	t.Run("missing count phrase is EINVALID", func(t *testing.T) {
		t.Parallel()

		site := pagerSite(`<html><body><div class="desc"><span>no count here</span></div></body></html>`)
		_, err := site.DiscoverPages(context.Background(), testSearch())

		require.Error(t, err)
		assert.Equal(t, reeldata.EINVALID, reeldata.ErrorCode(err))
	})

	t.Run("non-numeric count is EINVALID", func(t *testing.T) {
		t.Parallel()

		site := pagerSite(listingHeaderHTML("many"))
		_, err := site.DiscoverPages(context.Background(), testSearch())

		require.Error(t, err)
		assert.Equal(t, reeldata.EINVALID, reeldata.ErrorCode(err))
	})

	t.Run("missing description block is EINVALID", func(t *testing.T) {
		t.Parallel()

		site := pagerSite(`<html><body><p>layout changed</p></body></html>`)
		_, err := site.DiscoverPages(context.Background(), testSearch())

		require.Error(t, err)
		assert.Equal(t, reeldata.EINVALID, reeldata.ErrorCode(err))
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		t.Parallel()

		site := &imdb.Site{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return "", reeldata.Errorf(reeldata.EUNAVAILABLE, "HTTP 503 for %s", url)
				},
			},
			Parser:      goquery.NewParser(),
			RetryDelays: []time.Duration{},
		}
		_, err := site.DiscoverPages(context.Background(), testSearch())

		require.Error(t, err)
		assert.Equal(t, reeldata.EUNAVAILABLE, reeldata.ErrorCode(err))
	})
}
