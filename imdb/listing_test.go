package imdb_test

import (
	"testing"

	"github.com/reeldata/reeldata"
	"github.com/reeldata/reeldata/goquery"
	"github.com/reeldata/reeldata/imdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingHTML = `<html><body>
<div class="lister-list">
	<div class="lister-item">
		<span class="lister-item-header">
			<span class="lister-item-index">1.</span>
			<a href="/title/tt0245429/">Spirited Away</a>
		</span>
	</div>
	<div class="lister-item">
		<span class="lister-item-header">
			<span class="lister-item-index">2.</span>
			<a href="/title/tt0347149/">Howl's Moving Castle</a>
		</span>
	</div>
	<div class="lister-item">
		<span class="lister-item-header">
			<span class="lister-item-index">3.</span>
			<a href="/title/tt2380307/">Coco</a>
		</span>
	</div>
</div>
</body></html>`

func TestSite_ExtractLinks(t *testing.T) {
	t.Parallel()

	site := &imdb.Site{Parser: goquery.NewParser(), BaseURL: "https://example.com"}

	t.Run("returns resolved links in on-page order", func(t *testing.T) {
		t.Parallel()

		links, err := site.ExtractLinks(listingHTML)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/title/tt0245429/",
			"https://example.com/title/tt0347149/",
			"https://example.com/title/tt2380307/",
		}, links)
	})

	t.Run("missing container is ESTRUCTURE", func(t *testing.T) {
		t.Parallel()

		_, err := site.ExtractLinks(`<html><body><div class="other-list"></div></body></html>`)

		require.Error(t, err)
		assert.Equal(t, reeldata.ESTRUCTURE, reeldata.ErrorCode(err))
	})

	t.Run("container without headers is ESTRUCTURE", func(t *testing.T) {
		t.Parallel()

		_, err := site.ExtractLinks(`<html><body><div class="lister-list"><p>empty</p></div></body></html>`)

		require.Error(t, err)
		assert.Equal(t, reeldata.ESTRUCTURE, reeldata.ErrorCode(err))
	})

	t.Run("header without anchor is ESTRUCTURE", func(t *testing.T) {
		t.Parallel()

		_, err := site.ExtractLinks(`<html><body>
<div class="lister-list">
	<span class="lister-item-header"><span>1.</span></span>
</div>
</body></html>`)

		require.Error(t, err)
		assert.Equal(t, reeldata.ESTRUCTURE, reeldata.ErrorCode(err))
	})
}
