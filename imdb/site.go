// Package imdb extracts movie records from imdb.com search listings and
// title pages. The extractors are schema- and source-specific by design:
// they encode the site's layout, labels, and fallback quirks directly
// rather than offering a generic extraction framework.
package imdb

import (
	"context"
	"net/url"
	"time"

	"github.com/reeldata/reeldata"
	"github.com/reeldata/reeldata/crawl"
)

// DefaultBaseURL is the host detail links resolve against.
const DefaultBaseURL = "https://www.imdb.com"

// DefaultRateAsOf is the reference date for currency conversion when none
// is configured. Pinning one date keeps budgets extracted on different days
// in agreement.
var DefaultRateAsOf = time.Date(2020, time.July, 10, 0, 0, 0, 0, time.UTC)

// Predefined catalog searches: feature-length animation released through
// 2020-07-01, newest first, 100 titles per listing page. The second URL of
// each pair carries the start=101 offset the remaining pages derive from.
var (
	JapanAnimation = reeldata.Search{
		First: DefaultBaseURL + "/search/title/?title_type=feature&release_date=,2020-07-01" +
			"&genres=animation&countries=jp&sort=release_date,desc&count=100&view=simple",
		Second: DefaultBaseURL + "/search/title/?title_type=feature&release_date=,2020-07-01" +
			"&genres=animation&countries=jp&view=simple&sort=release_date,desc&count=100&start=101&ref_=adv_nxt",
	}

	AmericanAnimation = reeldata.Search{
		First: DefaultBaseURL + "/search/title/?title_type=feature&release_date=,2020-07-01" +
			"&genres=animation&countries=us&sort=release_date,desc&count=100&view=simple",
		Second: DefaultBaseURL + "/search/title/?title_type=feature&release_date=,2020-07-01" +
			"&genres=animation&countries=us&view=simple&sort=release_date,desc&count=100&start=101&ref_=adv_nxt",
	}
)

// Ensure Site implements the catalog interfaces at compile time.
var (
	_ reeldata.PageDiscoverer  = (*Site)(nil)
	_ reeldata.LinkExtractor   = (*Site)(nil)
	_ reeldata.RecordExtractor = (*Site)(nil)
)

// Site extracts records from imdb.com pages.
type Site struct {
	Fetcher reeldata.Fetcher
	Parser  reeldata.Parser
	Rates   reeldata.RateService

	// Limiter, when set, paces the secondary release-info fetches that
	// happen outside the orchestrator's own pipeline.
	Limiter reeldata.Limiter

	// BaseURL overrides the production host, for tests.
	BaseURL string

	// RateAsOf pins currency conversion to a single reference date.
	// Defaults to DefaultRateAsOf.
	RateAsOf time.Time

	// RetryDelays is the backoff schedule for the fetches the site issues
	// itself (the first listing page and the release-info pages).
	// Defaults to crawl.DefaultRetryDelays.
	RetryDelays []time.Duration
}

// fetch retrieves a page under the same bounded-retry policy the
// orchestrator applies to listing and detail fetches.
func (s *Site) fetch(ctx context.Context, url string) (string, error) {
	delays := s.RetryDelays
	if delays == nil {
		delays = crawl.DefaultRetryDelays()
	}
	return crawl.FetchWithRetryDelays(ctx, url, s.Fetcher.Fetch, delays)
}

func (s *Site) baseURL() string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	return DefaultBaseURL
}

func (s *Site) rateAsOf() time.Time {
	if !s.RateAsOf.IsZero() {
		return s.RateAsOf
	}
	return DefaultRateAsOf
}

// resolve turns a listing href into an absolute URL against the site base.
func (s *Site) resolve(href string) string {
	base, err := url.Parse(s.baseURL())
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
