package reeldata

import "context"

// Search identifies one catalog search by the URLs of its first two listing
// pages. The second URL already encodes the offset of item 101; the
// remaining page URLs are derived from it.
type Search struct {
	First  string
	Second string
}

// PageDiscoverer expands a Search into the full ordered sequence of listing
// page URLs, covering every item exactly once under the site's stable page
// size and monotonic offset scheme.
type PageDiscoverer interface {
	// DiscoverPages fetches the first listing page and derives the
	// complete URL sequence from its total-count header.
	// Returns EINVALID if the count header cannot be parsed; the crawl
	// cannot determine its own scope without it.
	DiscoverPages(ctx context.Context, search Search) ([]string, error)
}

// LinkExtractor pulls detail-page links out of one listing page.
type LinkExtractor interface {
	// ExtractLinks returns the page's detail links in on-page order,
	// resolved to absolute URLs.
	// Returns ESTRUCTURE if the item list container or its header
	// elements are missing; that signals layout drift, not empty results.
	ExtractLinks(html string) ([]string, error)
}

// RecordExtractor maps one detail page to a MovieRecord.
type RecordExtractor interface {
	// ExtractRecord extracts all fields from the detail page markup.
	// Field-level absence is nil on the record, never an error.
	// Implementations may fetch secondary sub-documents when a field
	// requires them.
	ExtractRecord(ctx context.Context, link, html string) (*MovieRecord, error)
}

// Limiter provides per-host request rate limiting.
type Limiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
