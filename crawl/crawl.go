// Package crawl orchestrates catalog crawling: pagination discovery,
// listing traversal, and concurrent per-title record extraction with
// deterministic, discovery-ordered output.
package crawl

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/reeldata/reeldata"
	"golang.org/x/sync/errgroup"
)

// Crawler runs one catalog search end to end.
type Crawler struct {
	Pages       reeldata.PageDiscoverer
	Links       reeldata.LinkExtractor
	Records     reeldata.RecordExtractor
	Fetcher     reeldata.Fetcher
	RateLimiter reeldata.Limiter

	// Concurrency caps in-flight detail-page requests. This is a
	// politeness contract with the source, not a tuning hint.
	Concurrency int

	// RetryDelays is the backoff schedule for fetch retries.
	// Defaults to DefaultRetryDelays.
	RetryDelays []time.Duration
}

// Failure records one URL the crawl had to skip and why.
type Failure struct {
	URL string
	Err error
}

// Result holds the outcome of a crawl. Records are in detail-link
// discovery order regardless of worker scheduling; Failures lists every
// listing page or detail link that was skipped.
type Result struct {
	RunID    string
	Records  []*reeldata.MovieRecord
	Failures []Failure
}

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// crawlResult carries one worker's outcome back to its index slot.
type crawlResult struct {
	position int
	link     string
	record   *reeldata.MovieRecord
	err      error
}

// Crawl discovers the listing pages for a search, collects every detail
// link in discovery order, and extracts one record per link over a bounded
// worker pool. Output order equals discovery order: workers write into
// index-addressed slots and the final collection is reassembled strictly
// by index, never by completion order.
//
// A pagination-discovery failure aborts the crawl; everything later
// degrades to a recorded Failure for the URL involved. On cancellation the
// returned Result holds the records completed so far, still in order.
func (c *Crawler) Crawl(ctx context.Context, search reeldata.Search, progress ProgressFunc) (*Result, error) {
	result := &Result{RunID: uuid.NewString()}

	// Without the total count the crawl cannot determine its own scope.
	pages, err := c.Pages.DiscoverPages(ctx, search)
	if err != nil {
		return nil, err
	}

	links := c.collectLinks(ctx, pages, result)
	total := len(links)

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan crawlResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, link := range links {
			i, link := i, link
			g.Go(func() error {
				resultCh <- c.processLink(gctx, i, link)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	slots := make([]crawlResult, total)
	completed := 0
	for r := range resultCh {
		completed++
		slots[r.position] = r

		if progress == nil {
			continue
		}
		if r.err != nil {
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Completed: completed,
				Total:     total,
				URL:       r.link,
				Error:     r.err,
			})
		} else {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: completed,
				Total:     total,
				URL:       r.link,
			})
		}
	}

	// Reassemble by original index. Empty slots belong to workers that
	// never ran (canceled before start); record them as failures so the
	// caller can see exactly which links were not covered.
	for i, r := range slots {
		if r.link == "" {
			result.Failures = append(result.Failures, Failure{URL: links[i], Err: ctx.Err()})
			continue
		}
		if r.err != nil {
			result.Failures = append(result.Failures, Failure{URL: r.link, Err: r.err})
			continue
		}
		result.Records = append(result.Records, r.record)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})
	}
	return result, nil
}

// collectLinks walks the listing pages in order and concatenates each
// page's links, deduplicating while preserving first-seen order. A broken
// listing page costs its own items only: the failure is recorded and the
// walk continues.
func (c *Crawler) collectLinks(ctx context.Context, pages []string, result *Result) []string {
	var links []string
	seen := make(map[string]bool)

	for _, page := range pages {
		if ctx.Err() != nil {
			break
		}
		if err := c.wait(ctx, page); err != nil {
			break
		}

		html, err := c.fetch(ctx, page)
		if err != nil {
			result.Failures = append(result.Failures, Failure{URL: page, Err: err})
			continue
		}
		pageLinks, err := c.Links.ExtractLinks(html)
		if err != nil {
			result.Failures = append(result.Failures, Failure{URL: page, Err: err})
			continue
		}

		for _, link := range pageLinks {
			if seen[link] {
				continue
			}
			seen[link] = true
			links = append(links, link)
		}
	}
	return links
}

// processLink fetches one detail page and extracts its record.
func (c *Crawler) processLink(ctx context.Context, position int, link string) crawlResult {
	res := crawlResult{position: position, link: link}

	if err := ctx.Err(); err != nil {
		res.err = err
		return res
	}
	if err := c.wait(ctx, link); err != nil {
		res.err = err
		return res
	}

	html, err := c.fetch(ctx, link)
	if err != nil {
		res.err = err
		return res
	}

	record, err := c.Records.ExtractRecord(ctx, link, html)
	if err != nil {
		res.err = err
		return res
	}

	res.record = record
	return res
}

func (c *Crawler) wait(ctx context.Context, rawURL string) error {
	if c.RateLimiter == nil {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	return c.RateLimiter.Wait(ctx, u.Host)
}

func (c *Crawler) fetch(ctx context.Context, url string) (string, error) {
	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetryDelays(ctx, url, c.Fetcher.Fetch, delays)
}
