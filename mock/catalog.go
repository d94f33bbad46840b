package mock

import (
	"context"

	"github.com/reeldata/reeldata"
)

var (
	_ reeldata.PageDiscoverer  = (*PageDiscoverer)(nil)
	_ reeldata.LinkExtractor   = (*LinkExtractor)(nil)
	_ reeldata.RecordExtractor = (*RecordExtractor)(nil)
	_ reeldata.Limiter         = (*Limiter)(nil)
)

// PageDiscoverer is a mock implementation of reeldata.PageDiscoverer.
type PageDiscoverer struct {
	DiscoverPagesFn func(ctx context.Context, search reeldata.Search) ([]string, error)
}

func (d *PageDiscoverer) DiscoverPages(ctx context.Context, search reeldata.Search) ([]string, error) {
	return d.DiscoverPagesFn(ctx, search)
}

// LinkExtractor is a mock implementation of reeldata.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string) ([]string, error) {
	return e.ExtractLinksFn(html)
}

// RecordExtractor is a mock implementation of reeldata.RecordExtractor.
type RecordExtractor struct {
	ExtractRecordFn func(ctx context.Context, link, html string) (*reeldata.MovieRecord, error)
}

func (e *RecordExtractor) ExtractRecord(ctx context.Context, link, html string) (*reeldata.MovieRecord, error) {
	return e.ExtractRecordFn(ctx, link, html)
}

// Limiter is a mock implementation of reeldata.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *Limiter) Wait(ctx context.Context, host string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, host)
}
