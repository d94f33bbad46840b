package imdb

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/reeldata/reeldata"
)

// releaseDates applies the locale-conditional second fetch. Only a
// single-country record warrants the extra request: dual-country and
// unknown pages skip it, and both dates stay absent. A release-info fetch
// that still fails after the retry schedule degrades both dates to absent;
// the record itself is kept.
func (s *Site) releaseDates(ctx context.Context, link string, country *reeldata.Country) (*time.Time, *string) {
	if country == nil {
		return nil, nil
	}
	if *country != reeldata.CountryJapan && *country != reeldata.CountryUSA {
		return nil, nil
	}

	infoURL := link + "releaseinfo"
	if s.Limiter != nil {
		if u, err := url.Parse(infoURL); err == nil {
			if err := s.Limiter.Wait(ctx, u.Host); err != nil {
				return nil, nil
			}
		}
	}
	raw, err := s.fetch(ctx, infoURL)
	if err != nil {
		return nil, nil
	}
	root, err := s.Parser.Parse(raw)
	if err != nil {
		return nil, nil
	}

	if *country == reeldata.CountryJapan {
		return extractJapanReleaseDate(root), nil
	}
	return nil, extractUSAReleaseDate(root)
}

// extractJapanReleaseDate parses the text following the Japan calendar
// link into a date value.
func extractJapanReleaseDate(root reeldata.Node) *time.Time {
	a, ok := root.FindAttr("href", "/calendar/?region=jp")
	if !ok {
		return nil
	}
	next, ok := a.NextElement()
	if !ok {
		return nil
	}
	date, err := parseDate(next.Text())
	if err != nil {
		return nil
	}
	return &date
}

// extractUSAReleaseDate returns the release-dates anchor text with the
// trailing region suffix stripped. Unlike the Japan path the value is kept
// as a string, not parsed to a date.
func extractUSAReleaseDate(root reeldata.Node) *string {
	a, ok := root.FindAttr("title", "See more release dates")
	if !ok {
		return nil
	}
	text := strings.ReplaceAll(strings.TrimSpace(a.Text()), " (USA)", "")
	return &text
}
