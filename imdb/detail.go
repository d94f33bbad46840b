package imdb

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/reeldata/reeldata"
)

// ExtractRecord extracts all fields from one title page and assembles the
// record. Each field is looked up independently; a missing element yields
// an absent field, never an error. The record is validated before return
// and never mutated afterwards.
func (s *Site) ExtractRecord(ctx context.Context, link, raw string) (*reeldata.MovieRecord, error) {
	root, err := s.Parser.Parse(raw)
	if err != nil {
		return nil, err
	}

	rec := &reeldata.MovieRecord{
		Link:       link,
		SourceHash: fmt.Sprintf("%x", xxhash.Sum64String(raw)),

		Title:           extractTitle(root),
		Country:         extractCountry(root),
		RuntimeMinutes:  extractRuntime(root),
		BudgetUSD:       s.extractBudget(ctx, root),
		GlobalGrossUSD:  extractGlobalGross(root),
		MPAARating:      extractRating(root),
		Genres:          extractGenres(root),
		UserRating:      extractUserRating(root),
		UserRatingCount: extractUserRatingCount(root),
		OscarWins:       extractOscarWins(root),
		NonOscarWins:    extractNonOscarWins(root),
		Metascore:       extractMetascore(root),
	}
	rec.JapanReleaseDate, rec.USAReleaseDate = s.releaseDates(ctx, link, rec.Country)

	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// extractTitle returns the first top-level heading with the site's
// NBSP-delimited decoration (the year suffix) stripped.
func extractTitle(root reeldata.Node) *string {
	h1, ok := root.Find("h1")
	if !ok {
		return nil
	}
	title := stripNBSPSuffix(strings.TrimSpace(h1.Text()))
	return &title
}

// extractCountry scans the heading markers for the "Country:" label and
// classifies the enclosing block's text. The first marker wins; later
// markers are not consulted.
func extractCountry(root reeldata.Node) *reeldata.Country {
	for _, h := range root.FindAll("h4") {
		if !strings.Contains(h.Text(), "Country:") {
			continue
		}
		block, ok := h.Parent()
		if !ok {
			return nil
		}
		text := block.Text()
		var country reeldata.Country
		switch {
		case strings.Contains(text, "Japan") && strings.Contains(text, "USA"):
			country = reeldata.CountryJapanUSA
		case strings.Contains(text, "Japan"):
			country = reeldata.CountryJapan
		case strings.Contains(text, "USA"):
			country = reeldata.CountryUSA
		default:
			return nil
		}
		return &country
	}
	return nil
}

// extractRuntime parses integer minutes from the first token following the
// "Runtime:" marker.
func extractRuntime(root reeldata.Node) *int {
	for _, h := range root.FindAll("h4") {
		if !strings.Contains(h.Text(), "Runtime:") {
			continue
		}
		next, ok := h.NextElement()
		if !ok {
			return nil
		}
		fields := strings.Fields(next.Text())
		if len(fields) == 0 {
			return nil
		}
		minutes, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil
		}
		return &minutes
	}
	return nil
}

// extractBudget reads the "Budget:" block and normalizes it to a USD
// integer. Dollar amounts parse directly; anything else is read as a
// three-letter ISO code followed by the amount and converted at the pinned
// reference date. A failed conversion degrades the field to absent rather
// than failing the record.
func (s *Site) extractBudget(ctx context.Context, root reeldata.Node) *int {
	label, ok := root.FindText("Budget:")
	if !ok {
		return nil
	}
	block, ok := grandparent(label)
	if !ok {
		return nil
	}

	text := stripLabel(strings.TrimSpace(block.Text()), "Budget:")
	text = removeCommas(text)
	text = strings.TrimSpace(stripDecoration(text))

	if strings.Contains(text, "$") {
		amount, err := strconv.Atoi(strings.TrimSpace(strings.ReplaceAll(text, "$", "")))
		if err != nil {
			return nil
		}
		return &amount
	}

	if len(text) < 4 || s.Rates == nil {
		return nil
	}
	amount, err := strconv.Atoi(strings.TrimSpace(text[3:]))
	if err != nil {
		return nil
	}
	converted, err := s.Rates.Convert(ctx, text[:3], "USD", float64(amount), s.rateAsOf())
	if err != nil {
		return nil
	}
	usd := int(math.Round(converted))
	return &usd
}

// extractGlobalGross parses the "Cumulative Worldwide Gross:" block as a
// USD integer.
func extractGlobalGross(root reeldata.Node) *int {
	for _, h := range root.FindAll("h4") {
		if !strings.Contains(h.Text(), "Cumulative Worldwide Gross:") {
			continue
		}
		block, ok := h.Parent()
		if !ok {
			return nil
		}
		text := stripLabel(strings.TrimSpace(block.Text()), "Cumulative Worldwide Gross:")
		text = removeCommas(text)
		text = strings.TrimSpace(stripDecoration(text))
		gross, err := strconv.Atoi(strings.TrimSpace(strings.ReplaceAll(text, "$", "")))
		if err != nil {
			return nil
		}
		return &gross
	}
	return nil
}

// extractRating accepts the first token of the subtext block only when it
// belongs to the closed rating set; "Not Rated" and similar yield nil.
func extractRating(root reeldata.Node) *string {
	sub, ok := root.FindClass("div", "subtext")
	if !ok {
		return nil
	}
	fields := strings.Fields(sub.Text())
	if len(fields) == 0 || !reeldata.ValidRating(fields[0]) {
		return nil
	}
	return &fields[0]
}

// extractGenres returns the genre list in source order. The site renders
// the list as NBSP-pipe-separated anchors under a "Genres:" label.
func extractGenres(root reeldata.Node) []string {
	label, ok := root.FindText("Genres:")
	if !ok {
		return nil
	}
	block, ok := grandparent(label)
	if !ok {
		return nil
	}

	text := stripLabel(strings.TrimSpace(block.Text()), "Genres:")
	text = strings.ReplaceAll(text, "\n ", "")
	text = strings.ReplaceAll(text, nbsp+"|", ", ")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	genres := strings.Split(text, ", ")
	for i := range genres {
		genres[i] = strings.TrimSpace(genres[i])
	}
	return genres
}

// extractUserRating parses the rating-value element as a float.
func extractUserRating(root reeldata.Node) *float64 {
	el, ok := root.FindAttr("itemprop", "ratingValue")
	if !ok {
		return nil
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(el.Text()), 64)
	if err != nil {
		return nil
	}
	return &rating
}

// extractUserRatingCount parses the rating-count element, commas stripped.
func extractUserRatingCount(root reeldata.Node) *int {
	el, ok := root.FindAttr("itemprop", "ratingCount")
	if !ok {
		return nil
	}
	count, err := strconv.Atoi(removeCommas(strings.TrimSpace(el.Text())))
	if err != nil {
		return nil
	}
	return &count
}

// extractOscarWins returns the first numeric token of the awards summary,
// but only when the summary reports a "Won".
func extractOscarWins(root reeldata.Node) *int {
	blurb, ok := root.FindClass("span", "awards-blurb")
	if !ok {
		return nil
	}
	text := strings.TrimSpace(blurb.Text())
	if !strings.Contains(text, "Won") {
		return nil
	}
	return firstIntToken(text)
}

// extractNonOscarWins reads the "other wins" count. When the summary
// mentions an Oscar the count lives in the sibling note ("Another 57
// wins."); the summary's own text is the fallback. The sibling-note path
// is checked first on purpose: both triggers can fire on the same page.
func extractNonOscarWins(root reeldata.Node) *int {
	blurb, ok := root.FindClass("span", "awards-blurb")
	if !ok {
		return nil
	}
	text := strings.TrimSpace(blurb.Text())

	if strings.Contains(text, "Oscar") {
		if sib, ok := blurb.NextSibling(); ok {
			sibText := strings.TrimSpace(sib.Text())
			if strings.Contains(sibText, "win") {
				return firstIntToken(sibText)
			}
		}
	}
	if strings.Contains(text, "win") {
		return firstIntToken(text)
	}
	return nil
}

// extractMetascore parses the metascore element as an integer.
func extractMetascore(root reeldata.Node) *int {
	el, ok := root.FindClass("div", "metacriticScore")
	if !ok {
		return nil
	}
	score, err := strconv.Atoi(strings.TrimSpace(el.Text()))
	if err != nil {
		return nil
	}
	return &score
}
