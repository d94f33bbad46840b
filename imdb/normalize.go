package imdb

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/reeldata/reeldata"
)

// Shared cleanup transforms used across the field extractors.

// removeCommas strips thousands separators.
func removeCommas(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

// stripLabel removes a field label from a block's text and trims the rest.
func stripLabel(s, label string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, label, ""))
}

// stripDecoration cuts trailing decoration from a money figure, whether
// the site renders it on its own line or inline, e.g. "(estimated)" after
// a budget figure.
func stripDecoration(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if i := strings.Index(s, " ("); i >= 0 {
		s = s[:i]
	}
	return s
}

// nbsp is the non-breaking space the site uses as a decoration delimiter.
const nbsp = "\u00a0"

// stripNBSPSuffix removes the non-breaking-space-delimited suffix the site
// appends to headings (the year decoration on titles).
func stripNBSPSuffix(s string) string {
	if i := strings.Index(s, nbsp); i >= 0 {
		return s[:i]
	}
	return s
}

// parseDate parses a natural-language date ("20 July 2001", "Jul 20,
// 2001") permissively.
func parseDate(s string) (time.Time, error) {
	return dateparse.ParseAny(strings.TrimSpace(s))
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// firstIntToken returns the first purely-numeric whitespace token of text.
func firstIntToken(text string) *int {
	for _, f := range strings.Fields(text) {
		if !isDigits(f) {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil
		}
		return &n
	}
	return nil
}

// grandparent climbs two levels from a label text node to its value block.
func grandparent(n reeldata.Node) (reeldata.Node, bool) {
	p, ok := n.Parent()
	if !ok {
		return nil, false
	}
	return p.Parent()
}
