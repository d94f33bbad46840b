package imdb

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/reeldata/reeldata"
)

// pageSize is the number of items each listing page holds.
const pageSize = 100

// offsetToken is the start-offset marker in the second listing URL that the
// remaining page URLs derive from. Only this token is substituted, so URLs
// containing "101" elsewhere are left intact.
const offsetToken = "start=101"

// DiscoverPages expands a search into the full ordered sequence of listing
// page URLs. It fetches the first page, reads the total title count from
// the free-text header under the description block ("1-100 of 1,417
// titles."), and derives one URL per 100 items by rewriting the second
// page's offset.
func (s *Site) DiscoverPages(ctx context.Context, search reeldata.Search) ([]string, error) {
	raw, err := s.fetch(ctx, search.First)
	if err != nil {
		return nil, err
	}
	root, err := s.Parser.Parse(raw)
	if err != nil {
		return nil, err
	}
	total, err := totalTitles(root)
	if err != nil {
		return nil, err
	}

	// ceil(total/pageSize) pages in all; the two seed URLs already cover
	// the first two, so an exact multiple of the page size derives no
	// trailing empty page.
	extra := (total+pageSize-1)/pageSize - 2

	urls := []string{search.First, search.Second}
	for i := 0; i < extra; i++ {
		offset := fmt.Sprintf("start=%d", 201+pageSize*i)
		urls = append(urls, strings.Replace(search.Second, offsetToken, offset, 1))
	}
	return urls, nil
}

// totalTitles parses the total item count from the listing header: the
// whitespace token immediately preceding the literal "titles.", with
// thousands separators stripped.
func totalTitles(root reeldata.Node) (int, error) {
	desc, ok := root.FindClass("div", "desc")
	if !ok {
		return 0, reeldata.Errorf(reeldata.EINVALID, "listing description block not found")
	}
	header, ok := desc.NextElement()
	if !ok {
		return 0, reeldata.Errorf(reeldata.EINVALID, "listing count header not found")
	}

	fields := strings.Fields(header.Text())
	for i, f := range fields {
		if f != "titles." {
			continue
		}
		if i == 0 {
			return 0, reeldata.Errorf(reeldata.EINVALID, "count phrase has no preceding token")
		}
		total, err := strconv.Atoi(removeCommas(fields[i-1]))
		if err != nil {
			return 0, reeldata.Errorf(reeldata.EINVALID, "title count %q is not numeric", fields[i-1])
		}
		return total, nil
	}
	return 0, reeldata.Errorf(reeldata.EINVALID, "count phrase %q not found in listing header", "titles.")
}
