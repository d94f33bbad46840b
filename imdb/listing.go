package imdb

import "github.com/reeldata/reeldata"

// ExtractLinks returns one listing page's detail links in on-page order
// (the site's own sort), resolved to absolute URLs. A missing container,
// an empty header set, or a header without its anchor all signal layout
// drift, not missing items.
func (s *Site) ExtractLinks(html string) ([]string, error) {
	root, err := s.Parser.Parse(html)
	if err != nil {
		return nil, err
	}

	list, ok := root.FindClass("div", "lister-list")
	if !ok {
		return nil, reeldata.Errorf(reeldata.ESTRUCTURE, "item list container not found")
	}
	headers := list.FindAllClass("span", "lister-item-header")
	if len(headers) == 0 {
		return nil, reeldata.Errorf(reeldata.ESTRUCTURE, "no item headers in listing")
	}

	links := make([]string, 0, len(headers))
	for _, h := range headers {
		a, ok := h.Find("a")
		if !ok {
			return nil, reeldata.Errorf(reeldata.ESTRUCTURE, "item header without anchor")
		}
		href, ok := a.Attr("href")
		if !ok {
			return nil, reeldata.Errorf(reeldata.ESTRUCTURE, "item anchor without href")
		}
		links = append(links, s.resolve(href))
	}
	return links, nil
}
