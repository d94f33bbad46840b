package mock

import "github.com/reeldata/reeldata"

var _ reeldata.Parser = (*Parser)(nil)

// Parser is a mock implementation of reeldata.Parser.
type Parser struct {
	ParseFn func(html string) (reeldata.Node, error)
}

func (p *Parser) Parse(html string) (reeldata.Node, error) {
	return p.ParseFn(html)
}
