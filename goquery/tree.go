// Package goquery implements the reeldata document tree over HTML parsed
// with PuerkitoBio/goquery. Selector-based lookups go through goquery;
// text-node and document-order traversal work on the underlying html nodes
// directly, which goquery shares with x/net/html.
package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/reeldata/reeldata"
	"golang.org/x/net/html"
)

// Ensure Parser implements reeldata.Parser at compile time.
var _ reeldata.Parser = (*Parser)(nil)

// Parser parses raw HTML into a queryable reeldata.Node.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses raw HTML and returns the document's root node.
func (*Parser) Parse(raw string) (reeldata.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, reeldata.Errorf(reeldata.EINVALID, "failed to parse HTML: %v", err)
	}
	return &node{sel: doc.Selection}, nil
}

// node wraps a single-element goquery selection. Every node holds at least
// one underlying html node.
type node struct {
	sel *goquery.Selection
}

// first wraps the first element of a selection, reporting whether the
// selection was non-empty.
func first(s *goquery.Selection) (reeldata.Node, bool) {
	if s.Length() == 0 {
		return nil, false
	}
	return &node{sel: s.First()}, true
}

// collect wraps every element of a selection in document order.
func collect(s *goquery.Selection) []reeldata.Node {
	nodes := make([]reeldata.Node, 0, s.Length())
	s.Each(func(_ int, sel *goquery.Selection) {
		nodes = append(nodes, &node{sel: sel})
	})
	return nodes
}

// wrapRaw builds a node around an arbitrary html node from the same tree.
// The wrapper document shares the original node pointers, so parent and
// sibling traversal keep working across it.
func wrapRaw(n *html.Node) *node {
	return &node{sel: goquery.NewDocumentFromNode(n).Selection}
}

func (n *node) Text() string {
	return n.sel.Text()
}

func (n *node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

func (n *node) Find(tag string) (reeldata.Node, bool) {
	return first(n.sel.Find(tag))
}

func (n *node) FindAll(tag string) []reeldata.Node {
	return collect(n.sel.Find(tag))
}

func (n *node) FindClass(tag, class string) (reeldata.Node, bool) {
	return first(n.sel.Find(tag + "." + class))
}

func (n *node) FindAllClass(tag, class string) []reeldata.Node {
	return collect(n.sel.Find(tag + "." + class))
}

func (n *node) FindAttr(key, value string) (reeldata.Node, bool) {
	return first(n.sel.Find(fmt.Sprintf("[%s=%q]", key, value)))
}

// FindText walks the subtree for a text node whose trimmed content equals
// text exactly. The match is the text node itself, so Parent climbs to the
// element that contains the label.
func (n *node) FindText(text string) (reeldata.Node, bool) {
	for _, root := range n.sel.Nodes {
		if found := findTextNode(root, text); found != nil {
			return wrapRaw(found), true
		}
	}
	return nil, false
}

func findTextNode(n *html.Node, text string) *html.Node {
	if n.Type == html.TextNode && strings.TrimSpace(n.Data) == text {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findTextNode(c, text); found != nil {
			return found
		}
	}
	return nil
}

func (n *node) Parent() (reeldata.Node, bool) {
	return first(n.sel.Parent())
}

func (n *node) NextSibling() (reeldata.Node, bool) {
	return first(n.sel.Next())
}

// NextElement returns the next element in document order, descending into
// children before siblings.
func (n *node) NextElement() (reeldata.Node, bool) {
	for c := nextInDocument(n.sel.Get(0)); c != nil; c = nextInDocument(c) {
		if c.Type == html.ElementNode {
			return wrapRaw(c), true
		}
	}
	return nil, false
}

// nextInDocument is the depth-first document-order successor.
func nextInDocument(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}
