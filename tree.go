package reeldata

// Node is a queryable handle into a parsed markup document. Extractors
// depend on this capability set only, never on a concrete parsing library.
//
// All lookups return the first match in document order together with an ok
// flag; scanning loops and their tie-breaks are the caller's concern.
type Node interface {
	// Text returns the concatenated text of the node and its descendants.
	// For a text node it returns the node's own content.
	Text() string

	// Attr returns the value of the named attribute on the node.
	Attr(name string) (string, bool)

	// Find returns the first descendant element with the given tag.
	Find(tag string) (Node, bool)

	// FindAll returns all descendant elements with the given tag,
	// in document order.
	FindAll(tag string) []Node

	// FindClass returns the first descendant element with the given tag
	// carrying the class token (token match, not exact attribute match).
	FindClass(tag, class string) (Node, bool)

	// FindAllClass returns all descendant elements with the given tag
	// carrying the class token, in document order.
	FindAllClass(tag, class string) []Node

	// FindAttr returns the first descendant element whose attribute
	// equals value exactly.
	FindAttr(key, value string) (Node, bool)

	// FindText returns the first descendant text node whose trimmed
	// content equals text exactly.
	FindText(text string) (Node, bool)

	// Parent returns the enclosing element.
	Parent() (Node, bool)

	// NextSibling returns the next element among the node's siblings.
	NextSibling() (Node, bool)

	// NextElement returns the next element in document order, descending
	// into children before moving to siblings.
	NextElement() (Node, bool)
}

// Parser turns raw markup into a queryable document tree.
type Parser interface {
	// Parse parses raw markup and returns the document's root node.
	Parse(html string) (Node, error)
}
