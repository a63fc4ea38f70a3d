package dom

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PlaceholderAttr marks the zero-width placeholder element inserted by
// tab-focus recovery so a later pass can find and remove it.
const PlaceholderAttr = "data-tab-placeholder"

// NewPlaceholder builds the zero-width, negatively-tab-indexed element
// used to seed native tab traversal near the user's position.
func NewPlaceholder() *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Span,
		Data:     "span",
		Attr: []html.Attribute{
			{Key: PlaceholderAttr, Val: "true"},
			{Key: "tabindex", Val: "-1"},
			{Key: "style", Val: "position:absolute;width:0;height:0;overflow:hidden"},
		},
	}
}

// IsPlaceholder reports whether the node is a tab placeholder.
func IsPlaceholder(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && HasAttr(n, PlaceholderAttr)
}

// InsertPlaceholderBefore inserts a new placeholder immediately before
// the given node. Returns nil when the node has no parent to insert
// under.
func InsertPlaceholderBefore(n *html.Node) *html.Node {
	if n == nil || n.Parent == nil {
		return nil
	}
	p := NewPlaceholder()
	n.Parent.InsertBefore(p, n)
	return p
}

// RemovePlaceholders deletes every placeholder under root except the one
// currently holding focus, so an in-progress tab traversal is not yanked
// away. Returns the number removed. Calling it again with nothing newly
// inserted is a no-op.
func RemovePlaceholders(root, focused *html.Node) int {
	if root == nil {
		return 0
	}

	var doomed []*html.Node
	for n := root; n != nil; n = Next(n) {
		if IsPlaceholder(n) && n != focused {
			doomed = append(doomed, n)
		}
	}
	for _, n := range doomed {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
	return len(doomed)
}
