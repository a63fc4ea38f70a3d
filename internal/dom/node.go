// Package dom provides node-level helpers over x/net/html trees: document
// order traversal, ancestry checks, the node-type predicates used by jump
// commands, and the tab-focus placeholder element.
package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Attr returns the value of an attribute, or "" when absent.
func Attr(n *html.Node, name string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether the node carries an attribute.
func HasAttr(n *html.Node, name string) bool {
	if n == nil {
		return false
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

// SetAttr sets or replaces an attribute on the node.
func SetAttr(n *html.Node, name, value string) {
	for i := range n.Attr {
		if n.Attr[i].Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

// Tag returns the lowercase tag name of an element node, or "".
func Tag(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(n.Data)
}

// Root returns the topmost ancestor of a node.
func Root(n *html.Node) *html.Node {
	for n != nil && n.Parent != nil {
		n = n.Parent
	}
	return n
}

// Ancestor returns the nearest ancestor (including the node itself)
// satisfying the predicate, or nil.
func Ancestor(n *html.Node, pred Predicate) *html.Node {
	for ; n != nil; n = n.Parent {
		if pred(n) {
			return n
		}
	}
	return nil
}

// InFrame reports whether the node sits inside a frame element, meaning
// the surrounding frame plumbing already describes results found there.
func InFrame(n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		switch Tag(p) {
		case "iframe", "frame", "object", "embed":
			return true
		}
	}
	return false
}

// Next returns the document-order successor of a node, or nil at the end.
func Next(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
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

// Prev returns the document-order predecessor of a node, or nil at the
// beginning.
func Prev(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	if n.PrevSibling != nil {
		return LastDeep(n.PrevSibling)
	}
	return n.Parent
}

// LastDeep returns the last node, in document order, of the subtree
// rooted at n.
func LastDeep(n *html.Node) *html.Node {
	for n.LastChild != nil {
		n = n.LastChild
	}
	return n
}

// Text returns the concatenated text content of a subtree with runs of
// whitespace collapsed.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if n != nil {
		walk(n)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// IsTextInput reports whether focus on this node means the user is
// typing into a text field.
func IsTextInput(n *html.Node) bool {
	if n == nil {
		return false
	}
	switch Tag(n) {
	case "textarea":
		return true
	case "input":
		switch strings.ToLower(Attr(n, "type")) {
		case "", "text", "search", "email", "url", "tel", "password", "number":
			return true
		}
		return false
	}
	return strings.EqualFold(Attr(n, "contenteditable"), "true")
}
