package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Predicate is a boolean node classifier. Predicates must not mutate the
// node or the tree.
type Predicate func(*html.Node) bool

// selector builds a predicate from a CSS selector. The matcher is
// compiled once; a bad selector is a programming error in this package.
func selector(sel string) Predicate {
	m := goquery.Single(sel)
	return func(n *html.Node) bool {
		if n == nil || n.Type != html.ElementNode {
			return false
		}
		return goquery.NewDocumentFromNode(n).Selection.IsMatcher(m)
	}
}

// predicates maps the names used by command.NodeType.Predicate to their
// implementations.
var predicates = map[string]Predicate{
	"heading":     selector("h1, h2, h3, h4, h5, h6, [role=heading]"),
	"heading1":    selector("h1"),
	"heading2":    selector("h2"),
	"heading3":    selector("h3"),
	"heading4":    selector("h4"),
	"heading5":    selector("h5"),
	"heading6":    selector("h6"),
	"link":        selector("a[href], [role=link]"),
	"visitedLink": selector("a[href].visited, a[href][data-visited]"),
	"table":       selector("table, [role=grid], [role=table]"),
	"list":        selector("ul, ol, dl, [role=list]"),
	"listItem":    selector("li, dt, dd, [role=listitem]"),
	"formField":   selector("input:not([type=hidden]), select, textarea, button, [role=textbox]"),
	"button":      selector("button, input[type=submit], input[type=button], input[type=reset], [role=button]"),
	"checkbox":    selector("input[type=checkbox], [role=checkbox]"),
	"radio":       selector("input[type=radio], [role=radio]"),
	"comboBox":    selector("select, [role=combobox], [role=listbox]"),
	"editText":    selector("textarea, input[type=text], input[type=search], input[type=email], input[type=url], input[type=tel], input[type=password], [contenteditable=true], [role=textbox]"),
	"graphic":     selector("img, svg, [role=img]"),
	"landmark":    selector("main, nav, header, footer, aside, form[aria-label], [role=banner], [role=navigation], [role=main], [role=complementary], [role=contentinfo], [role=search], [role=region][aria-label]"),
	"blockquote":  selector("blockquote"),
	"slider":      selector("input[type=range], [role=slider]"),
	"math":        selector("math, [role=math]"),
	"media":       selector("audio, video"),
	"section":     selector("section, article, fieldset, [role=region]"),
	"control":     selector("a[href], button, input:not([type=hidden]), select, textarea, [role=button], [role=link], [tabindex]"),
	"focusable":   IsFocusable,
	"tableCell":   selector("td, th, [role=cell], [role=gridcell], [role=columnheader], [role=rowheader]"),
}

// LookupPredicate resolves a predicate by name.
func LookupPredicate(name string) (Predicate, bool) {
	p, ok := predicates[name]
	return p, ok
}

// MustPredicate resolves a predicate by name and panics when absent;
// used for names baked into the builtin command table.
func MustPredicate(name string) Predicate {
	p, ok := predicates[name]
	if !ok {
		panic("dom: unknown predicate " + name)
	}
	return p
}

var focusableTag = map[string]bool{
	"a":        true,
	"area":     true,
	"button":   true,
	"input":    true,
	"select":   true,
	"textarea": true,
	"iframe":   true,
}

// IsFocusable reports whether the browser would accept focus on the
// node: interactive elements that are not disabled, plus anything with
// an explicit tabindex or editable content.
func IsFocusable(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	if HasAttr(n, "disabled") {
		return false
	}

	tag := Tag(n)
	switch {
	case tag == "a" || tag == "area":
		return HasAttr(n, "href")
	case tag == "input":
		return !strings.EqualFold(Attr(n, "type"), "hidden")
	case focusableTag[tag]:
		return true
	}

	if HasAttr(n, "tabindex") {
		return true
	}
	return strings.EqualFold(Attr(n, "contenteditable"), "true")
}

// IsLinkOrControl reports whether the node is a link or form control,
// the cases where a native Tab press already starts from a sensible
// place.
func IsLinkOrControl(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	switch Tag(n) {
	case "button", "select", "textarea":
		return true
	case "a":
		return HasAttr(n, "href")
	case "input":
		return !strings.EqualFold(Attr(n, "type"), "hidden")
	}
	return false
}

// InsideTable reports whether the node's ancestor chain reaches a table.
func InsideTable(n *html.Node) bool {
	return Ancestor(n, MustPredicate("table")) != nil
}
