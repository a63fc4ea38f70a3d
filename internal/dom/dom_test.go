package dom_test

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/auricle/auricle/internal/dom"
)

func parse(t *testing.T, src string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return root
}

// findTag returns the first element with the given tag, in document order.
func findTag(root *html.Node, tag string) *html.Node {
	for n := root; n != nil; n = dom.Next(n) {
		if dom.Tag(n) == tag {
			return n
		}
	}
	return nil
}

func TestDocumentOrderTraversal(t *testing.T) {
	root := parse(t, `<p>one</p><h2>two</h2><p>three</p>`)

	h2 := findTag(root, "h2")
	if h2 == nil {
		t.Fatal("no h2")
	}

	// Walking forward from h2 must reach the following paragraph.
	var after *html.Node
	for n := dom.Next(h2); n != nil; n = dom.Next(n) {
		if dom.Tag(n) == "p" {
			after = n
			break
		}
	}
	if after == nil || dom.Text(after) != "three" {
		t.Errorf("forward walk from h2 found %q, want \"three\"", dom.Text(after))
	}

	// Prev then Next round-trips.
	if got := dom.Next(dom.Prev(h2)); got != h2 {
		t.Error("Prev/Next round trip broke")
	}
}

func TestPredicates(t *testing.T) {
	root := parse(t, `
		<h3>title</h3>
		<a href="/x">link</a>
		<a>anchor without href</a>
		<input type="checkbox">
		<input type="hidden" name="h">
		<table><tr><td>cell</td></tr></table>
		<input type="range" min="0" max="10">
	`)

	tests := []struct {
		predicate string
		tag       string
		want      bool
	}{
		{"heading", "h3", true},
		{"heading1", "h3", false},
		{"link", "a", true},
		{"table", "table", true},
		{"checkbox", "input", true},
		{"slider", "table", false},
		{"formField", "h3", false},
	}

	for _, tt := range tests {
		p, ok := dom.LookupPredicate(tt.predicate)
		if !ok {
			t.Fatalf("predicate %q not registered", tt.predicate)
		}
		n := findTag(root, tt.tag)
		if n == nil {
			t.Fatalf("no <%s> in fixture", tt.tag)
		}
		if got := p(n); got != tt.want {
			t.Errorf("%s(<%s>) = %v, want %v", tt.predicate, tt.tag, got, tt.want)
		}
	}
}

func TestEveryBuiltinPredicateResolves(t *testing.T) {
	for _, name := range []string{
		"heading", "heading1", "heading2", "heading3", "heading4", "heading5",
		"heading6", "link", "visitedLink", "table", "list", "listItem",
		"formField", "button", "checkbox", "radio", "comboBox", "editText",
		"graphic", "landmark", "blockquote", "slider", "math", "media",
		"section", "control", "focusable", "tableCell",
	} {
		if _, ok := dom.LookupPredicate(name); !ok {
			t.Errorf("predicate %q missing", name)
		}
	}
}

func TestIsFocusable(t *testing.T) {
	root := parse(t, `
		<a href="/x" id="yes">x</a>
		<input type="hidden">
		<button disabled>no</button>
		<div tabindex="0">tappable</div>
		<span>plain</span>
	`)

	a := findTag(root, "a")
	if !dom.IsFocusable(a) {
		t.Error("href link should be focusable")
	}
	if dom.IsFocusable(findTag(root, "input")) {
		t.Error("hidden input should not be focusable")
	}
	if dom.IsFocusable(findTag(root, "button")) {
		t.Error("disabled button should not be focusable")
	}
	if !dom.IsFocusable(findTag(root, "div")) {
		t.Error("explicit tabindex should be focusable")
	}
	if dom.IsFocusable(findTag(root, "span")) {
		t.Error("plain span should not be focusable")
	}
}

func TestIsTextInput(t *testing.T) {
	root := parse(t, `<input type="search"><input type="checkbox"><textarea></textarea>`)

	search := findTag(root, "input")
	if !dom.IsTextInput(search) {
		t.Error("search input is a text input")
	}

	checkbox := search
	for n := dom.Next(checkbox); n != nil; n = dom.Next(n) {
		if dom.Tag(n) == "input" {
			checkbox = n
			break
		}
	}
	if dom.IsTextInput(checkbox) {
		t.Error("checkbox is not a text input")
	}
	if !dom.IsTextInput(findTag(root, "textarea")) {
		t.Error("textarea is a text input")
	}
}

func TestPlaceholderInsertAndRemove(t *testing.T) {
	root := parse(t, `<p id="a">one</p><p id="b">two</p>`)
	b := findTag(root, "body")
	target := b.FirstChild.NextSibling // second <p>

	p := dom.InsertPlaceholderBefore(target)
	if p == nil {
		t.Fatal("InsertPlaceholderBefore returned nil")
	}
	if p.NextSibling != target {
		t.Error("placeholder not inserted immediately before target")
	}
	if dom.Attr(p, "tabindex") != "-1" {
		t.Error("placeholder must be negatively tab-indexed")
	}

	if removed := dom.RemovePlaceholders(root, nil); removed != 1 {
		t.Errorf("removed %d placeholders, want 1", removed)
	}

	// Idempotent: nothing left to remove, twice.
	if removed := dom.RemovePlaceholders(root, nil); removed != 0 {
		t.Errorf("second removal removed %d, want 0", removed)
	}
	if removed := dom.RemovePlaceholders(root, nil); removed != 0 {
		t.Errorf("third removal removed %d, want 0", removed)
	}
}

func TestRemovePlaceholdersSkipsFocused(t *testing.T) {
	root := parse(t, `<p>one</p>`)
	target := findTag(root, "p")

	p := dom.InsertPlaceholderBefore(target)

	if removed := dom.RemovePlaceholders(root, p); removed != 0 {
		t.Errorf("focused placeholder was removed (%d)", removed)
	}
	if removed := dom.RemovePlaceholders(root, nil); removed != 1 {
		t.Errorf("removed %d after focus moved away, want 1", removed)
	}
}

func TestInsideTableAndInFrame(t *testing.T) {
	root := parse(t, `<table><tr><td><b>deep</b></td></tr></table><p>out</p>`)

	b := findTag(root, "b")
	if !dom.InsideTable(b) {
		t.Error("node inside table not detected")
	}
	if dom.InsideTable(findTag(root, "p")) {
		t.Error("node outside table misdetected")
	}

	framed := parse(t, `<iframe><p>framed</p></iframe>`)
	ifr := findTag(framed, "iframe")
	if !dom.InFrame(ifr) {
		t.Error("frame element itself should count as framed")
	}
}
