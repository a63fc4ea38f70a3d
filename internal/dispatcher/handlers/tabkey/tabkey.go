// Package tabkey implements native Tab interception. Tab moves the
// browser focus, but after linear navigation the focus and the reading
// position have usually diverged; these handlers put focus somewhere
// sensible before the native action runs, inserting a transient
// focusable placeholder when nothing near the position can take focus.
package tabkey

import (
	"golang.org/x/net/html"

	"github.com/auricle/auricle/internal/dispatcher/execctx"
	"github.com/auricle/auricle/internal/dispatcher/handler"
	"github.com/auricle/auricle/internal/dom"
)

// New builds the tab handling group. Both directions share one
// recovery routine; the browser itself walks the right way once focus
// is anchored.
func New() *handler.Group {
	g := handler.NewGroup("tabkey")
	g.Register("handleTab", handleTab)
	g.Register("handleTabPrev", handleTab)
	return g
}

func handleTab(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	page := ctx.Page
	cur := ctx.Nav.CurrentNode()

	// A position with no focusable resolution at all gets forced focus
	// and swallows the native Tab; letting it run would yank the user
	// to an unrelated part of the page.
	if cur != nil && dom.Ancestor(cur, dom.IsFocusable) == nil {
		page.Focus(cur)
		return handler.OK()
	}

	// Focus already on a link or control: the browser will do the right
	// thing from there.
	if dom.IsLinkOrControl(page.FocusedNode()) {
		return handler.OK().WithDoDefault()
	}

	// Choose the anchor/focus pair to recover from. A preceding pointer
	// event means the selection is fresher than the reading position.
	var anchor, focus *html.Node
	if page.LastEventWasPointer() {
		anchor, focus = page.SelectionAnchorFocus()
	} else {
		anchor, focus = cur, cur
	}
	if anchor == nil || focus == nil {
		return handler.OK().WithDoDefault()
	}

	// Try the pair and their parents for something focusable.
	for _, cand := range []*html.Node{anchor, focus, anchor.Parent, focus.Parent} {
		if cand != nil && dom.IsFocusable(cand) {
			page.Focus(cand)
			return handler.OK().WithDoDefault()
		}
	}

	// Nothing focusable nearby: plant a placeholder so the native Tab
	// starts walking from here. Cleanup removes it once focus moves on.
	p := dom.InsertPlaceholderBefore(anchor)
	if p == nil {
		return handler.OK().WithDoDefault()
	}
	page.Focus(p)
	return handler.OK().WithDoDefault()
}

// Cleanup removes placeholders left behind by earlier recoveries,
// sparing one that still holds focus. Callers run it on focus changes.
func Cleanup(ctx *execctx.Context) int {
	if ctx.Page == nil || ctx.Page.Root() == nil {
		return 0
	}
	return dom.RemovePlaceholders(ctx.Page.Root(), ctx.Page.FocusedNode())
}
