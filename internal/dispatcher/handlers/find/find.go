// Package find implements the generic structural find operation that
// all typed jump commands rewrite onto: a linear scan for the next node
// matching a node type, with a single wrap-around retry and full
// position rollback when the document has no match at all.
package find

import (
	"errors"
	"fmt"

	"github.com/auricle/auricle/internal/dispatcher/execctx"
	"github.com/auricle/auricle/internal/dispatcher/handler"
	"github.com/auricle/auricle/internal/dom"
)

// ErrInvalidFind indicates a find invocation without a usable node
// type. Only reachable through a broken descriptor; every builtin jump
// command carries one.
var ErrInvalidFind = errors.New("find: command requires a node type")

// Wrap announcements, prepended to the landing description.
const (
	wrapToTop    = "Wrapped to top."
	wrapToBottom = "Wrapped to bottom."
)

// New builds the find handler group.
func New() *handler.Group {
	g := handler.NewGroup("find")
	g.Register("find", findNext)
	return g
}

func findNext(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	nt := inv.NodeType
	if nt == nil {
		return handler.Fatal(ErrInvalidFind)
	}
	pred, ok := dom.LookupPredicate(nt.Predicate)
	if !ok {
		return handler.Fatal(fmt.Errorf("%w: unknown node predicate %q", ErrInvalidFind, nt.Predicate))
	}

	// First attempt: scan from the current position to the document
	// edge in the active direction.
	if ctx.Nav.FindNext(pred, false) {
		return landed(ctx, "")
	}

	// Second attempt: wrap to the opposite edge and scan the whole
	// document. The saved state makes the whole operation a no-op when
	// the document has no match anywhere.
	restore := ctx.Nav.SaveState()
	ctx.Speech.PlayEarcon(execctx.EarconWrap)
	if ctx.Nav.FindNext(pred, true) {
		if ctx.Nav.IsReversed() {
			return landed(ctx, wrapToBottom)
		}
		return landed(ctx, wrapToTop)
	}

	restore()
	if ctx.Nav.IsReversed() {
		return handler.Spoken(nt.BackwardError)
	}
	return handler.Spoken(nt.ForwardError)
}

// landed builds the success result. A match inside a sub-frame is
// announced by the frame's own reader instance, not this one.
func landed(ctx *execctx.Context, prefix string) handler.Result {
	res := handler.OKWithPrefix(prefix)
	if dom.InFrame(ctx.Nav.CurrentNode()) {
		res = res.WithSuppressAnnounce()
	}
	return res
}
