// Package tablenav implements the table commands: row and column
// shifts, cell jumps, header and location announcements, and explicit
// entry and exit of the table-shift context.
package tablenav

import (
	"github.com/auricle/auricle/internal/dispatcher/execctx"
	"github.com/auricle/auricle/internal/dispatcher/handler"
	"github.com/auricle/auricle/internal/dom"
)

// Spoken messages for recoverable table failures.
const (
	msgNotInsideTable = "Not inside table."
	msgNoHeaders      = "No headers."
)

// New builds the table navigation handler group.
func New() *handler.Group {
	g := handler.NewGroup("tablenav")

	g.Register("nextRow", rowColShift(func(ctx *execctx.Context) bool { return ctx.Nav.NextRow() }))
	g.Register("nextCol", rowColShift(func(ctx *execctx.Context) bool { return ctx.Nav.NextCol() }))

	g.Register("goToFirstCell", cellJump(func(ctx *execctx.Context) bool { return ctx.Nav.GoToFirstCell() }))
	g.Register("goToLastCell", cellJump(func(ctx *execctx.Context) bool { return ctx.Nav.GoToLastCell() }))
	g.Register("goToRowFirstCell", cellJump(func(ctx *execctx.Context) bool { return ctx.Nav.GoToRowFirstCell() }))
	g.Register("goToRowLastCell", cellJump(func(ctx *execctx.Context) bool { return ctx.Nav.GoToRowLastCell() }))
	g.Register("goToColFirstCell", cellJump(func(ctx *execctx.Context) bool { return ctx.Nav.GoToColFirstCell() }))
	g.Register("goToColLastCell", cellJump(func(ctx *execctx.Context) bool { return ctx.Nav.GoToColLastCell() }))

	g.Register("announceHeaders", announceHeaders)
	g.Register("speakTableLocation", speakLocation)

	g.Register("enterShifter", enterShifter)
	g.Register("exitShifter", exitShifter)
	g.Register("exitShifterContent", exitShifterContent)

	return g
}

func insideTable(ctx *execctx.Context) bool {
	return dom.InsideTable(ctx.Nav.CurrentNode())
}

// rowColShift wraps a row/column move. Entering the shift context is
// implicit and silent; a move that fails outside any table speaks the
// recoverable error, a move that fails at a table edge just re-announces
// the current cell.
func rowColShift(move func(*execctx.Context) bool) handler.Func {
	return func(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
		if move(ctx) {
			return handler.OK()
		}
		if !insideTable(ctx) {
			return handler.Spoken(msgNotInsideTable)
		}
		ctx.Speech.PlayEarcon(execctx.EarconInvalid)
		return handler.OK()
	}
}

func cellJump(move func(*execctx.Context) bool) handler.Func {
	return func(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
		if move(ctx) {
			return handler.OK()
		}
		return handler.Spoken(msgNotInsideTable)
	}
}

func announceHeaders(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	text, ok := ctx.Nav.HeaderText()
	if !ok {
		return handler.Spoken(msgNotInsideTable)
	}
	if text == "" {
		text = msgNoHeaders
	}
	ctx.Speech.Speak(text, execctx.QueueFlush)
	return handler.OK()
}

func speakLocation(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	text, ok := ctx.Nav.LocationDescription()
	if !ok {
		return handler.Spoken(msgNotInsideTable)
	}
	ctx.Speech.Speak(text, execctx.QueueFlush)
	return handler.OK()
}

func enterShifter(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	if !ctx.Nav.EnterShifter() {
		return handler.Spoken(msgNotInsideTable)
	}
	return handler.OK()
}

func exitShifter(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	if !ctx.Nav.ExitShifter() {
		return handler.Spoken(msgNotInsideTable)
	}
	return handler.OK()
}

func exitShifterContent(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	if !ctx.Nav.ExitShifterContent() {
		return handler.Spoken(msgNotInsideTable)
	}
	return handler.OK()
}
