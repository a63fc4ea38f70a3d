// Package movement implements the linear navigation commands: stepping
// by granularity, granularity changes, line edges, document edges, and
// continuous reading control.
package movement

import (
	"github.com/auricle/auricle/internal/dispatcher/execctx"
	"github.com/auricle/auricle/internal/dispatcher/handler"
)

// New builds the movement handler group.
func New() *handler.Group {
	g := handler.NewGroup("movement")

	g.Register("forward", navigate)
	g.Register("backward", navigate)
	g.Register("right", navigate)
	g.Register("left", navigate)

	g.Register("skipForward", skipBlock)
	g.Register("skipBackward", skipBlock)

	g.Register("nextCharacter", navigateAt("character"))
	g.Register("previousCharacter", navigateAt("character"))
	g.Register("nextWord", navigateAt("word"))
	g.Register("previousWord", navigateAt("word"))
	g.Register("nextSentence", navigateAt("sentence"))
	g.Register("previousSentence", navigateAt("sentence"))
	g.Register("nextLine", navigateAt("line"))
	g.Register("previousLine", navigateAt("line"))
	g.Register("nextObject", navigateAt("object"))
	g.Register("previousObject", navigateAt("object"))
	g.Register("nextGroup", navigateAt("group"))
	g.Register("previousGroup", navigateAt("group"))

	g.Register("jumpToTop", jumpToEdge)
	g.Register("jumpToBottom", jumpToEdge)

	g.Register("moveToStartOfLine", lineEdge)
	g.Register("moveToEndOfLine", lineEdge)

	g.Register("nextGranularity", widenGranularity)
	g.Register("previousGranularity", narrowGranularity)

	g.Register("readFromHere", readFromHere)
	g.Register("stopSpeech", stopSpeech)

	return g
}

func navigate(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	if !ctx.Nav.Navigate() {
		ctx.Speech.PlayEarcon(execctx.EarconInvalid)
	}
	return handler.OK()
}

func skipBlock(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	if !ctx.Nav.SkipBlock() {
		ctx.Speech.PlayEarcon(execctx.EarconInvalid)
	}
	return handler.OK()
}

// navigateAt builds a single-shot move at a fixed granularity. The
// active granularity level stays put; only the step size changes.
func navigateAt(granularity string) handler.Func {
	return func(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
		if !ctx.Nav.NavigateAt(granularity) {
			ctx.Speech.PlayEarcon(execctx.EarconInvalid)
		}
		return handler.OK()
	}
}

// jumpToEdge syncs to the document edge in the active direction; the
// executor has already set reversed for jumpToBottom.
func jumpToEdge(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	ctx.Nav.SyncToBeginning()
	return handler.OK()
}

func lineEdge(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	if !ctx.Nav.MoveToLineEdge(inv.Desc.Forward) {
		ctx.Speech.PlayEarcon(execctx.EarconInvalid)
	}
	return handler.OK()
}

func widenGranularity(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	return handler.OKWithPrefix(ctx.Nav.WidenGranularity())
}

func narrowGranularity(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	return handler.OKWithPrefix(ctx.Nav.NarrowGranularity())
}

func readFromHere(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	ctx.Nav.StartReading()
	return handler.OK()
}

func stopSpeech(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	ctx.Speech.Stop()
	ctx.Nav.StopReading()
	return handler.NoOp()
}
