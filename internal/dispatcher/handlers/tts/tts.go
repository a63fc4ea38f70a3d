// Package tts implements the speech property commands. Rate, pitch,
// and volume adjust the local synthesizer directly; the echo cycles
// round-trip through the preference store so every page sees the new
// mode.
package tts

import (
	"github.com/auricle/auricle/internal/background"
	"github.com/auricle/auricle/internal/dispatcher/execctx"
	"github.com/auricle/auricle/internal/dispatcher/handler"
)

// New builds the speech property handler group.
func New() *handler.Group {
	g := handler.NewGroup("tts")

	g.Register("increaseTtsRate", adjust("rate", true))
	g.Register("decreaseTtsRate", adjust("rate", false))
	g.Register("increaseTtsPitch", adjust("pitch", true))
	g.Register("decreaseTtsPitch", adjust("pitch", false))
	g.Register("increaseTtsVolume", adjust("volume", true))
	g.Register("decreaseTtsVolume", adjust("volume", false))

	g.Register("cycleTypingEcho", cyclePref("typingEcho"))
	g.Register("cyclePunctuationEcho", cyclePref("punctuationEcho"))

	return g
}

func adjust(prop string, increase bool) handler.Func {
	return func(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
		ctx.Speech.AdjustProperty(prop, increase)
		return handler.NoOp()
	}
}

func cyclePref(pref string) handler.Func {
	return func(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
		if ctx.Background == nil {
			return handler.NoOp()
		}
		ctx.Background.Send(background.Message{
			Target:   background.TargetPrefs,
			Action:   "cycle",
			Pref:     pref,
			Announce: true,
		})
		return handler.NoOp()
	}
}
