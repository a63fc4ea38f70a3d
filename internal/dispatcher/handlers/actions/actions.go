// Package actions implements the non-navigation commands: clicks and
// other page side effects, informational announcements, widget
// toggles, the auxiliary extension pages, and the deliberate no-ops.
package actions

import (
	"time"

	"github.com/auricle/auricle/internal/background"
	"github.com/auricle/auricle/internal/dispatcher/execctx"
	"github.com/auricle/auricle/internal/dispatcher/handler"
	"github.com/auricle/auricle/internal/dom"
)

// Spoken messages.
const (
	msgNoLongDesc = "No long description."
	msgNoURL      = "No URL found."
	msgSelStart   = "Selection started."
	msgSelEnd     = "Selection ended."
)

// Handler owns the action commands. It carries the one piece of state
// this group has, the selection mode flag.
type Handler struct {
	*handler.Group

	selecting bool

	// now is the clock for speakTimeAndDate; tests replace it.
	now func() time.Time
}

// New builds the action handler group.
func New() *Handler {
	h := &Handler{
		Group: handler.NewGroup("actions"),
		now:   time.Now,
	}

	h.Register("forceClickOnCurrentItem", click(false))
	h.Register("forceDoubleClickOnCurrentItem", click(true))
	h.Register("performDefaultAction", performDefault)
	h.Register("openLongDesc", openLongDesc)
	h.Register("pauseAllMedia", pauseAllMedia)

	h.Register("toggleSelection", h.toggleSelection)
	h.Register("toggleStickyMode", togglePref("stickyMode"))
	h.Register("toggleKeyPrefix", togglePref("keyPrefix"))
	h.Register("toggleEarcons", togglePref("earcons"))
	h.Register("toggleSemantics", togglePref("semantics"))

	h.Register("toggleSearchWidget", showWidget(func(w execctx.Widgets) { w.ShowSearch() }))
	h.Register("toggleKeyboardHelp", showWidget(func(w execctx.Widgets) { w.ShowKeyboardHelp() }))
	h.Register("showPowerKey", showWidget(func(w execctx.Widgets) { w.ShowPowerKey() }))
	h.Register("showContextMenu", showWidget(func(w execctx.Widgets) { w.ShowContextMenu() }))

	h.Register("showHeadingsList", showNodeList)
	h.Register("showLinksList", showNodeList)
	h.Register("showFormsList", showNodeList)
	h.Register("showTablesList", showNodeList)
	h.Register("showLandmarksList", showNodeList)

	h.Register("fullyDescribe", fullyDescribe)
	h.Register("readLinkURL", readLinkURL)
	h.Register("readCurrentTitle", readCurrentTitle)
	h.Register("readCurrentURL", readCurrentURL)
	h.Register("speakTimeAndDate", h.speakTimeAndDate)
	h.Register("announcePosition", announcePosition)

	h.Register("help", openPage(background.TargetHelpDocs))
	h.Register("showOptionsPage", openPage(background.TargetOptions))
	h.Register("showBookmarkManager", openPage(background.TargetBookmarkManager))
	h.Register("showKbExplorerPage", openPage(background.TargetKbExplorer))

	h.Register("nop", noop)
	h.Register("debug", noop)

	return h
}

// Selecting reports whether selection mode is active.
func (h *Handler) Selecting() bool { return h.selecting }

// SetClock replaces the time source for speakTimeAndDate.
func (h *Handler) SetClock(now func() time.Time) { h.now = now }

func click(double bool) handler.Func {
	return func(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
		ctx.Page.Click(ctx.Nav.CurrentNode(), double)
		return handler.NoOp()
	}
}

// performDefault clicks the current item and additionally lets the
// native key action through; the descriptor carries the pass-through.
func performDefault(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	ctx.Page.Click(ctx.Nav.CurrentNode(), false)
	return handler.NoOp()
}

func openLongDesc(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	url := ctx.Page.LongDescURL(ctx.Nav.CurrentNode())
	if url == "" {
		return handler.Spoken(msgNoLongDesc)
	}
	ctx.Background.Send(background.OpenTab(url))
	return handler.NoOp()
}

func pauseAllMedia(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	ctx.Page.PauseMedia()
	return handler.NoOp()
}

func (h *Handler) toggleSelection(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	h.selecting = !h.selecting
	ctx.Speech.PlayEarcon(execctx.EarconSelection)
	if h.selecting {
		ctx.Speech.SpeakAnnotation(msgSelStart, execctx.QueueFlush)
	} else {
		ctx.Speech.SpeakAnnotation(msgSelEnd, execctx.QueueFlush)
	}
	return handler.OK().WithSuppressAnnounce()
}

// togglePref flips a persistent preference. The store owns the value,
// so the flip round-trips through it and the store announces the new
// state.
func togglePref(pref string) handler.Func {
	return func(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
		if ctx.Background == nil {
			return handler.NoOp()
		}
		ctx.Background.Send(background.Message{
			Target:   background.TargetPrefs,
			Action:   "toggle",
			Pref:     pref,
			Announce: true,
		})
		return handler.NoOp()
	}
}

func showWidget(show func(execctx.Widgets)) handler.Func {
	return func(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
		if ctx.Widgets == nil {
			return handler.NoOp()
		}
		show(ctx.Widgets)
		return handler.NoOp()
	}
}

func showNodeList(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	if ctx.Widgets == nil || inv.Desc.NodeList == nil {
		return handler.NoOp()
	}
	ctx.Widgets.ShowNodeList(inv.Desc.NodeList)
	return handler.NoOp()
}

func fullyDescribe(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	text := dom.Text(ctx.Nav.CurrentNode())
	if text == "" {
		text = ctx.Nav.GranularityName()
	}
	ctx.Speech.Speak(text, execctx.QueueFlush)
	return handler.OK()
}

func readLinkURL(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	link := dom.Ancestor(ctx.Nav.CurrentNode(), dom.MustPredicate("link"))
	href := dom.Attr(link, "href")
	if href == "" {
		ctx.Speech.Speak(msgNoURL, execctx.QueueFlush)
		return handler.OK()
	}
	ctx.Speech.Speak(href, execctx.QueueFlush)
	return handler.OK()
}

func readCurrentTitle(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	ctx.Speech.Speak(ctx.Page.Title(), execctx.QueueFlush)
	return handler.OK()
}

func readCurrentURL(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	ctx.Speech.Speak(ctx.Page.URL(), execctx.QueueFlush)
	return handler.OK()
}

func (h *Handler) speakTimeAndDate(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	ctx.Speech.Speak(h.now().Format("3:04 PM, Monday January 2 2006"), execctx.QueueFlush)
	return handler.OK()
}

func announcePosition(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	ctx.Nav.FinishNavCommand("")
	return handler.OK().WithSuppressAnnounce()
}

// openPage asks the background process to open one of the extension's
// auxiliary pages.
func openPage(target background.Target) handler.Func {
	return func(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
		if ctx.Background == nil {
			return handler.NoOp()
		}
		ctx.Background.Send(background.Open(target))
		return handler.NoOp()
	}
}

func noop(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
	return handler.NoOp()
}
