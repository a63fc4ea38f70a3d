// Package execctx provides the execution context for command handlers:
// the collaborator interfaces a command may touch and the per-invocation
// working state derived from a command descriptor.
package execctx

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/auricle/auricle/internal/background"
	"github.com/auricle/auricle/internal/command"
	"github.com/auricle/auricle/internal/dom"
	"github.com/auricle/auricle/internal/suspend"
)

// QueueMode selects how an utterance interacts with speech in progress.
type QueueMode int

const (
	// QueueFlush interrupts anything currently being spoken.
	QueueFlush QueueMode = iota
	// QueueAppend speaks after the current utterance finishes.
	QueueAppend
)

// Earcon identifies a non-speech audio cue.
type Earcon string

// Earcons used by the engine.
const (
	EarconWrap      Earcon = "wrap"
	EarconInvalid   Earcon = "invalid_keypress"
	EarconSelection Earcon = "selection"
)

// Speech abstracts the text-to-speech collaborator.
type Speech interface {
	// Speak renders an utterance with the given queue mode.
	Speak(text string, mode QueueMode)

	// SpeakAnnotation renders an utterance in the annotation voice used
	// for status and error messages.
	SpeakAnnotation(text string, mode QueueMode)

	// PlayEarcon plays a non-speech cue.
	PlayEarcon(e Earcon)

	// AdjustProperty nudges a speech property ("rate", "pitch",
	// "volume") up or down and announces the new value.
	AdjustProperty(prop string, increase bool)

	// Stop silences all speech immediately.
	Stop()
}

// Navigator abstracts the traversal/selection engine that owns the
// current position, direction, and granularity.
type Navigator interface {
	Shifter

	// SetReversed sets directionality for subsequent directional calls.
	// It must be called before any directional navigation in the same
	// command execution.
	SetReversed(reversed bool)
	IsReversed() bool

	// GranularityName describes the active granularity for speech.
	GranularityName() string

	// WidenGranularity and NarrowGranularity move along the granularity
	// ladder and return a description of the new level.
	WidenGranularity() string
	NarrowGranularity() string

	// Navigate moves one unit at the active granularity in the active
	// direction. Returns false at the document edge.
	Navigate() bool

	// NavigateAt moves one unit at the named granularity ("character",
	// "word", "sentence", "line", "object", "group") without changing
	// the active granularity level.
	NavigateAt(granularity string) bool

	// SkipBlock jumps past the current block-level run of content.
	SkipBlock() bool

	// MoveToLineEdge moves to the start (end=false) or end of the
	// current line.
	MoveToLineEdge(end bool) bool

	// SyncToBeginning resets the position to the start of the document,
	// or to the end when reversed.
	SyncToBeginning()

	// CurrentNode returns the node owning the current position, nil when
	// no position is known yet.
	CurrentNode() *html.Node

	// MoveTo sets the position onto a node produced elsewhere (e.g., a
	// delegation result).
	MoveTo(n *html.Node)

	// FindNext searches directionally for the next node satisfying the
	// predicate and moves there. With wrap set, the node at the current
	// position itself is also eligible, so a search restarted from a
	// document edge can land on the first match even if the position
	// already sits on it.
	FindNext(pred func(*html.Node) bool, wrap bool) bool

	// SaveState snapshots the position and returns a function restoring
	// it. The snapshot is transient; it must not outlive the command.
	SaveState() (restore func())

	// Continuous reading.
	IsReading() bool
	StartReading()
	StopReading()
	AdvanceReading()

	// FinishNavCommand announces the new position, prefixed with an
	// accumulated message such as a wrap notice.
	FinishNavCommand(prefix string)
}

// Shifter is the table-shift context of the Navigator. Operations
// return false when the current position is not inside a table or the
// underlying action fails.
type Shifter interface {
	EnterShifter() bool
	ExitShifter() bool
	ExitShifterContent() bool

	// NextRow and NextCol honor the Navigator's reversed flag; the
	// "previous" command variants fold onto these after reversal.
	NextRow() bool
	NextCol() bool

	GoToFirstCell() bool
	GoToLastCell() bool
	GoToRowFirstCell() bool
	GoToRowLastCell() bool
	GoToColFirstCell() bool
	GoToColLastCell() bool

	// HeaderText describes the headers of the current cell.
	HeaderText() (string, bool)

	// LocationDescription describes the current table position.
	LocationDescription() (string, bool)
}

// Widgets abstracts the modal on-screen widgets.
type Widgets interface {
	// ModalActive reports whether any modal widget (search box, list
	// browser, context menu, keyboard help) is showing. Commands are
	// rejected wholesale while one is.
	ModalActive() bool

	ShowSearch()
	ShowKeyboardHelp()
	ShowPowerKey()
	ShowContextMenu()

	// ShowNodeList opens a list browser over a node type.
	ShowNodeList(nt *command.NodeType)
}

// Page abstracts the hosted document: focus, selection, and the handful
// of direct DOM side effects commands perform.
type Page interface {
	Root() *html.Node
	Title() string
	URL() string

	FocusedNode() *html.Node
	Focus(n *html.Node)

	// SelectionAnchorFocus returns the live text selection's anchor and
	// focus nodes, nil when there is no selection.
	SelectionAnchorFocus() (anchor, focus *html.Node)

	// LastEventWasPointer reports whether the most recent positioning
	// event was a pointer click rather than a key press.
	LastEventWasPointer() bool

	Click(n *html.Node, double bool)
	PauseMedia()

	// LongDescURL returns the long-description URL of a graphic, "" if
	// none.
	LongDescURL(n *html.Node) string
}

// Context carries the collaborators handlers may touch. It is built once
// at engine construction; handlers never mutate it.
type Context struct {
	Nav        Navigator
	Speech     Speech
	Widgets    Widgets
	Page       Page
	Background background.Sender

	// Suspension is the event-suspension scope bracketing execution.
	Suspension *suspend.Scope

	// Platform is the platform class of the current build.
	Platform command.Platform
}

// Validate checks that the required collaborators are present.
func (ctx *Context) Validate() error {
	if ctx.Nav == nil {
		return ErrMissingNavigator
	}
	if ctx.Speech == nil {
		return ErrMissingSpeech
	}
	if ctx.Page == nil {
		return ErrMissingPage
	}
	if ctx.Suspension == nil {
		return ErrMissingSuspension
	}
	return nil
}

// FocusInTextInput reports whether input focus currently sits inside a
// text-entry field; consulted by the skipInput gate.
func (ctx *Context) FocusInTextInput() bool {
	if ctx.Page == nil {
		return false
	}
	n := ctx.Page.FocusedNode()
	if n == nil {
		return false
	}
	if dom.IsTextInput(n) {
		return true
	}
	// An aria textbox behaves like an input even without the tag.
	return strings.EqualFold(dom.Attr(n, "role"), "textbox")
}
