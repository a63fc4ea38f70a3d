package app

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/auricle/auricle/internal/background"
	"github.com/auricle/auricle/internal/command"
	"github.com/auricle/auricle/internal/config"
	"github.com/auricle/auricle/internal/dispatcher/execctx"
	"github.com/auricle/auricle/internal/dom"
)

// ConsoleSpeech renders speech as text, one utterance per line. It is
// the default synthesizer for the command-line driver; an embedding
// host replaces it with a real TTS engine.
type ConsoleSpeech struct {
	Out io.Writer

	rate, pitch, volume float64
}

// NewConsoleSpeech creates a console synthesizer with the configured
// property defaults.
func NewConsoleSpeech(out io.Writer, sp config.Speech) *ConsoleSpeech {
	return &ConsoleSpeech{Out: out, rate: sp.Rate, pitch: sp.Pitch, volume: sp.Volume}
}

// Speak implements execctx.Speech.
func (s *ConsoleSpeech) Speak(text string, mode execctx.QueueMode) {
	fmt.Fprintln(s.Out, text)
}

// SpeakAnnotation implements execctx.Speech.
func (s *ConsoleSpeech) SpeakAnnotation(text string, mode execctx.QueueMode) {
	fmt.Fprintf(s.Out, "(%s)\n", text)
}

// PlayEarcon implements execctx.Speech.
func (s *ConsoleSpeech) PlayEarcon(e execctx.Earcon) {
	fmt.Fprintf(s.Out, "[earcon %s]\n", e)
}

// AdjustProperty implements execctx.Speech. Properties move in steps of
// 0.1 and clamp to [0, 1].
func (s *ConsoleSpeech) AdjustProperty(prop string, increase bool) {
	step := 0.1
	if !increase {
		step = -0.1
	}
	switch prop {
	case "rate":
		s.rate = clamp01(s.rate + step)
		fmt.Fprintf(s.Out, "(rate %.0f%%)\n", s.rate*100)
	case "pitch":
		s.pitch = clamp01(s.pitch + step)
		fmt.Fprintf(s.Out, "(pitch %.0f%%)\n", s.pitch*100)
	case "volume":
		s.volume = clamp01(s.volume + step)
		fmt.Fprintf(s.Out, "(volume %.0f%%)\n", s.volume*100)
	}
}

// Stop implements execctx.Speech.
func (s *ConsoleSpeech) Stop() {}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// StaticPage adapts a parsed document to execctx.Page. It tracks the
// focused node itself; there is no live browser behind it.
type StaticPage struct {
	doc *html.Node
	url string

	focused *html.Node
	anchor  *html.Node
	pointer bool

	Out io.Writer
}

// NewStaticPage wraps a parsed document.
func NewStaticPage(doc *html.Node, url string) *StaticPage {
	return &StaticPage{doc: doc, url: url, Out: io.Discard}
}

// Root implements execctx.Page.
func (p *StaticPage) Root() *html.Node { return p.doc }

// Title implements execctx.Page.
func (p *StaticPage) Title() string {
	var title *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "title" && title == nil {
			title = n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(p.doc)
	return strings.TrimSpace(dom.Text(title))
}

// URL implements execctx.Page.
func (p *StaticPage) URL() string { return p.url }

// FocusedNode implements execctx.Page.
func (p *StaticPage) FocusedNode() *html.Node { return p.focused }

// Focus implements execctx.Page.
func (p *StaticPage) Focus(n *html.Node) { p.focused = n }

// SetSelection records a pointer selection for tab recovery.
func (p *StaticPage) SetSelection(anchor *html.Node, pointer bool) {
	p.anchor = anchor
	p.pointer = pointer
}

// SelectionAnchorFocus implements execctx.Page.
func (p *StaticPage) SelectionAnchorFocus() (*html.Node, *html.Node) {
	return p.anchor, p.anchor
}

// LastEventWasPointer implements execctx.Page.
func (p *StaticPage) LastEventWasPointer() bool { return p.pointer }

// Click implements execctx.Page.
func (p *StaticPage) Click(n *html.Node, double bool) {
	kind := "click"
	if double {
		kind = "double-click"
	}
	fmt.Fprintf(p.Out, "[%s %s]\n", kind, dom.Tag(n))
}

// PauseMedia implements execctx.Page.
func (p *StaticPage) PauseMedia() {
	fmt.Fprintln(p.Out, "[pause media]")
}

// LongDescURL implements execctx.Page.
func (p *StaticPage) LongDescURL(n *html.Node) string {
	img := dom.Ancestor(n, dom.MustPredicate("graphic"))
	return dom.Attr(img, "longdesc")
}

// ConsoleWidgets prints widget activations instead of rendering them.
type ConsoleWidgets struct {
	Out io.Writer
}

// ModalActive implements execctx.Widgets.
func (w *ConsoleWidgets) ModalActive() bool { return false }

// ShowSearch implements execctx.Widgets.
func (w *ConsoleWidgets) ShowSearch() { fmt.Fprintln(w.Out, "[search widget]") }

// ShowKeyboardHelp implements execctx.Widgets.
func (w *ConsoleWidgets) ShowKeyboardHelp() { fmt.Fprintln(w.Out, "[keyboard help]") }

// ShowPowerKey implements execctx.Widgets.
func (w *ConsoleWidgets) ShowPowerKey() { fmt.Fprintln(w.Out, "[power key]") }

// ShowContextMenu implements execctx.Widgets.
func (w *ConsoleWidgets) ShowContextMenu() { fmt.Fprintln(w.Out, "[context menu]") }

// ShowNodeList implements execctx.Widgets.
func (w *ConsoleWidgets) ShowNodeList(nt *command.NodeType) {
	fmt.Fprintf(w.Out, "[%s list]\n", nt.Name)
}

// ConsoleSender logs background messages.
type ConsoleSender struct {
	Out io.Writer
}

// Send implements background.Sender.
func (s *ConsoleSender) Send(msg background.Message) {
	switch {
	case msg.URL != "":
		fmt.Fprintf(s.Out, "[open tab %s]\n", msg.URL)
	case msg.Pref != "":
		fmt.Fprintf(s.Out, "[%s pref %s]\n", msg.Action, msg.Pref)
	default:
		fmt.Fprintf(s.Out, "[open %s]\n", msg.Target)
	}
}
