// Package domnav provides the default traversal/selection collaborator:
// a Navigator over an x/net/html document tree with position, direction,
// granularity movement, predicate search, and a table-shift context.
//
// The engine only depends on the execctx.Navigator interface; hosts with
// a richer layout-aware traversal engine substitute their own.
package domnav

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/auricle/auricle/internal/dispatcher/execctx"
	"github.com/auricle/auricle/internal/dom"
)

// Granularity is the unit of movement used by directional navigation.
type Granularity int

// Granularity ladder, narrowest first.
const (
	Character Granularity = iota
	Word
	Sentence
	Line
	Object
	Group
)

// String returns the spoken name of a granularity.
func (g Granularity) String() string {
	switch g {
	case Character:
		return "character"
	case Word:
		return "word"
	case Sentence:
		return "sentence"
	case Line:
		return "line"
	case Object:
		return "object"
	case Group:
		return "group"
	default:
		return "unknown"
	}
}

// ParseGranularity maps a granularity name back to its level.
func ParseGranularity(name string) (Granularity, bool) {
	switch name {
	case "character":
		return Character, true
	case "word":
		return Word, true
	case "sentence":
		return Sentence, true
	case "line":
		return Line, true
	case "object":
		return Object, true
	case "group":
		return Group, true
	default:
		return Object, false
	}
}

// Navigator is the default execctx.Navigator implementation. All state
// lives on the single UI thread; no locking.
type Navigator struct {
	root *html.Node

	// cur is the text node owning the position; nil until the first
	// sync. offset is the byte offset of the current segment start
	// within cur's data.
	cur    *html.Node
	offset int

	granularity Granularity
	reversed    bool
	reading     bool

	speech execctx.Speech

	shift *shiftContext
}

var _ execctx.Navigator = (*Navigator)(nil)

// New creates a navigator over a document tree. speech may be nil in
// tests that only exercise movement.
func New(root *html.Node, speech execctx.Speech) *Navigator {
	return &Navigator{
		root:        root,
		granularity: Object,
		speech:      speech,
	}
}

// SetReversed sets directionality for subsequent directional calls.
func (nav *Navigator) SetReversed(reversed bool) { nav.reversed = reversed }

// IsReversed reports the current directionality.
func (nav *Navigator) IsReversed() bool { return nav.reversed }

// Granularity returns the active granularity level.
func (nav *Navigator) Granularity() Granularity { return nav.granularity }

// SetGranularity sets the active granularity level.
func (nav *Navigator) SetGranularity(g Granularity) { nav.granularity = g }

// GranularityName describes the active granularity for speech.
func (nav *Navigator) GranularityName() string { return nav.granularity.String() }

// WidenGranularity moves one step toward Group and returns the new name.
func (nav *Navigator) WidenGranularity() string {
	if nav.granularity < Group {
		nav.granularity++
	}
	return nav.granularity.String()
}

// NarrowGranularity moves one step toward Character and returns the new
// name.
func (nav *Navigator) NarrowGranularity() string {
	if nav.granularity > Character {
		nav.granularity--
	}
	return nav.granularity.String()
}

// CurrentNode returns the element owning the current position.
func (nav *Navigator) CurrentNode() *html.Node {
	if nav.cur == nil {
		return nil
	}
	if nav.cur.Type == html.TextNode {
		return nav.cur.Parent
	}
	return nav.cur
}

// MoveTo sets the position onto a node produced elsewhere. The position
// lands on the first content text inside the node, or the node itself
// when it has none.
func (nav *Navigator) MoveTo(n *html.Node) {
	if n == nil {
		return
	}
	if t := firstText(n); t != nil {
		nav.cur = t
	} else {
		nav.cur = n
	}
	nav.offset = 0
}

// SyncToBeginning resets the position to the first content text of the
// document, or the last when reversed.
func (nav *Navigator) SyncToBeginning() {
	if nav.reversed {
		nav.cur = lastContentText(nav.root)
	} else {
		nav.cur = firstText(nav.root)
	}
	nav.offset = 0
}

// SaveState snapshots position, granularity, direction, and the shift
// context, returning a function that restores them.
func (nav *Navigator) SaveState() func() {
	cur, offset := nav.cur, nav.offset
	g, rev := nav.granularity, nav.reversed
	var shift *shiftContext
	if nav.shift != nil {
		copied := *nav.shift
		shift = &copied
	}
	return func() {
		nav.cur, nav.offset = cur, offset
		nav.granularity, nav.reversed = g, rev
		nav.shift = shift
	}
}

// Navigate moves one unit at the active granularity in the active
// direction. Returns false at the document edge, leaving the position
// unchanged.
func (nav *Navigator) Navigate() bool {
	if nav.cur == nil {
		nav.SyncToBeginning()
		return nav.cur != nil
	}

	switch nav.granularity {
	case Line, Object:
		return nav.moveText()
	case Group:
		return nav.moveGroup()
	default:
		return nav.moveSegment()
	}
}

// NavigateAt moves one unit at the named granularity, leaving the
// active granularity level untouched. Unknown names fall back to the
// active level.
func (nav *Navigator) NavigateAt(granularity string) bool {
	g, ok := ParseGranularity(granularity)
	if !ok {
		return nav.Navigate()
	}
	saved := nav.granularity
	nav.granularity = g
	moved := nav.Navigate()
	nav.granularity = saved
	return moved
}

// SkipBlock jumps past the current block-level run of content.
func (nav *Navigator) SkipBlock() bool {
	if nav.cur == nil {
		nav.SyncToBeginning()
		return nav.cur != nil
	}
	return nav.moveGroup()
}

// MoveToLineEdge moves to the start or end of the current line.
func (nav *Navigator) MoveToLineEdge(end bool) bool {
	if nav.cur == nil || nav.cur.Type != html.TextNode {
		return false
	}
	if !end {
		nav.offset = 0
		return true
	}
	segs := segment(nav.cur.Data, Character)
	if len(segs) == 0 {
		nav.offset = 0
		return true
	}
	nav.offset = segs[len(segs)-1].start
	return true
}

// moveText moves to the adjacent content text node.
func (nav *Navigator) moveText() bool {
	var next *html.Node
	if nav.reversed {
		next = prevContentText(nav.cur)
	} else {
		next = nextContentText(nav.cur)
	}
	if next == nil {
		return false
	}
	nav.cur = next
	nav.offset = 0
	return true
}

// moveGroup moves to the first content text of the adjacent block.
func (nav *Navigator) moveGroup() bool {
	from := blockAncestor(nav.cur)
	n := nav.cur
	for {
		if nav.reversed {
			n = prevContentText(n)
		} else {
			n = nextContentText(n)
		}
		if n == nil {
			return false
		}
		if blockAncestor(n) != from {
			nav.cur = n
			nav.offset = 0
			return true
		}
	}
}

// moveSegment moves one character/word/sentence within the current text
// node, crossing into the adjacent one at its edge.
func (nav *Navigator) moveSegment() bool {
	if nav.cur.Type != html.TextNode {
		// Position on an empty element; fall back to object movement.
		return nav.moveText()
	}

	segs := segment(nav.cur.Data, nav.granularity)
	idx := segmentIndex(segs, nav.offset)

	if nav.reversed {
		idx--
	} else {
		idx++
	}

	if idx >= 0 && idx < len(segs) {
		nav.offset = segs[idx].start
		return true
	}

	// Edge of the node: cross to the neighbor text node.
	save := nav.cur
	if !nav.moveText() {
		nav.cur = save
		return false
	}
	if nav.reversed {
		neighbor := segment(nav.cur.Data, nav.granularity)
		if len(neighbor) > 0 {
			nav.offset = neighbor[len(neighbor)-1].start
		}
	}
	return true
}

// FindNext searches directionally for the next element satisfying the
// predicate and moves there. With wrap set the search scans from the
// document edge, so a match at or before the current position is
// eligible.
func (nav *Navigator) FindNext(pred func(*html.Node) bool, wrap bool) bool {
	var n *html.Node

	switch {
	case wrap || nav.cur == nil:
		if nav.reversed {
			n = dom.LastDeep(nav.root)
		} else {
			n = nav.root
		}
	case nav.reversed:
		n = dom.Prev(nav.cur)
	default:
		n = dom.Next(nav.cur)
	}

	for ; n != nil; n = nav.step(n) {
		if n.Type == html.ElementNode && pred(n) {
			nav.MoveTo(n)
			return true
		}
	}
	return false
}

func (nav *Navigator) step(n *html.Node) *html.Node {
	if nav.reversed {
		return dom.Prev(n)
	}
	return dom.Next(n)
}

// IsReading reports whether continuous reading is active.
func (nav *Navigator) IsReading() bool { return nav.reading }

// StartReading begins continuous reading from the current position.
func (nav *Navigator) StartReading() { nav.reading = true }

// StopReading halts continuous reading.
func (nav *Navigator) StopReading() { nav.reading = false }

// AdvanceReading speaks the next unit of continuous reading, stopping at
// the document edge.
func (nav *Navigator) AdvanceReading() {
	if !nav.reading {
		return
	}
	if !nav.Navigate() {
		nav.reading = false
		return
	}
	nav.FinishNavCommand("")
}

// FinishNavCommand announces the new position with an optional prefix.
func (nav *Navigator) FinishNavCommand(prefix string) {
	if nav.speech == nil {
		return
	}
	text := strings.TrimSpace(prefix + " " + nav.CurrentDescription())
	if text == "" {
		return
	}
	nav.speech.Speak(text, execctx.QueueFlush)
}

// CurrentDescription returns the text of the current unit.
func (nav *Navigator) CurrentDescription() string {
	if nav.cur == nil {
		return ""
	}
	if nav.cur.Type != html.TextNode {
		return dom.Text(nav.cur)
	}

	switch nav.granularity {
	case Line, Object:
		return strings.TrimSpace(nav.cur.Data)
	case Group:
		if b := blockAncestor(nav.cur); b != nil {
			return dom.Text(b)
		}
		return strings.TrimSpace(nav.cur.Data)
	default:
		segs := segment(nav.cur.Data, nav.granularity)
		i := segmentIndex(segs, nav.offset)
		if i < 0 || i >= len(segs) {
			return strings.TrimSpace(nav.cur.Data)
		}
		return strings.TrimSpace(nav.cur.Data[segs[i].start:segs[i].end])
	}
}

var blockTag = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"body": true, "div": true, "dl": true, "fieldset": true, "footer": true,
	"form": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "header": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"td": true, "th": true, "tr": true, "ul": true,
}

// blockAncestor returns the nearest block-level ancestor of a node.
func blockAncestor(n *html.Node) *html.Node {
	return dom.Ancestor(n, func(a *html.Node) bool {
		return blockTag[dom.Tag(a)]
	})
}

var skipContainer = map[string]bool{
	"script": true, "style": true, "noscript": true, "head": true, "title": true,
}

// isContentText reports whether a node is a non-empty text node outside
// script/style containers.
func isContentText(n *html.Node) bool {
	if n == nil || n.Type != html.TextNode || strings.TrimSpace(n.Data) == "" {
		return false
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if skipContainer[dom.Tag(p)] {
			return false
		}
	}
	return true
}

func firstText(n *html.Node) *html.Node {
	if isContentText(n) {
		return n
	}
	if n == nil || n.FirstChild == nil {
		return nil
	}
	last := dom.LastDeep(n)
	for c := n.FirstChild; c != nil; c = dom.Next(c) {
		if isContentText(c) {
			return c
		}
		if c == last {
			return nil
		}
	}
	return nil
}

func lastContentText(root *html.Node) *html.Node {
	for n := dom.LastDeep(root); n != nil; n = dom.Prev(n) {
		if isContentText(n) {
			return n
		}
	}
	return nil
}

func nextContentText(n *html.Node) *html.Node {
	for c := dom.Next(n); c != nil; c = dom.Next(c) {
		if isContentText(c) {
			return c
		}
	}
	return nil
}

func prevContentText(n *html.Node) *html.Node {
	for c := dom.Prev(n); c != nil; c = dom.Prev(c) {
		if isContentText(c) {
			return c
		}
	}
	return nil
}
