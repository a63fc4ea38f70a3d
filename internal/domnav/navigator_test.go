package domnav_test

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/auricle/auricle/internal/dom"
	"github.com/auricle/auricle/internal/domnav"
)

func parse(t *testing.T, src string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return root
}

func newNav(t *testing.T, src string) *domnav.Navigator {
	return domnav.New(parse(t, src), nil)
}

func TestNavigateObjects(t *testing.T) {
	nav := newNav(t, `<p>alpha</p><p>beta</p><p>gamma</p>`)

	nav.SyncToBeginning()
	if got := nav.CurrentDescription(); got != "alpha" {
		t.Fatalf("start = %q, want alpha", got)
	}

	if !nav.Navigate() {
		t.Fatal("Navigate to second object failed")
	}
	if got := nav.CurrentDescription(); got != "beta" {
		t.Errorf("after one step = %q, want beta", got)
	}

	nav.Navigate()
	if got := nav.CurrentDescription(); got != "gamma" {
		t.Errorf("after two steps = %q, want gamma", got)
	}

	// Edge: no further object.
	if nav.Navigate() {
		t.Error("Navigate past document end should fail")
	}
	if got := nav.CurrentDescription(); got != "gamma" {
		t.Errorf("failed Navigate moved position to %q", got)
	}
}

func TestNavigateBackward(t *testing.T) {
	nav := newNav(t, `<p>alpha</p><p>beta</p>`)

	nav.SetReversed(true)
	nav.SyncToBeginning()
	if got := nav.CurrentDescription(); got != "beta" {
		t.Fatalf("reversed sync = %q, want beta", got)
	}

	if !nav.Navigate() {
		t.Fatal("backward Navigate failed")
	}
	if got := nav.CurrentDescription(); got != "alpha" {
		t.Errorf("backward step = %q, want alpha", got)
	}
}

func TestWordGranularity(t *testing.T) {
	nav := newNav(t, `<p>one two three</p>`)

	nav.SyncToBeginning()
	nav.SetGranularity(domnav.Word)

	if got := nav.CurrentDescription(); got != "one" {
		t.Fatalf("first word = %q", got)
	}
	nav.Navigate()
	if got := nav.CurrentDescription(); got != "two" {
		t.Errorf("second word = %q", got)
	}
	nav.Navigate()
	if got := nav.CurrentDescription(); got != "three" {
		t.Errorf("third word = %q", got)
	}
}

func TestWordCrossesTextNodes(t *testing.T) {
	nav := newNav(t, `<p>end</p><p>start here</p>`)

	nav.SyncToBeginning()
	nav.SetGranularity(domnav.Word)

	nav.Navigate() // "end" -> "start"
	if got := nav.CurrentDescription(); got != "start" {
		t.Errorf("crossed word = %q, want start", got)
	}

	// And back.
	nav.SetReversed(true)
	nav.Navigate()
	if got := nav.CurrentDescription(); got != "end" {
		t.Errorf("re-crossed word = %q, want end", got)
	}
}

func TestCharacterGranularity(t *testing.T) {
	nav := newNav(t, `<p>héllo</p>`)

	nav.SyncToBeginning()
	nav.SetGranularity(domnav.Character)

	if got := nav.CurrentDescription(); got != "h" {
		t.Fatalf("first char = %q", got)
	}
	nav.Navigate()
	if got := nav.CurrentDescription(); got != "é" {
		t.Errorf("second char = %q, want é", got)
	}
}

func TestGranularityLadder(t *testing.T) {
	nav := newNav(t, `<p>x</p>`)

	// Default is object; widen once reaches group and clamps there.
	if got := nav.WidenGranularity(); got != "group" {
		t.Errorf("widen = %q, want group", got)
	}
	if got := nav.WidenGranularity(); got != "group" {
		t.Errorf("widen at top = %q, want group (clamped)", got)
	}

	for _, want := range []string{"object", "line", "sentence", "word", "character", "character"} {
		if got := nav.NarrowGranularity(); got != want {
			t.Errorf("narrow = %q, want %q", got, want)
		}
	}
}

func TestFindNext(t *testing.T) {
	nav := newNav(t, `<p>intro</p><h2>first</h2><p>mid</p><h2>second</h2>`)
	heading := dom.MustPredicate("heading")

	nav.SyncToBeginning()

	if !nav.FindNext(heading, false) {
		t.Fatal("FindNext should find a heading ahead")
	}
	if got := nav.CurrentDescription(); got != "first" {
		t.Errorf("found %q, want first", got)
	}

	if !nav.FindNext(heading, false) {
		t.Fatal("FindNext should find the second heading")
	}
	if got := nav.CurrentDescription(); got != "second" {
		t.Errorf("found %q, want second", got)
	}

	// Nothing ahead without wrap.
	if nav.FindNext(heading, false) {
		t.Error("FindNext past last heading should fail")
	}
}

func TestFindNextWrapIncludesCurrentPosition(t *testing.T) {
	// The only heading is the first element; after syncing to the
	// beginning the position already sits on it, so only a wrapped
	// search may land there.
	nav := newNav(t, `<h2>only</h2><p>rest</p>`)
	heading := dom.MustPredicate("heading")

	nav.SyncToBeginning()
	if nav.FindNext(heading, false) {
		t.Error("non-wrap search should not find the heading at the position")
	}

	nav.SyncToBeginning()
	if !nav.FindNext(heading, true) {
		t.Error("wrapped search should find the heading at the position")
	}
}

func TestSaveStateRestores(t *testing.T) {
	nav := newNav(t, `<p>alpha</p><p>beta</p>`)

	nav.SyncToBeginning()
	restore := nav.SaveState()

	nav.Navigate()
	nav.SetGranularity(domnav.Word)
	if got := nav.CurrentDescription(); got != "beta" {
		t.Fatalf("moved to %q", got)
	}

	restore()
	if got := nav.CurrentDescription(); got != "alpha" {
		t.Errorf("restored position = %q, want alpha", got)
	}
	if nav.Granularity() != domnav.Object {
		t.Errorf("restored granularity = %v, want Object", nav.Granularity())
	}
}

func TestContinuousReading(t *testing.T) {
	nav := newNav(t, `<p>one</p><p>two</p>`)
	nav.SyncToBeginning()

	nav.StartReading()
	if !nav.IsReading() {
		t.Fatal("reading should be active")
	}

	nav.AdvanceReading()
	if got := nav.CurrentDescription(); got != "two" {
		t.Errorf("reading advanced to %q, want two", got)
	}

	// Advancing past the end stops reading.
	nav.AdvanceReading()
	if nav.IsReading() {
		t.Error("reading should stop at the document end")
	}
}

func TestSkipBlock(t *testing.T) {
	nav := newNav(t, `<div><p>a1</p><p>a2</p></div><div><p>b1</p></div>`)
	nav.SyncToBeginning()

	if !nav.SkipBlock() {
		t.Fatal("SkipBlock failed")
	}
	if got := nav.CurrentDescription(); got != "a2" {
		t.Errorf("SkipBlock landed on %q, want a2", got)
	}
}

func TestMoveToLineEdge(t *testing.T) {
	nav := newNav(t, `<p>hello world</p>`)
	nav.SyncToBeginning()
	nav.SetGranularity(domnav.Character)

	if !nav.MoveToLineEdge(true) {
		t.Fatal("MoveToLineEdge(end) failed")
	}
	if got := nav.CurrentDescription(); got != "d" {
		t.Errorf("line end char = %q, want d", got)
	}

	if !nav.MoveToLineEdge(false) {
		t.Fatal("MoveToLineEdge(start) failed")
	}
	if got := nav.CurrentDescription(); got != "h" {
		t.Errorf("line start char = %q, want h", got)
	}
}
