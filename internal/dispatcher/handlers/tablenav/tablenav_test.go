package tablenav_test

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/auricle/auricle/internal/command"
	"github.com/auricle/auricle/internal/dispatcher/execctx"
	"github.com/auricle/auricle/internal/dispatcher/handler"
	"github.com/auricle/auricle/internal/dispatcher/handlers/tablenav"
)

type fakeNav struct {
	execctx.Navigator

	inTable bool
	moveOK  bool
	cur     *html.Node

	calls []string
}

func (n *fakeNav) step(call string) bool {
	n.calls = append(n.calls, call)
	return n.moveOK
}

func (n *fakeNav) CurrentNode() *html.Node { return n.cur }

func (n *fakeNav) NextRow() bool            { return n.step("nextRow") }
func (n *fakeNav) NextCol() bool            { return n.step("nextCol") }
func (n *fakeNav) GoToFirstCell() bool      { return n.step("goToFirstCell") }
func (n *fakeNav) GoToLastCell() bool       { return n.step("goToLastCell") }
func (n *fakeNav) GoToRowFirstCell() bool   { return n.step("goToRowFirstCell") }
func (n *fakeNav) GoToRowLastCell() bool    { return n.step("goToRowLastCell") }
func (n *fakeNav) GoToColFirstCell() bool   { return n.step("goToColFirstCell") }
func (n *fakeNav) GoToColLastCell() bool    { return n.step("goToColLastCell") }
func (n *fakeNav) EnterShifter() bool       { return n.step("enterShifter") }
func (n *fakeNav) ExitShifter() bool        { return n.step("exitShifter") }
func (n *fakeNav) ExitShifterContent() bool { return n.step("exitShifterContent") }

func (n *fakeNav) HeaderText() (string, bool) {
	if !n.inTable {
		return "", false
	}
	return "Name", true
}

func (n *fakeNav) LocationDescription() (string, bool) {
	if !n.inTable {
		return "", false
	}
	return "Row 2 of 3, Column 1 of 2", true
}

type fakeSpeech struct {
	execctx.Speech
	spoken  []string
	earcons []execctx.Earcon
}

func (s *fakeSpeech) Speak(text string, mode execctx.QueueMode) { s.spoken = append(s.spoken, text) }
func (s *fakeSpeech) PlayEarcon(e execctx.Earcon)               { s.earcons = append(s.earcons, e) }

// cellNode builds a position inside (or outside) a table.
func cellNode(t *testing.T, inTable bool) *html.Node {
	t.Helper()
	src := `<html><body><p id="out">text</p><table><tr><td id="in">cell</td></tr></table></body></html>`
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	tag := "p"
	if inTable {
		tag = "td"
	}
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			found = n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if found == nil {
		t.Fatalf("fixture missing %q", tag)
	}
	return found
}

func dispatch(t *testing.T, id string, nav *fakeNav, speech *fakeSpeech) handler.Result {
	t.Helper()
	g := tablenav.New()
	if !g.CanHandle(id) {
		t.Fatalf("tablenav group does not cover %q", id)
	}
	inv := execctx.NewInvocation(command.Descriptor{ID: id})
	return g.Handle(inv, &execctx.Context{Nav: nav, Speech: speech})
}

func TestRowShiftOutsideTableSpeaksError(t *testing.T) {
	nav := &fakeNav{cur: cellNode(t, false)}
	res := dispatch(t, "nextRow", nav, &fakeSpeech{})
	if res.SpokenError == "" {
		t.Error("row shift outside a table must produce a spoken error")
	}
}

func TestRowShiftAtTableEdgeJustReannounces(t *testing.T) {
	nav := &fakeNav{cur: cellNode(t, true)}
	speech := &fakeSpeech{}
	res := dispatch(t, "nextRow", nav, speech)
	if res.SpokenError != "" {
		t.Errorf("SpokenError = %q, edge inside a table is not an error", res.SpokenError)
	}
	if len(speech.earcons) != 1 {
		t.Errorf("earcons = %v, want edge earcon", speech.earcons)
	}
}

func TestRowShiftSucceeds(t *testing.T) {
	nav := &fakeNav{moveOK: true}
	res := dispatch(t, "nextCol", nav, &fakeSpeech{})
	if res.Status != handler.StatusOK || res.SpokenError != "" {
		t.Errorf("result = %+v", res)
	}
	if len(nav.calls) != 1 || nav.calls[0] != "nextCol" {
		t.Errorf("calls = %v", nav.calls)
	}
}

func TestCellJumps(t *testing.T) {
	ids := []string{
		"goToFirstCell", "goToLastCell",
		"goToRowFirstCell", "goToRowLastCell",
		"goToColFirstCell", "goToColLastCell",
	}
	for _, id := range ids {
		t.Run(id, func(t *testing.T) {
			nav := &fakeNav{moveOK: true}
			res := dispatch(t, id, nav, &fakeSpeech{})
			if res.SpokenError != "" {
				t.Errorf("unexpected spoken error %q", res.SpokenError)
			}
			if len(nav.calls) != 1 || nav.calls[0] != id {
				t.Errorf("calls = %v, want [%s]", nav.calls, id)
			}

			nav = &fakeNav{moveOK: false}
			res = dispatch(t, id, nav, &fakeSpeech{})
			if res.SpokenError == "" {
				t.Error("failed jump must produce a spoken error")
			}
		})
	}
}

func TestAnnounceHeaders(t *testing.T) {
	nav := &fakeNav{inTable: true}
	speech := &fakeSpeech{}
	res := dispatch(t, "announceHeaders", nav, speech)
	if res.SpokenError != "" {
		t.Errorf("SpokenError = %q", res.SpokenError)
	}
	if len(speech.spoken) != 1 || speech.spoken[0] != "Name" {
		t.Errorf("spoken = %v, want header text", speech.spoken)
	}

	res = dispatch(t, "announceHeaders", &fakeNav{}, &fakeSpeech{})
	if res.SpokenError == "" {
		t.Error("headers outside a table must produce a spoken error")
	}
}

func TestSpeakTableLocation(t *testing.T) {
	nav := &fakeNav{inTable: true}
	speech := &fakeSpeech{}
	dispatch(t, "speakTableLocation", nav, speech)
	if len(speech.spoken) != 1 || !strings.HasPrefix(speech.spoken[0], "Row ") {
		t.Errorf("spoken = %v", speech.spoken)
	}
}

func TestShifterEntryAndExit(t *testing.T) {
	for _, id := range []string{"enterShifter", "exitShifter", "exitShifterContent"} {
		t.Run(id, func(t *testing.T) {
			nav := &fakeNav{moveOK: true}
			res := dispatch(t, id, nav, &fakeSpeech{})
			if res.SpokenError != "" {
				t.Errorf("SpokenError = %q", res.SpokenError)
			}

			res = dispatch(t, id, &fakeNav{}, &fakeSpeech{})
			if res.SpokenError == "" {
				t.Error("failure must produce a spoken error")
			}
		})
	}
}
