package movement_test

import (
	"testing"

	"github.com/auricle/auricle/internal/command"
	"github.com/auricle/auricle/internal/dispatcher/execctx"
	"github.com/auricle/auricle/internal/dispatcher/handler"
	"github.com/auricle/auricle/internal/dispatcher/handlers/movement"
)

type fakeNav struct {
	execctx.Navigator

	fail    bool
	calls   []string
	reading bool
}

func (n *fakeNav) step(call string) bool {
	n.calls = append(n.calls, call)
	return !n.fail
}

func (n *fakeNav) Navigate() bool               { return n.step("navigate") }
func (n *fakeNav) NavigateAt(g string) bool     { return n.step("navigateAt:" + g) }
func (n *fakeNav) SkipBlock() bool              { return n.step("skipBlock") }
func (n *fakeNav) SyncToBeginning()             { n.step("sync") }
func (n *fakeNav) MoveToLineEdge(end bool) bool { return n.step("lineEdge") }
func (n *fakeNav) WidenGranularity() string     { n.step("widen"); return "group" }
func (n *fakeNav) NarrowGranularity() string    { n.step("narrow"); return "line" }
func (n *fakeNav) StartReading()                { n.reading = true }
func (n *fakeNav) StopReading()                 { n.reading = false }

type fakeSpeech struct {
	execctx.Speech
	earcons []execctx.Earcon
	stopped bool
}

func (s *fakeSpeech) PlayEarcon(e execctx.Earcon) { s.earcons = append(s.earcons, e) }
func (s *fakeSpeech) Stop()                       { s.stopped = true }

func dispatch(t *testing.T, id string, nav *fakeNav, speech *fakeSpeech) handler.Result {
	t.Helper()
	g := movement.New()
	if !g.CanHandle(id) {
		t.Fatalf("movement group does not cover %q", id)
	}
	desc := command.Descriptor{ID: id, Forward: true}
	if id == "moveToStartOfLine" {
		desc.Forward = false
	}
	inv := execctx.NewInvocation(desc)
	return g.Handle(inv, &execctx.Context{Nav: nav, Speech: speech})
}

func TestGranularityMoves(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"forward", "navigate"},
		{"nextCharacter", "navigateAt:character"},
		{"previousWord", "navigateAt:word"},
		{"nextSentence", "navigateAt:sentence"},
		{"previousLine", "navigateAt:line"},
		{"nextObject", "navigateAt:object"},
		{"previousGroup", "navigateAt:group"},
		{"skipForward", "skipBlock"},
		{"jumpToTop", "sync"},
		{"moveToEndOfLine", "lineEdge"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			nav := &fakeNav{}
			res := dispatch(t, tt.id, nav, &fakeSpeech{})
			if res.IsFatal() {
				t.Fatalf("fatal: %v", res.Err)
			}
			if len(nav.calls) != 1 || nav.calls[0] != tt.want {
				t.Errorf("calls = %v, want [%s]", nav.calls, tt.want)
			}
		})
	}
}

func TestEdgeFailurePlaysEarcon(t *testing.T) {
	nav := &fakeNav{fail: true}
	speech := &fakeSpeech{}
	res := dispatch(t, "forward", nav, speech)

	if res.IsFatal() {
		t.Fatalf("fatal: %v", res.Err)
	}
	if len(speech.earcons) != 1 || speech.earcons[0] != execctx.EarconInvalid {
		t.Errorf("earcons = %v, want invalid earcon at the edge", speech.earcons)
	}
}

func TestGranularityChangeAnnouncesNewLevel(t *testing.T) {
	nav := &fakeNav{}
	res := dispatch(t, "nextGranularity", nav, &fakeSpeech{})
	if res.Prefix != "group" {
		t.Errorf("Prefix = %q, want new granularity name", res.Prefix)
	}

	res = dispatch(t, "previousGranularity", nav, &fakeSpeech{})
	if res.Prefix != "line" {
		t.Errorf("Prefix = %q, want new granularity name", res.Prefix)
	}
}

func TestReadFromHereStartsReading(t *testing.T) {
	nav := &fakeNav{}
	dispatch(t, "readFromHere", nav, &fakeSpeech{})
	if !nav.reading {
		t.Error("readFromHere must start continuous reading")
	}
}

func TestStopSpeechStopsEverything(t *testing.T) {
	nav := &fakeNav{reading: true}
	speech := &fakeSpeech{}
	dispatch(t, "stopSpeech", nav, speech)
	if nav.reading {
		t.Error("continuous reading still active")
	}
	if !speech.stopped {
		t.Error("synthesizer not stopped")
	}
}
