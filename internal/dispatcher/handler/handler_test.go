package handler_test

import (
	"testing"

	"github.com/auricle/auricle/internal/command"
	"github.com/auricle/auricle/internal/dispatcher/execctx"
	"github.com/auricle/auricle/internal/dispatcher/handler"
)

func inv(id string) *execctx.Invocation {
	return execctx.NewInvocation(command.Descriptor{ID: id, Forward: true})
}

func TestFuncAdapter(t *testing.T) {
	called := false
	f := handler.Func(func(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
		called = true
		return handler.OK()
	})

	res := f.Handle(inv("forward"), &execctx.Context{})
	if !called {
		t.Error("function not invoked")
	}
	if res.Status != handler.StatusOK {
		t.Errorf("Status = %v, want StatusOK", res.Status)
	}
	if !f.CanHandle("anything") {
		t.Error("bare Func must claim any identifier")
	}
}

func TestNilFuncIsFatal(t *testing.T) {
	var f handler.Func
	res := f.Handle(inv("forward"), &execctx.Context{})
	if !res.IsFatal() {
		t.Error("nil function must produce a fatal result")
	}
}

func TestGroupRouting(t *testing.T) {
	g := handler.NewGroup("test")
	var got string
	g.Register("nextRow", func(inv *execctx.Invocation, ctx *execctx.Context) handler.Result {
		got = inv.ID
		return handler.OK()
	})

	if !g.CanHandle("nextRow") {
		t.Error("CanHandle(nextRow) = false")
	}
	if g.CanHandle("nextCol") {
		t.Error("CanHandle(nextCol) = true for unregistered id")
	}

	res := g.Handle(inv("nextRow"), &execctx.Context{})
	if res.Status != handler.StatusOK || got != "nextRow" {
		t.Errorf("Handle routed wrong: status=%v got=%q", res.Status, got)
	}

	res = g.Handle(inv("nextCol"), &execctx.Context{})
	if !res.IsFatal() {
		t.Error("unregistered id must produce a fatal result")
	}
}

func TestGroupIDs(t *testing.T) {
	g := handler.NewGroup("test")
	g.Register("a", nil)
	g.Register("b", nil)
	if len(g.IDs()) != 2 {
		t.Errorf("IDs() = %v, want 2 entries", g.IDs())
	}
}
