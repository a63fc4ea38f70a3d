package handler_test

import (
	"errors"
	"testing"

	"github.com/auricle/auricle/internal/dispatcher/handler"
)

func TestResultConstructors(t *testing.T) {
	if res := handler.OK(); res.Status != handler.StatusOK || res.IsFatal() {
		t.Errorf("OK() = %+v", res)
	}
	if res := handler.NoOp(); res.Status != handler.StatusNoOp {
		t.Errorf("NoOp() = %+v", res)
	}
	if res := handler.OKWithPrefix("Wrapped to top."); res.Prefix != "Wrapped to top." {
		t.Errorf("OKWithPrefix prefix = %q", res.Prefix)
	}
	if res := handler.Spoken("Not inside table."); res.SpokenError != "Not inside table." || res.IsFatal() {
		t.Errorf("Spoken() = %+v", res)
	}
	if res := handler.Delegated(); res.Status != handler.StatusDelegated {
		t.Errorf("Delegated() = %+v", res)
	}
}

func TestFatalResults(t *testing.T) {
	sentinel := errors.New("boom")
	res := handler.Fatal(sentinel)
	if !res.IsFatal() {
		t.Error("Fatal not fatal")
	}
	if !errors.Is(res.Err, sentinel) {
		t.Errorf("Err = %v, want wrapped sentinel", res.Err)
	}

	res = handler.Fatalf("bad id %q", "x")
	if !res.IsFatal() || res.Err == nil {
		t.Errorf("Fatalf() = %+v", res)
	}
}

func TestResultModifiers(t *testing.T) {
	res := handler.OK().WithDoDefault()
	if !res.DoDefault {
		t.Error("WithDoDefault lost")
	}
	res = handler.OK().WithSuppressAnnounce()
	if !res.SuppressAnnounce {
		t.Error("WithSuppressAnnounce lost")
	}
	res = handler.OK().WithPrefix("word")
	if res.Prefix != "word" {
		t.Errorf("WithPrefix = %q", res.Prefix)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status handler.Status
		want   string
	}{
		{handler.StatusOK, "ok"},
		{handler.StatusNoOp, "no-op"},
		{handler.StatusDelegated, "delegated"},
		{handler.StatusFatal, "fatal"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
