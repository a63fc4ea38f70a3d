package suspend_test

import (
	"testing"

	"github.com/auricle/auricle/internal/suspend"
)

func TestScopeBalance(t *testing.T) {
	s := suspend.NewScope()

	if s.Active() {
		t.Error("new scope should not be active")
	}

	s.Enter()
	if !s.Active() {
		t.Error("scope should be active after Enter")
	}
	if s.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", s.Depth())
	}

	s.Exit()
	if s.Active() {
		t.Error("scope should not be active after balanced Exit")
	}
}

func TestScopeNesting(t *testing.T) {
	s := suspend.NewScope()

	s.Enter()
	s.Enter()
	if s.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", s.Depth())
	}

	s.Exit()
	if !s.Active() {
		t.Error("scope should remain active until outermost Exit")
	}

	s.Exit()
	if s.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", s.Depth())
	}
}

func TestScopeUnbalancedExitPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Exit on a never-entered scope should panic")
		}
	}()

	suspend.NewScope().Exit()
}

func TestScopeBalanceAcrossErrorPath(t *testing.T) {
	s := suspend.NewScope()

	// Simulate a command body that fails after entering the scope; the
	// deferred exit must still restore the pre-command depth.
	run := func() (err error) {
		s.Enter()
		defer s.Exit()
		return errTest
	}

	if err := run(); err == nil {
		t.Fatal("expected error from run")
	}
	if s.Depth() != 0 {
		t.Errorf("Depth() = %d after error path, want 0", s.Depth())
	}
}

var errTest = errString("boom")

type errString string

func (e errString) Error() string { return string(e) }
