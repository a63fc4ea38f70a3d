package dispatcher

import (
	"github.com/auricle/auricle/internal/dispatcher/execctx"
	"github.com/auricle/auricle/internal/dispatcher/handler"
)

// PreDispatchHook is called before a command executes locally.
// Returning false cancels the execution.
type PreDispatchHook interface {
	// PreDispatch is called before execution. It may modify the
	// invocation. Returns false to cancel.
	PreDispatch(inv *execctx.Invocation, ctx *execctx.Context) bool
}

// PostDispatchHook is called after a command executes locally.
type PostDispatchHook interface {
	// PostDispatch is called after execution completes. It may inspect
	// or modify the result.
	PostDispatch(inv *execctx.Invocation, ctx *execctx.Context, result *handler.Result)
}

// PreDispatchFunc is a function adapter for PreDispatchHook.
type PreDispatchFunc func(inv *execctx.Invocation, ctx *execctx.Context) bool

// PreDispatch implements PreDispatchHook.
func (f PreDispatchFunc) PreDispatch(inv *execctx.Invocation, ctx *execctx.Context) bool {
	return f(inv, ctx)
}

// PostDispatchFunc is a function adapter for PostDispatchHook.
type PostDispatchFunc func(inv *execctx.Invocation, ctx *execctx.Context, result *handler.Result)

// PostDispatch implements PostDispatchHook.
func (f PostDispatchFunc) PostDispatch(inv *execctx.Invocation, ctx *execctx.Context, result *handler.Result) {
	f(inv, ctx, result)
}

// LoggingHook provides basic logging for dispatch operations.
type LoggingHook struct {
	// LogFunc is called with log messages.
	LogFunc func(format string, args ...interface{})
}

// NewLoggingHook creates a new logging hook.
func NewLoggingHook(logFunc func(format string, args ...interface{})) *LoggingHook {
	return &LoggingHook{LogFunc: logFunc}
}

// PreDispatch logs the command being executed.
func (h *LoggingHook) PreDispatch(inv *execctx.Invocation, ctx *execctx.Context) bool {
	if h.LogFunc != nil {
		h.LogFunc("executing command: %s (status=%s)", inv.ID, inv.Status)
	}
	return true
}

// PostDispatch logs the execution result.
func (h *LoggingHook) PostDispatch(inv *execctx.Invocation, ctx *execctx.Context, result *handler.Result) {
	if h.LogFunc != nil {
		h.LogFunc("command complete: %s -> %s", inv.ID, result.Status)
	}
}
