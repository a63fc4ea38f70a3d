package handler

import "fmt"

// Status indicates the outcome of a command execution.
type Status uint8

const (
	// StatusOK indicates successful execution.
	StatusOK Status = iota
	// StatusNoOp indicates the command intentionally did nothing.
	StatusNoOp
	// StatusDelegated indicates the command was offered to the page and
	// no local side effects ran.
	StatusDelegated
	// StatusFatal indicates a programming or registry error; the
	// invocation aborts and the error propagates to the caller.
	StatusFatal
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusDelegated:
		return "delegated"
	case StatusFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Result is the outcome of handling one command.
//
// Recoverable user-facing failures travel in SpokenError and are spoken,
// never returned as Go errors; only fatal conditions set Err.
type Result struct {
	// Status indicates the outcome.
	Status Status

	// Err is a fatal error that aborts the invocation.
	Err error

	// SpokenError is a recoverable failure message, spoken with an
	// interrupting queue mode in the annotation voice.
	SpokenError string

	// Prefix accumulates a message to prepend to the final position
	// announcement (wrap notice, granularity description).
	Prefix string

	// SuppressAnnounce skips the final announcement even when the
	// descriptor asked for one; set when a frame already spoke the
	// result itself.
	SuppressAnnounce bool

	// DoDefault requests that the browser's native handling also run,
	// in addition to the descriptor's own doDefault flag.
	DoDefault bool
}

// IsFatal reports whether the result carries a fatal error.
func (r Result) IsFatal() bool {
	return r.Status == StatusFatal
}

// OK creates a successful result.
func OK() Result {
	return Result{Status: StatusOK}
}

// OKWithPrefix creates a successful result with an announcement prefix.
func OKWithPrefix(prefix string) Result {
	return Result{Status: StatusOK, Prefix: prefix}
}

// NoOp creates a no-operation result.
func NoOp() Result {
	return Result{Status: StatusNoOp}
}

// Spoken creates a result whose failure is reported by speech only.
func Spoken(msg string) Result {
	return Result{Status: StatusOK, SpokenError: msg}
}

// Fatal creates a fatal result from an error.
func Fatal(err error) Result {
	return Result{Status: StatusFatal, Err: err}
}

// Fatalf creates a fatal result with a formatted message.
func Fatalf(format string, args ...any) Result {
	return Result{Status: StatusFatal, Err: fmt.Errorf(format, args...)}
}

// Delegated creates a result for a command offered to the page.
func Delegated() Result {
	return Result{Status: StatusDelegated}
}

// WithDoDefault returns a copy of the result that lets the native
// action proceed.
func (r Result) WithDoDefault() Result {
	r.DoDefault = true
	return r
}

// WithSuppressAnnounce returns a copy of the result with the final
// announcement suppressed.
func (r Result) WithSuppressAnnounce() Result {
	r.SuppressAnnounce = true
	return r
}

// WithPrefix returns a copy of the result with an announcement prefix.
func (r Result) WithPrefix(prefix string) Result {
	r.Prefix = prefix
	return r
}
