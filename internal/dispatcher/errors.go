package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrUndefinedBehavior indicates a command resolved to a descriptor
	// but no handler is registered for it. This is a programming error,
	// not a user-recoverable condition.
	ErrUndefinedBehavior = errors.New("dispatcher: command has no registered behavior")

	// ErrHandlerPanic indicates a handler panicked during execution.
	ErrHandlerPanic = errors.New("dispatcher: handler panic")

	// ErrNoDelegator indicates a delegation reply arrived but no
	// delegator is configured.
	ErrNoDelegator = errors.New("dispatcher: no delegator configured")
)
