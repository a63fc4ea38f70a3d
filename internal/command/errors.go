package command

import "errors"

// Registry errors.
var (
	// ErrUnknownCommand indicates an identifier absent from the registry.
	// This is fatal: the invocation must be aborted.
	ErrUnknownCommand = errors.New("command: unknown command")

	// ErrDuplicateCommand indicates the same identifier appears twice in
	// a table being built.
	ErrDuplicateCommand = errors.New("command: duplicate command")

	// ErrEmptyID indicates a table entry with no identifier.
	ErrEmptyID = errors.New("command: empty command id")

	// ErrConflictingDirection indicates a descriptor marked both forward
	// and backward.
	ErrConflictingDirection = errors.New("command: conflicting direction flags")
)
