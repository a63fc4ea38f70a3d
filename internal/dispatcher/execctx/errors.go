package execctx

import "errors"

// Context validation errors.
var (
	// ErrMissingNavigator indicates the navigator is required but not set.
	ErrMissingNavigator = errors.New("execution context: navigator is required")

	// ErrMissingSpeech indicates the speech collaborator is required but not set.
	ErrMissingSpeech = errors.New("execution context: speech is required")

	// ErrMissingSuspension indicates the suspension scope is not set.
	ErrMissingSuspension = errors.New("execution context: suspension scope is required")

	// ErrMissingPage indicates a page-touching command ran with no page.
	ErrMissingPage = errors.New("execution context: page is required")
)
