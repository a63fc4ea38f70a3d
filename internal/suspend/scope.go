// Package suspend provides the event-suspension scope used to keep the
// engine's own DOM mutations from re-triggering its event listeners.
package suspend

// Scope is a balanced enter/exit bracket around command execution.
// While the scope is held (depth > 0), document mutation listeners must
// treat incoming events as self-inflicted and ignore them.
//
// All access happens on the single UI thread; no locking.
type Scope struct {
	depth int
}

// NewScope creates a scope with zero depth.
func NewScope() *Scope {
	return &Scope{}
}

// Enter increments the suspension depth.
func (s *Scope) Enter() {
	s.depth++
}

// Exit decrements the suspension depth. Exiting a scope that was never
// entered is a programming error: enter/exit calls must be lexically
// paired around every execution path.
func (s *Scope) Exit() {
	if s.depth == 0 {
		panic("suspend: unbalanced Exit")
	}
	s.depth--
}

// Active reports whether any suspension bracket is currently open.
func (s *Scope) Active() bool {
	return s.depth > 0
}

// Depth returns the current nesting depth.
func (s *Scope) Depth() int {
	return s.depth
}
