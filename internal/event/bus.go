// Package event carries page events to the engine: focus changes, DOM
// mutations, and delegation replies. The bus is suspension-aware: DOM
// and focus events raised while a command is executing are the
// command's own echo and are dropped instead of delivered.
package event

import (
	"sync"

	"golang.org/x/net/html"

	"github.com/auricle/auricle/internal/suspend"
)

// Type identifies an event class.
type Type string

// Event types.
const (
	TypeFocus              Type = "focus"
	TypeDOMSubtreeModified Type = "domSubtreeModified"
	TypeCommandReply       Type = "commandReply"
)

// Event is one page event.
type Event struct {
	Type   Type
	Target *html.Node

	// Detail carries the JSON payload of a delegation reply.
	Detail string
}

// HandlerFunc consumes an event.
type HandlerFunc func(Event)

// Bus delivers events synchronously in publish order. Delivery of
// suppressible types is gated on the suspension scope.
type Bus struct {
	mu      sync.RWMutex
	scope   *suspend.Scope
	subs    map[Type][]HandlerFunc
	dropped uint64
}

// NewBus creates a bus gated on the given suspension scope. A nil
// scope disables suppression.
func NewBus(scope *suspend.Scope) *Bus {
	return &Bus{
		scope: scope,
		subs:  make(map[Type][]HandlerFunc),
	}
}

// Subscribe registers a handler for an event type.
func (b *Bus) Subscribe(t Type, fn HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[t] = append(b.subs[t], fn)
}

// Publish delivers an event to its subscribers. It reports whether the
// event was delivered; a suppressed echo returns false.
func (b *Bus) Publish(e Event) bool {
	if b.suppressed(e.Type) {
		b.mu.Lock()
		b.dropped++
		b.mu.Unlock()
		return false
	}

	b.mu.RLock()
	handlers := b.subs[e.Type]
	b.mu.RUnlock()

	for _, fn := range handlers {
		fn(e)
	}
	return true
}

// Dropped returns the number of suppressed events.
func (b *Bus) Dropped() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dropped
}

// suppressed reports whether an event of this type is the engine's own
// echo. Delegation replies always get through; the command that caused
// them is still inside its suspension scope waiting for the answer.
func (b *Bus) suppressed(t Type) bool {
	if b.scope == nil || t == TypeCommandReply {
		return false
	}
	return b.scope.Active()
}
