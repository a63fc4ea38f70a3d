package dispatcher

import (
	"sort"
	"sync"

	"github.com/auricle/auricle/internal/dispatcher/handler"
)

// Registry maps command identifiers to the behaviors that implement
// them. Exactly one handler may be registered per identifier; the
// table is flat so a reader can see at a glance which group owns a
// command.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]handler.Handler
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]handler.Handler),
	}
}

// Register binds a handler to a command identifier. A later
// registration for the same identifier replaces the earlier one.
func (r *Registry) Register(id string, h handler.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[id] = h
}

// RegisterGroup binds a handler group to every identifier it claims.
func (r *Registry) RegisterGroup(g *handler.Group) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range g.IDs() {
		r.handlers[id] = g
	}
}

// Unregister removes the handler for a command identifier.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, id)
}

// Get returns the handler for a command identifier, or nil if none is
// registered.
func (r *Registry) Get(id string) handler.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.handlers[id]
}

// Has returns true if a handler is registered for the identifier.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[id]
	return ok
}

// List returns all registered command identifiers, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.handlers))
	for id := range r.handlers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of registered identifiers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

// Clear removes all registered handlers.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers = make(map[string]handler.Handler)
}
