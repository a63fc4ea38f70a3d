// Package handler provides the handler interface and result types for
// command dispatch.
package handler

import (
	"github.com/auricle/auricle/internal/dispatcher/execctx"
)

// Handler executes the behavior of one or more command identifiers.
type Handler interface {
	// Handle executes the invocation and returns a result.
	Handle(inv *execctx.Invocation, ctx *execctx.Context) Result

	// CanHandle returns true if this handler covers the identifier.
	CanHandle(id string) bool
}

// Func adapts a function to the Handler interface.
type Func func(inv *execctx.Invocation, ctx *execctx.Context) Result

// Handle implements Handler.
func (f Func) Handle(inv *execctx.Invocation, ctx *execctx.Context) Result {
	if f == nil {
		return Fatalf("nil handler function")
	}
	return f(inv, ctx)
}

// CanHandle implements Handler. A bare Func covers whatever it is
// registered under; routing is the registry's job.
func (f Func) CanHandle(string) bool { return true }

// Group dispatches a family of related commands through a single
// id-keyed function table. Handler packages embed one and register
// their identifiers at construction.
type Group struct {
	name string
	fns  map[string]Func
}

// NewGroup creates an empty handler group.
func NewGroup(name string) *Group {
	return &Group{name: name, fns: make(map[string]Func)}
}

// Name returns the group name.
func (g *Group) Name() string { return g.name }

// Register adds a function for a command identifier.
func (g *Group) Register(id string, fn Func) {
	g.fns[id] = fn
}

// IDs returns the identifiers the group covers.
func (g *Group) IDs() []string {
	ids := make([]string, 0, len(g.fns))
	for id := range g.fns {
		ids = append(ids, id)
	}
	return ids
}

// CanHandle implements Handler.
func (g *Group) CanHandle(id string) bool {
	_, ok := g.fns[id]
	return ok
}

// Handle implements Handler.
func (g *Group) Handle(inv *execctx.Invocation, ctx *execctx.Context) Result {
	fn, ok := g.fns[inv.ID]
	if !ok {
		return Fatalf("group %s: no behavior for %s", g.name, inv.ID)
	}
	return fn(inv, ctx)
}
