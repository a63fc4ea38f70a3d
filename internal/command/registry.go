package command

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps command identifiers to descriptors. The mapping is
// immutable between builds; Reload swaps the whole map atomically so
// readers never observe a partially applied table.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]Descriptor
}

// NewRegistry builds a registry from a descriptor table.
func NewRegistry(table []Descriptor) (*Registry, error) {
	m, err := buildMap(table)
	if err != nil {
		return nil, err
	}
	return &Registry{descriptors: m}, nil
}

// NewDefaultRegistry builds a registry from the builtin command table.
func NewDefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinTable())
	if err != nil {
		// The builtin table is validated by tests; a build error here is
		// a programming error in the table itself.
		panic(err)
	}
	return r
}

func buildMap(table []Descriptor) (map[string]Descriptor, error) {
	m := make(map[string]Descriptor, len(table))
	for _, d := range table {
		if d.ID == "" {
			return nil, ErrEmptyID
		}
		if d.Forward && d.Backward {
			return nil, fmt.Errorf("%w: %s", ErrConflictingDirection, d.ID)
		}
		if _, ok := m[d.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCommand, d.ID)
		}
		if d.Platform == 0 {
			d.Platform = PlatformAll
		}
		m[d.ID] = d
	}
	return m, nil
}

// Resolve returns the descriptor for an identifier. An absent identifier
// is an ErrUnknownCommand, which callers must treat as fatal for the
// invocation.
func (r *Registry) Resolve(id string) (Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.descriptors[id]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownCommand, id)
	}
	return d, nil
}

// Has reports whether an identifier is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.descriptors[id]
	return ok
}

// List returns all registered identifiers, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.descriptors))
	for id := range r.descriptors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of registered commands.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.descriptors)
}

// Reload replaces the registry contents with a new table.
func (r *Registry) Reload(table []Descriptor) error {
	m, err := buildMap(table)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.descriptors = m
	r.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the current table, sorted by identifier.
func (r *Registry) Snapshot() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table := make([]Descriptor, 0, len(r.descriptors))
	for _, d := range r.descriptors {
		table = append(table, d)
	}
	sort.Slice(table, func(i, j int) bool { return table[i].ID < table[j].ID })
	return table
}
