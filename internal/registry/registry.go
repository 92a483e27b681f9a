// Package registry holds the block layout patterns a level can be built from.
// Built-in patterns register themselves in init() functions; sessions take a
// Clone of the built-in set and append the layouts declared in their config.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Cell is a block position on the level grid.
type Cell struct {
	I int // Column
	J int // Row
}

// Pattern returns the grid cells that hold a block.
type Pattern func() []Cell

// Layout is a registered pattern with its pattern index.
type Layout struct {
	Index   int
	Name    string
	Pattern Pattern
}

// Registry maps pattern indices to layouts. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	layouts map[int]Layout
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{layouts: make(map[int]Layout)}
}

// Register adds a layout under an explicit pattern index.
// Panics if the index is negative or already taken.
func (r *Registry) Register(index int, name string, p Pattern) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 {
		panic(fmt.Sprintf("registry: negative pattern index %d for %q", index, name))
	}
	if existing, exists := r.layouts[index]; exists {
		panic(fmt.Sprintf("registry: pattern %d already registered as %q", index, existing.Name))
	}
	r.layouts[index] = Layout{Index: index, Name: name, Pattern: p}
}

// Add registers a layout under the next free pattern index and returns it.
func (r *Registry) Add(name string, p Pattern) int {
	r.mu.Lock()
	next := 0
	for idx := range r.layouts {
		if idx >= next {
			next = idx + 1
		}
	}
	r.mu.Unlock()

	r.Register(next, name, p)
	return next
}

// Lookup returns the layout registered under index.
func (r *Registry) Lookup(index int) (Layout, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.layouts[index]
	return l, ok
}

// List returns all layouts sorted by pattern index.
func (r *Registry) List() []Layout {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Layout, 0, len(r.layouts))
	for _, l := range r.layouts {
		result = append(result, l)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Index < result[j].Index
	})
	return result
}

// Len returns the number of registered layouts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.layouts)
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := New()
	for idx, l := range r.layouts {
		c.layouts[idx] = l
	}
	return c
}

var builtin = New()

// Register adds a built-in layout. Called from init() functions.
func Register(index int, name string, p Pattern) {
	builtin.Register(index, name, p)
}

// Builtin returns a copy of the built-in layouts.
func Builtin() *Registry {
	return builtin.Clone()
}
