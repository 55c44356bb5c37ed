package config

import (
	"slices"
	"sync"

	"github.com/andriiyaremenko/flow"
)

// Registry maps names to units. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	units   map[string]flow.Unit
	entries map[string]flow.EntryUnit
}

// NewRegistry returns an empty unit registry.
func NewRegistry() *Registry {
	return &Registry{
		units:   make(map[string]flow.Unit),
		entries: make(map[string]flow.EntryUnit),
	}
}

// Register adds a unit used by then and finally steps.
// Overwrites any existing registration.
func (r *Registry) Register(name string, unit flow.Unit) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.units == nil {
		r.units = make(map[string]flow.Unit)
	}

	r.units[name] = unit

	return r
}

// RegisterEntry adds a unit used by sequential and parallel steps.
// Overwrites any existing registration.
func (r *Registry) RegisterEntry(name string, unit flow.EntryUnit) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]flow.EntryUnit)
	}

	r.entries[name] = unit

	return r
}

// Unit returns the unit registered under name.
func (r *Registry) Unit(name string) (flow.Unit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	unit, ok := r.units[name]

	return unit, ok
}

// EntryUnit returns the entry unit registered under name.
func (r *Registry) EntryUnit(name string) (flow.EntryUnit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	unit, ok := r.entries[name]

	return unit, ok
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.units)+len(r.entries))
	for name := range r.units {
		names = append(names, name)
	}

	for name := range r.entries {
		names = append(names, name)
	}

	slices.Sort(names)

	return slices.Compact(names)
}
