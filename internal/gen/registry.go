package gen

import (
	"fmt"
	"log/slog"
	"sort"
)

// Module is the interface a generator package implements to be wired into
// the registry at startup.
type Module interface {
	Register(r *Registry)
}

// Registry maps target identifiers to generator constructors. Identifiers
// are case-sensitive and globally unique.
type Registry struct {
	constructors map[string]Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{constructors: make(map[string]Constructor)}
}

// Register adds a constructor under a target identifier. Registering the
// same identifier twice is a programmer error and panics.
func (r *Registry) Register(target string, fn Constructor) {
	if _, exists := r.constructors[target]; exists {
		panic(fmt.Sprintf("generator for target '%s' already registered", target))
	}
	slog.Debug("Registering generator.", "target", target)
	r.constructors[target] = fn
}

// Lookup resolves a target identifier to its constructor.
func (r *Registry) Lookup(target string) (Constructor, bool) {
	fn, ok := r.constructors[target]
	return fn, ok
}

// Keys returns all registered target identifiers, sorted, for argument
// validation and error messages.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.constructors))
	for key := range r.constructors {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
