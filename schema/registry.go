package schema

import (
	"sort"
	"sync"

	"github.com/syssam/strata"
)

// Factory constructs a fresh, unbound behavior instance.
type Factory func() Behavior

// Registry maps behavior names to factories. Resolution happens during
// AddBehaviorNamed; unknown names fail eagerly with an
// UnknownBehaviorError. A registry is safe for concurrent reads, so one
// instance may be shared across independent compilations.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register registers a factory under the given name. It panics if the
// factory is nil or the name is taken, mirroring database/sql driver
// registration: behaviors register once at startup.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f == nil {
		panic("strata: Register behavior factory is nil")
	}
	if _, dup := r.factories[name]; dup {
		panic("strata: Register called twice for behavior " + name)
	}
	r.factories[name] = f
}

// Lookup returns the factory registered under the name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

// Names returns the registered behavior names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New resolves the name and returns a fresh instance stamped with it.
func (r *Registry) New(name string) (Behavior, error) {
	f, ok := r.Lookup(name)
	if !ok {
		return nil, strata.NewUnknownBehaviorError(name, r.Names()...)
	}
	b := f()
	b.SetName(name)
	return b, nil
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used when neither the
// database nor its schema carries one.
func DefaultRegistry() *Registry { return defaultRegistry }

// Register registers a behavior factory in the default registry.
// Behavior packages call it from init, the database/sql driver way:
//
//	func init() {
//	    schema.Register("timestampable", func() schema.Behavior { return &Timestampable{} })
//	}
func Register(name string, f Factory) { defaultRegistry.Register(name, f) }
