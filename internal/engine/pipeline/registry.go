// Package pipeline implements the cache-backed processing chain that turns
// resolved asset lists into final, deliverable asset references.
package pipeline

import (
	"sync"

	"github.com/bindleio/bindle/internal/core/ports"
)

// Registry maps location kinds to their wrappers. The host process registers
// its wrapper implementations at startup; the pipeline resolves them by kind
// at request time. Wrappers start inactive and are activated explicitly, so
// capabilities like the cdn rewrite only engage when the configuration
// requires them.
type Registry struct {
	mu       sync.RWMutex
	wrappers map[string]ports.LocationWrapper
	active   map[string]bool
}

// NewRegistry creates an empty wrapper registry.
func NewRegistry() *Registry {
	return &Registry{
		wrappers: make(map[string]ports.LocationWrapper),
		active:   make(map[string]bool),
	}
}

// Register adds a wrapper under its location key, replacing any previous
// registration. The wrapper starts inactive.
func (r *Registry) Register(w ports.LocationWrapper) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wrappers[w.LocationKey()] = w
}

// Activate enables the wrapper for the given kind. Unknown kinds are a no-op.
func (r *Registry) Activate(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.wrappers[kind]; ok {
		r.active[kind] = true
	}
}

// Deactivate disables the wrapper for the given kind.
func (r *Registry) Deactivate(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, kind)
}

// Active returns the wrapper for kind if one is registered and active.
func (r *Registry) Active(kind string) (ports.LocationWrapper, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.active[kind] {
		return nil, false
	}
	w, ok := r.wrappers[kind]
	return w, ok
}

// Lookup returns the wrapper for kind regardless of activation state.
func (r *Registry) Lookup(kind string) (ports.LocationWrapper, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wrappers[kind]
	return w, ok
}

// Registered reports whether any wrapper is registered for kind.
func (r *Registry) Registered(kind string) bool {
	_, ok := r.Lookup(kind)
	return ok
}
