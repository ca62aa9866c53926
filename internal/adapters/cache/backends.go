package cache

import (
	"go.trai.ch/zerr"

	"github.com/bindleio/bindle/internal/core/ports"
)

// ErrUnknownBackend is returned when a cache backend name has no registered
// constructor.
var ErrUnknownBackend = zerr.New("unknown cache backend")

// backends maps backend names to constructors. The host process registers
// additional backends at startup; there is no runtime discovery.
var backends = map[string]func() ports.Cache{
	"memory": func() ports.Cache { return NewMemory() },
	"lru":    func() ports.Cache { return NewLRU() },
}

// RegisterBackend makes a cache backend selectable by name.
func RegisterBackend(name string, constructor func() ports.Cache) {
	backends[name] = constructor
}

// NewBackend constructs the named backend; an empty name selects "memory".
func NewBackend(name string) (ports.Cache, error) {
	if name == "" {
		name = "memory"
	}
	constructor, ok := backends[name]
	if !ok {
		return nil, zerr.With(ErrUnknownBackend, "backend", name)
	}
	return constructor(), nil
}
