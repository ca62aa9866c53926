package cache

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/bindleio/bindle/internal/core/ports"
)

// NodeID is the Graft node providing the default cache backend.
const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.Cache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Cache, error) {
			return NewMemory(), nil
		},
	})
}
