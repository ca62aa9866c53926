package minify

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/bindleio/bindle/internal/core/ports"
)

// NodeID is the Graft node providing the default compressor.
const NodeID graft.ID = "adapter.compressor"

func init() {
	graft.Register(graft.Node[ports.Compressor]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Compressor, error) {
			return New(Options{}), nil
		},
	})
}
