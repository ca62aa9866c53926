package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/bindleio/bindle/internal/adapters/cache"
	"github.com/bindleio/bindle/internal/adapters/logger"
	"github.com/bindleio/bindle/internal/adapters/minify"
	"github.com/bindleio/bindle/internal/core/ports"
)

// Components are the injected collaborators an App is assembled from.
type Components struct {
	Logger     ports.Logger
	Cache      ports.Cache
	Compressor ports.Compressor
}

// NodeID is the Graft node providing the assembled application components.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, cache.NodeID, minify.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.Cache](ctx)
			if err != nil {
				return nil, err
			}
			compressor, err := graft.Dep[ports.Compressor](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{Logger: log, Cache: store, Compressor: compressor}, nil
		},
	})
}
