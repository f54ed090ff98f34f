package aoc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aoc/internal/adapters/config"
	"go.trai.ch/aoc/internal/core/domain"
	"go.trai.ch/aoc/internal/core/ports"
)

// NodeID is the unique identifier for the input source Graft node.
const NodeID graft.ID = "adapter.aoc.client"

func init() {
	graft.Register(graft.Node[ports.InputSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.InputSource, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(cfg.BaseURL, cfg.Credentials), nil
		},
	})
}
