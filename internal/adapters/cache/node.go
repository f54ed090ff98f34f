package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aoc/internal/adapters/aoc"
	"go.trai.ch/aoc/internal/adapters/logger"
	"go.trai.ch/aoc/internal/core/ports"
)

// NodeID is the unique identifier for the input fetcher Graft node.
const NodeID graft.ID = "adapter.input_fetcher"

func init() {
	graft.Register(graft.Node[ports.InputFetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{aoc.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.InputFetcher, error) {
			source, err := graft.Dep[ports.InputSource](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFetcher(source, log), nil
		},
	})
}
