package cargo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aoc/internal/adapters/config"
	"go.trai.ch/aoc/internal/adapters/logger"
	"go.trai.ch/aoc/internal/core/domain"
	"go.trai.ch/aoc/internal/core/ports"
)

// NodeID is the unique identifier for the solution runner Graft node.
const NodeID graft.ID = "adapter.cargo.runner"

func init() {
	graft.Register(graft.Node[ports.SolutionRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.SolutionRunner, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(cfg.Cargo, log), nil
		},
	})
}
