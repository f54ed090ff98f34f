package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aoc/internal/core/ports"
)

// LocatorNodeID is the unique identifier for the solution locator Graft node.
const LocatorNodeID graft.ID = "adapter.fs.locator"

func init() {
	graft.Register(graft.Node[ports.SolutionLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SolutionLocator, error) {
			return NewLocator(), nil
		},
	})
}
