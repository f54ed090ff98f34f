package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aoc/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"go.trai.ch/aoc/internal/adapters/cargo"     //nolint:depguard // Wired in app layer
	"go.trai.ch/aoc/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/aoc/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/aoc/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/aoc/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/aoc/internal/core/domain"
	"go.trai.ch/aoc/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles what the entry point needs.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.LocatorNodeID,
			cache.NodeID,
			cargo.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	locator, err := graft.Dep[ports.SolutionLocator](ctx)
	if err != nil {
		return nil, err
	}

	fetcher, err := graft.Dep[ports.InputFetcher](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.SolutionRunner](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, locator, fetcher, runner, log, tel), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: tel,
	}, nil
}
