// Package app implements the application layer for aoc.
package app

import (
	"context"

	"go.trai.ch/aoc/internal/core/domain"
	"go.trai.ch/aoc/internal/core/ports"
	"go.trai.ch/zerr"
)

// App runs daily solutions against their cached puzzle inputs.
type App struct {
	cfg       *domain.Config
	locator   ports.SolutionLocator
	fetcher   ports.InputFetcher
	runner    ports.SolutionRunner
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	locator ports.SolutionLocator,
	fetcher ports.InputFetcher,
	runner ports.SolutionRunner,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		cfg:       cfg,
		locator:   locator,
		fetcher:   fetcher,
		runner:    runner,
		logger:    log,
		telemetry: telemetry,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Day selects the solution to run. The latest day_<N> directory is used when nil.
	Day *domain.Day
	// Release builds the solution with optimizations.
	Release bool
}

// FetchOptions configuration for the Fetch method.
type FetchOptions struct {
	// Day selects the input to fetch. The latest day_<N> directory is used when nil.
	Day *domain.Day
}

// Run resolves the day, fetches its input, and runs the day's solution with
// the input text as its only argument. The first failing stage aborts the run.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	day, err := a.resolveDay(ctx, opts.Day)
	if err != nil {
		return err
	}

	input, err := a.fetchInput(ctx, day)
	if err != nil {
		return err
	}

	manifest, err := a.locator.Manifest(a.cfg.SolutionsDir, day)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLocateSolutionFailed.Error()), "day", day.DirName())
	}

	runCtx, vertex := a.telemetry.Record(ctx, "run "+day.DirName())
	build := ports.BuildOptions{Release: opts.Release || a.cfg.Release}
	err = a.runner.Run(runCtx, manifest, []string{input}, build)
	vertex.Complete(err)
	if err != nil {
		return zerr.With(err, "day", day.DirName())
	}

	return nil
}

// Fetch resolves the day and returns its puzzle input.
func (a *App) Fetch(ctx context.Context, opts FetchOptions) (string, error) {
	day, err := a.resolveDay(ctx, opts.Day)
	if err != nil {
		return "", err
	}
	return a.fetchInput(ctx, day)
}

func (a *App) resolveDay(ctx context.Context, requested *domain.Day) (domain.Day, error) {
	if requested != nil {
		return *requested, nil
	}
	if a.cfg.RequireDay {
		return 0, domain.ErrDayRequired
	}

	_, vertex := a.telemetry.Record(ctx, "resolve day")
	day, err := a.locator.Latest(a.cfg.SolutionsDir)
	vertex.Complete(err)
	if err != nil {
		return 0, zerr.Wrap(err, domain.ErrResolveDayFailed.Error())
	}

	a.logger.Info("using latest solution " + day.DirName())
	return day, nil
}

func (a *App) fetchInput(ctx context.Context, day domain.Day) (string, error) {
	fetchCtx, vertex := a.telemetry.Record(ctx, "fetch input "+day.DirName())
	input, err := a.fetcher.Fetch(fetchCtx, a.cfg.InputDir, day)
	vertex.Complete(err)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFetchInputFailed.Error()), "day", day.DirName())
	}
	return input, nil
}
