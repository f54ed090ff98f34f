// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/aoc/internal/core/domain"
)

// InputFetcher returns the puzzle input for a day, preferring a local cached copy.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type InputFetcher interface {
	// Fetch returns the input for day, reading <cacheRoot>/day_<N>.txt when present
	// and downloading (then persisting) it otherwise.
	Fetch(ctx context.Context, cacheRoot string, day domain.Day) (string, error)
}

// InputSource downloads puzzle inputs from the remote site.
type InputSource interface {
	// Download performs a single request for the day's input and returns its text.
	// It must not touch the network when credentials are missing.
	Download(ctx context.Context, day domain.Day) (string, error)
}
