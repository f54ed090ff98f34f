package ports

import "go.trai.ch/aoc/internal/core/domain"

// SolutionLocator finds per-day solution projects under a solutions root.
//
//go:generate go run go.uber.org/mock/mockgen -source=solutions.go -destination=mocks/mock_solutions.go -package=mocks
type SolutionLocator interface {
	// Latest returns the highest day with a day_<N> directory under root.
	Latest(root string) (domain.Day, error)

	// Manifest returns the path of the build manifest for the given day.
	Manifest(root string, day domain.Day) (string, error)
}
