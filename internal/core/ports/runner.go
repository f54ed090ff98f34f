package ports

import "context"

// BuildOptions controls how a solution project is compiled.
type BuildOptions struct {
	// Release compiles with optimizations.
	Release bool
}

// SolutionRunner builds a solution project and executes it.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type SolutionRunner interface {
	// Run compiles the project at manifestPath and executes its output with args,
	// forwarding the child's standard streams.
	Run(ctx context.Context, manifestPath string, args []string, opts BuildOptions) error
}
