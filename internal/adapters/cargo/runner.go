// Package cargo implements the SolutionRunner port by delegating to the cargo CLI.
package cargo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"go.trai.ch/aoc/internal/core/domain"
	"go.trai.ch/aoc/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SolutionRunner = (*Runner)(nil)

// Runner builds and runs a solution with `cargo run`.
type Runner struct {
	binary string
	stdout io.Writer
	stderr io.Writer
	logger ports.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput redirects the child's standard streams.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// NewRunner creates a Runner invoking binary. An empty binary means "cargo".
func NewRunner(binary string, logger ports.Logger, opts ...Option) *Runner {
	if binary == "" {
		binary = domain.DefaultCargoBinary
	}
	r := &Runner{
		binary: binary,
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run compiles the project at manifestPath and executes it with args.
// The child's stdout and stderr are forwarded, and also teed into the
// telemetry vertex carried by ctx when there is one.
func (r *Runner) Run(ctx context.Context, manifestPath string, args []string, opts ports.BuildOptions) error {
	cmdArgs := commandArgs(manifestPath, args, opts)

	//nolint:gosec // binary and manifest come from local configuration
	cmd := exec.CommandContext(ctx, r.binary, cmdArgs...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	if v, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stdout = io.MultiWriter(r.stdout, v.Stdout())
		cmd.Stderr = io.MultiWriter(r.stderr, v.Stderr())
	}

	r.logger.Info(fmt.Sprintf("running %s", manifestPath))

	if err := cmd.Run(); err != nil {
		// Capture exit code if possible
		var exitCode int
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1 // Unknown or signal
		}

		runErr := zerr.With(zerr.Wrap(err, domain.ErrSolutionRunFailed.Error()), "exit_code", exitCode)
		return zerr.With(runErr, "manifest", manifestPath)
	}

	return nil
}

func commandArgs(manifestPath string, args []string, opts ports.BuildOptions) []string {
	cmdArgs := []string{"run", "--manifest-path", manifestPath}
	if opts.Release {
		cmdArgs = append(cmdArgs, "--release")
	}
	cmdArgs = append(cmdArgs, "--")
	return append(cmdArgs, args...)
}
