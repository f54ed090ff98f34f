package cargo_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/aoc/internal/adapters/cargo"
	"go.trai.ch/aoc/internal/core/domain"
	"go.trai.ch/aoc/internal/core/ports"
	"go.trai.ch/aoc/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// fakeCargo writes an executable script standing in for cargo and returns its path.
func fakeCargo(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "cargo")
	//nolint:gosec // Test script must be executable
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

const printArgs = `for a in "$@"; do printf '[%s]\n' "$a"; done`

func TestRunner_Run_ForwardsArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	var stdout bytes.Buffer
	runner := cargo.NewRunner(fakeCargo(t, printArgs), log, cargo.WithOutput(&stdout, io.Discard))

	err := runner.Run(context.Background(), "solutions/day_5/Cargo.toml", []string{"1,2,3\n4,5"}, ports.BuildOptions{})
	require.NoError(t, err)

	assert.Equal(t,
		"[run]\n[--manifest-path]\n[solutions/day_5/Cargo.toml]\n[--]\n[1,2,3\n4,5]\n",
		stdout.String())
}

func TestRunner_Run_Release(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	var stdout bytes.Buffer
	runner := cargo.NewRunner(fakeCargo(t, printArgs), log, cargo.WithOutput(&stdout, io.Discard))

	opts := ports.BuildOptions{Release: true}
	require.NoError(t, runner.Run(context.Background(), "Cargo.toml", []string{"x"}, opts))
	assert.Equal(t, "[run]\n[--manifest-path]\n[Cargo.toml]\n[--release]\n[--]\n[x]\n", stdout.String())
}

func TestRunner_Run_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	var stderr bytes.Buffer
	runner := cargo.NewRunner(fakeCargo(t, "echo 'error: could not compile' >&2; exit 101"), log,
		cargo.WithOutput(io.Discard, &stderr))

	err := runner.Run(context.Background(), "Cargo.toml", []string{"input"}, ports.BuildOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrSolutionRunFailed.Error())
	assert.Contains(t, stderr.String(), "could not compile")
}

func TestRunner_Run_MissingBinary(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	missing := filepath.Join(t.TempDir(), "no-such-cargo")
	runner := cargo.NewRunner(missing, log, cargo.WithOutput(io.Discard, io.Discard))

	err := runner.Run(context.Background(), "Cargo.toml", nil, ports.BuildOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrSolutionRunFailed.Error())
}

func TestRunner_Run_TeesIntoVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	var vertexOut, vertexErr bytes.Buffer
	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Stdout().Return(&vertexOut)
	vertex.EXPECT().Stderr().Return(&vertexErr)

	var stdout bytes.Buffer
	runner := cargo.NewRunner(fakeCargo(t, "echo answer; echo warn >&2"), log,
		cargo.WithOutput(&stdout, io.Discard))

	ctx := ports.ContextWithVertex(context.Background(), vertex)
	require.NoError(t, runner.Run(ctx, "Cargo.toml", nil, ports.BuildOptions{}))

	assert.Equal(t, "answer\n", stdout.String())
	assert.Equal(t, "answer\n", vertexOut.String())
	assert.Equal(t, "warn\n", vertexErr.String())
}

func TestNewRunner_DefaultBinary(t *testing.T) {
	ctrl := gomock.NewController(t)
	assert.NotNil(t, cargo.NewRunner("", mocks.NewMockLogger(ctrl)))
}
