package telemetry_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	"go.trai.ch/aoc/internal/adapters/telemetry"
	"go.trai.ch/aoc/internal/core/ports"
	"go.trai.ch/aoc/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// captureWriter keeps the latest state of every vertex it sees.
type captureWriter struct {
	mu       sync.Mutex
	vertices map[string]*progrock.Vertex
	logs     []string
	closed   bool
}

func newCaptureWriter() *captureWriter {
	return &captureWriter{vertices: make(map[string]*progrock.Vertex)}
}

func (w *captureWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, v := range update.Vertexes {
		w.vertices[v.Name] = v
	}
	for _, l := range update.Logs {
		w.logs = append(w.logs, string(l.Data))
	}
	return nil
}

func (w *captureWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func (w *captureWriter) vertex(name string) *progrock.Vertex {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.vertices[name]
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	for _, progress := range []bool{true, false} {
		recorder := telemetry.New(mocks.NewMockLogger(ctrl), progress)
		require.NotNil(t, recorder)
		assert.NoError(t, recorder.Close())
	}
}

func TestNew_ProgressLogsSummaryOnClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		log.EXPECT().Info("✓ resolve day"),
		log.EXPECT().Info("✓ fetch input day_5 (cached)"),
		log.EXPECT().Info("✗ run day_5"),
	)

	recorder := telemetry.New(log, true)
	ctx := context.Background()

	_, resolve := recorder.Record(ctx, "resolve day")
	resolve.Complete(nil)

	_, fetch := recorder.Record(ctx, "fetch input day_5")
	fetch.Cached()
	fetch.Complete(nil)

	_, run := recorder.Record(ctx, "run day_5")
	run.Complete(errors.New("exit status 101"))

	require.NoError(t, recorder.Close())
}

func TestNew_ProgressDisabledLogsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	recorder := telemetry.New(log, false)
	_, vertex := recorder.Record(context.Background(), "run day_5")
	vertex.Complete(nil)

	require.NoError(t, recorder.Close())
}

func TestSummary_Canceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("! fetch input day_5 (canceled)")

	recorder := telemetry.NewRecorder(telemetry.NewSummary(log))
	_, vertex := recorder.Record(context.Background(), "fetch input day_5")
	vertex.Complete(context.Canceled)

	require.NoError(t, recorder.Close())
}

func TestSummary_Interrupted(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("! run day_5 (interrupted)")

	recorder := telemetry.NewRecorder(telemetry.NewSummary(log))
	_, _ = recorder.Record(context.Background(), "run day_5")

	require.NoError(t, recorder.Close())
}

func TestRecorder_RecordPutsVertexInContext(t *testing.T) {
	recorder := telemetry.NewRecorder(newCaptureWriter())

	ctx, vertex := recorder.Record(context.Background(), "resolve day")

	got, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, got)
}

func TestRecorder_CompleteSuccess(t *testing.T) {
	w := newCaptureWriter()
	recorder := telemetry.NewRecorder(w)

	_, vertex := recorder.Record(context.Background(), "run day_5")
	vertex.Complete(nil)

	v := w.vertex("run day_5")
	require.NotNil(t, v)
	assert.NotNil(t, v.Completed)
	assert.Nil(t, v.Error)
}

func TestRecorder_CompleteFailure(t *testing.T) {
	w := newCaptureWriter()
	recorder := telemetry.NewRecorder(w)

	_, vertex := recorder.Record(context.Background(), "run day_5")
	vertex.Complete(errors.New("exit status 101"))

	v := w.vertex("run day_5")
	require.NotNil(t, v)
	require.NotNil(t, v.Error)
	assert.Equal(t, "exit status 101", *v.Error)
}

func TestRecorder_Cached(t *testing.T) {
	w := newCaptureWriter()
	recorder := telemetry.NewRecorder(w)

	_, vertex := recorder.Record(context.Background(), "fetch input day_5")
	vertex.Cached()
	vertex.Complete(nil)

	v := w.vertex("fetch input day_5")
	require.NotNil(t, v)
	assert.True(t, v.Cached)
}

func TestRecorder_StdoutIsRecorded(t *testing.T) {
	w := newCaptureWriter()
	recorder := telemetry.NewRecorder(w)

	_, vertex := recorder.Record(context.Background(), "run day_5")
	_, err := vertex.Stdout().Write([]byte("part 1: 42\n"))
	require.NoError(t, err)
	vertex.Complete(nil)

	assert.Contains(t, w.logs, "part 1: 42\n")
}

func TestRecorder_CloseClosesWriter(t *testing.T) {
	w := newCaptureWriter()
	recorder := telemetry.NewRecorder(w)

	require.NoError(t, recorder.Close())
	assert.True(t, w.closed)
}
