package cache_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/aoc/internal/adapters/aoc"
	"go.trai.ch/aoc/internal/adapters/cache"
	"go.trai.ch/aoc/internal/core/domain"
	"go.trai.ch/aoc/internal/core/ports"
	"go.trai.ch/aoc/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeCache(t *testing.T, root string, day domain.Day, content []byte) string {
	t.Helper()
	path := filepath.Join(root, day.InputFileName())
	require.NoError(t, os.MkdirAll(root, domain.DirPerm))
	require.NoError(t, os.WriteFile(path, content, domain.FilePerm))
	return path
}

func TestFetcher_CacheHitIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No expectations: any Download call fails the test.
	source := mocks.NewMockInputSource(ctrl)
	log := mocks.NewMockLogger(ctrl)

	root := t.TempDir()
	writeCache(t, root, 7, []byte("abc\ndef\n"))

	fetcher := cache.NewFetcher(source, log)

	for range 2 {
		got, err := fetcher.Fetch(context.Background(), root, 7)
		require.NoError(t, err)
		assert.Equal(t, "abc\ndef\n", got)
	}
}

func TestFetcher_MissPersistsThenHits(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockInputSource(ctrl)
	log := mocks.NewMockLogger(ctrl)

	root := filepath.Join(t.TempDir(), "solutions", "input")

	source.EXPECT().Download(gomock.Any(), domain.Day(4)).Return("puzzle text", nil).Times(1)

	fetcher := cache.NewFetcher(source, log)

	got, err := fetcher.Fetch(context.Background(), root, 4)
	require.NoError(t, err)
	assert.Equal(t, "puzzle text", got)

	//nolint:gosec // Test file with controlled path
	content, err := os.ReadFile(filepath.Join(root, "day_4.txt"))
	require.NoError(t, err)
	assert.Equal(t, "puzzle text", string(content))

	got, err = fetcher.Fetch(context.Background(), root, 4)
	require.NoError(t, err)
	assert.Equal(t, "puzzle text", got)
}

func TestFetcher_MissingCredentialsSkipsNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	httpClient := &http.Client{Transport: roundTripFunc(func(_ *http.Request) (*http.Response, error) {
		panic("HTTP client should not be called without credentials")
	})}

	tests := []struct {
		name  string
		creds domain.Credentials
	}{
		{name: "no session", creds: domain.Credentials{UserAgent: "ua"}},
		{name: "no user agent", creds: domain.Credentials{SessionID: "id"}},
		{name: "neither", creds: domain.Credentials{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			source := aoc.NewClientWithHTTP("https://example.invalid/2023/day", tt.creds, httpClient)
			fetcher := cache.NewFetcher(source, log)

			_, err := fetcher.Fetch(context.Background(), root, 1)
			require.Error(t, err)
			require.ErrorIs(t, err, domain.ErrMissingCredentials)

			assert.NoFileExists(t, filepath.Join(root, "day_1.txt"))
		})
	}
}

func TestFetcher_NonSuccessLeavesNoFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	root := t.TempDir()
	creds := domain.Credentials{SessionID: "id", UserAgent: "ua"}
	fetcher := cache.NewFetcher(aoc.NewClientWithHTTP(server.URL, creds, server.Client()), log)

	_, err := fetcher.Fetch(context.Background(), root, 9)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInputRequestFailed.Error())

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetcher_InvalidCacheEncodingIsRefetched(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockInputSource(ctrl)
	log := mocks.NewMockLogger(ctrl)

	root := t.TempDir()
	path := writeCache(t, root, 2, []byte{0xff, 0x00, 0xfe})

	log.EXPECT().Warn(gomock.Any()).Times(1)
	source.EXPECT().Download(gomock.Any(), domain.Day(2)).Return("fresh", nil)

	got, err := cache.NewFetcher(source, log).Fetch(context.Background(), root, 2)
	require.NoError(t, err)
	assert.Equal(t, "fresh", got)

	//nolint:gosec // Test file with controlled path
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(content))
}

func TestFetcher_PersistFailureStillReturnsInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockInputSource(ctrl)
	log := mocks.NewMockLogger(ctrl)

	// A regular file where the cache directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "input")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), domain.FilePerm))

	source.EXPECT().Download(gomock.Any(), domain.Day(11)).Return("text", nil)
	// One warning for the unreadable cache path, one for the failed write.
	log.EXPECT().Warn(gomock.Any()).Times(2)

	got, err := cache.NewFetcher(source, log).Fetch(context.Background(), blocker, 11)
	require.NoError(t, err)
	assert.Equal(t, "text", got)
}

func TestFetcher_MarksVertexCachedOnHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockInputSource(ctrl)
	log := mocks.NewMockLogger(ctrl)
	vertex := mocks.NewMockVertex(ctrl)

	root := t.TempDir()
	writeCache(t, root, 3, []byte("cached"))

	vertex.EXPECT().Cached().Times(1)

	ctx := ports.ContextWithVertex(context.Background(), vertex)
	got, err := cache.NewFetcher(source, log).Fetch(ctx, root, 3)
	require.NoError(t, err)
	assert.Equal(t, "cached", got)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
