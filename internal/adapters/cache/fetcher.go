// Package cache implements the InputFetcher port on top of a flat file per day.
package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"go.trai.ch/aoc/internal/core/domain"
	"go.trai.ch/aoc/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputFetcher = (*Fetcher)(nil)

// Fetcher returns cached inputs and downloads missing ones from an InputSource.
// A cache file, once written, is never revalidated.
type Fetcher struct {
	source ports.InputSource
	logger ports.Logger
}

// NewFetcher creates a Fetcher that falls back to source on a cache miss.
func NewFetcher(source ports.InputSource, logger ports.Logger) *Fetcher {
	return &Fetcher{
		source: source,
		logger: logger,
	}
}

// Fetch returns the input for day from <cacheRoot>/day_<N>.txt, downloading and
// persisting it when the file is missing or unusable.
func (f *Fetcher) Fetch(ctx context.Context, cacheRoot string, day domain.Day) (string, error) {
	path := filepath.Join(cacheRoot, day.InputFileName())

	input, err := readCached(path)
	if err == nil {
		if v, ok := ports.VertexFromContext(ctx); ok {
			v.Cached()
		}
		return input, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		f.logger.Warn(fmt.Sprintf("ignoring cached input %s: %v", path, err))
	}

	input, err = f.source.Download(ctx, day)
	if err != nil {
		return "", err
	}

	// The text is still usable when it cannot be persisted.
	if err := atomicWriteFile(path, []byte(input)); err != nil {
		f.logger.Warn(fmt.Sprintf("failed to cache input for day %s: %v",
			day, zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)))
	}

	return input, nil
}

func readCached(path string) (string, error) {
	//nolint:gosec // Path is built from the configured cache root and a numeric day
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		return "", zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}
	if !utf8.Valid(data) {
		return "", zerr.With(zerr.Wrap(domain.ErrCacheInvalidEncoding, domain.ErrCacheReadFailed.Error()), "path", path)
	}
	return string(data), nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp file and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "input-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
