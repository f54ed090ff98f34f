// Package fs locates solution projects on the local filesystem.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"go.trai.ch/aoc/internal/core/domain"
	"go.trai.ch/aoc/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SolutionLocator = (*Locator)(nil)

var dayDirPattern = regexp.MustCompile(`^` + domain.DayPrefix + `([0-9]+)$`)

// Locator implements the SolutionLocator interface by scanning a solutions root.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Latest returns the numerically largest day among day_<N> subdirectories of root.
// Entries that are not directories, or whose digits overflow a Day, are ignored.
func (l *Locator) Latest(root string) (domain.Day, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrSolutionsListFailed.Error()), "root", root)
	}

	var (
		latest domain.Day
		found  bool
	)
	for _, entry := range entries {
		day, ok := parseDayDir(entry)
		if !ok {
			continue
		}
		if !found || day > latest {
			latest = day
			found = true
		}
	}

	if !found {
		return 0, zerr.With(zerr.Wrap(domain.ErrNoSolutionsFound, "no day_<N> directories"), "root", root)
	}
	return latest, nil
}

// Manifest returns the path to the day's Cargo.toml, failing if it does not exist.
func (l *Locator) Manifest(root string, day domain.Day) (string, error) {
	path := filepath.Join(root, day.DirName(), domain.ManifestFileName)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(domain.ErrManifestNotFound, day.DirName()), "path", path)
		}
		return "", zerr.With(zerr.Wrap(err, domain.ErrManifestNotFound.Error()), "path", path)
	}
	if info.IsDir() {
		return "", zerr.With(zerr.Wrap(domain.ErrManifestNotFound, "manifest is a directory"), "path", path)
	}

	return path, nil
}

func parseDayDir(entry fs.DirEntry) (domain.Day, bool) {
	if !entry.IsDir() {
		return 0, false
	}
	m := dayDirPattern.FindStringSubmatch(entry.Name())
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseUint(m[1], 10, 32)
	if err != nil {
		return 0, false
	}
	return domain.Day(n), true
}
