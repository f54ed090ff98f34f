// Package config provides the configuration loader for aoc.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/aoc/internal/core/domain"
	"go.trai.ch/aoc/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using an optional YAML file and the environment.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads aoc.yaml from cwd when present, falls back to defaults otherwise,
// and reads credentials from the environment. Credentials are not validated here;
// they are only required when an input has to be downloaded.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(cwd, domain.ConfigFileName)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the working directory
	switch {
	case err == nil:
		if err := l.apply(cfg, data); err != nil {
			return nil, zerr.With(err, "path", path)
		}
	case errors.Is(err, fs.ErrNotExist):
		// No config file: defaults apply.
	default:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	cfg.SolutionsDir = resolvePath(cwd, cfg.SolutionsDir)
	cfg.InputDir = resolvePath(cwd, cfg.InputDir)

	cfg.Credentials = domain.Credentials{
		SessionID: os.Getenv(domain.SessionIDEnvVar),
		UserAgent: os.Getenv(domain.UserAgentEnvVar),
	}

	return cfg, nil
}

func (l *Loader) apply(cfg *domain.Config, data []byte) error {
	var file Aocfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	if file.Year < 0 {
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, fmt.Sprintf("invalid year %d", file.Year)), "year", file.Year)
	}
	if file.Year != 0 {
		cfg.Year = file.Year
		cfg.BaseURL = domain.BaseURLForYear(file.Year)
	}
	if file.BaseURL != "" {
		if file.Year != 0 && l.Logger != nil {
			l.Logger.Warn(fmt.Sprintf("base_url %q overrides year %d", file.BaseURL, file.Year))
		}
		cfg.BaseURL = file.BaseURL
	}
	if file.SolutionsDir != "" {
		cfg.SolutionsDir = file.SolutionsDir
		// The input cache follows the solutions root unless set explicitly.
		cfg.InputDir = filepath.Join(file.SolutionsDir, domain.InputDirName)
	}
	if file.InputDir != "" {
		cfg.InputDir = file.InputDir
	}
	if file.Cargo != "" {
		cfg.Cargo = file.Cargo
	}
	cfg.Release = file.Release
	cfg.RequireDay = file.RequireDay
	if file.Progress != nil {
		cfg.Progress = *file.Progress
	}

	return nil
}

func resolvePath(cwd, path string) string {
	if filepath.IsAbs(path) || cwd == "" || cwd == "." {
		return filepath.Clean(path)
	}
	return filepath.Join(cwd, path)
}
