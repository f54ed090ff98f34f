package domain

import "path/filepath"

const (
	// SolutionsDirName is the name of the directory holding per-day solution projects.
	SolutionsDirName = "solutions"

	// InputDirName is the name of the input cache directory inside the solutions root.
	InputDirName = "input"

	// ManifestFileName is the name of a solution project's build manifest.
	ManifestFileName = "Cargo.toml"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "aoc.yaml"

	// DayPrefix is the literal prefix of solution directories and input files.
	DayPrefix = "day_"

	// InputFileExt is the extension of cached input files.
	InputFileExt = ".txt"

	// SessionIDEnvVar holds the session cookie value used to download inputs.
	SessionIDEnvVar = "AOC_SESSION_ID"

	// UserAgentEnvVar holds the User-Agent sent when downloading inputs.
	UserAgentEnvVar = "AOC_USER_AGENT"

	// DefaultYear is the event year used when none is configured.
	DefaultYear = 2023

	// DefaultCargoBinary is the build tool invoked when none is configured.
	DefaultCargoBinary = "cargo"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultSolutionsPath returns the default solutions root.
func DefaultSolutionsPath() string {
	return SolutionsDirName
}

// DefaultInputPath returns the default input cache directory.
// It joins solutions and input.
func DefaultInputPath() string {
	return filepath.Join(SolutionsDirName, InputDirName)
}
