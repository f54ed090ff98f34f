package domain

import "fmt"

// Config is the resolved runtime configuration.
type Config struct {
	// Year is the event year, used to derive BaseURL when it is not set explicitly.
	Year int
	// BaseURL is the prefix of input URLs; the day and "/input" are appended to it.
	BaseURL string
	// SolutionsDir is the directory containing one day_<N> project per day.
	SolutionsDir string
	// InputDir is the directory holding cached day_<N>.txt inputs.
	InputDir string
	// Cargo is the build tool binary.
	Cargo string
	// Release builds solutions with optimizations.
	Release bool
	// RequireDay rejects invocations without an explicit day argument.
	RequireDay bool
	// Progress prints a summary of the recorded stages when a command finishes.
	Progress bool
	// Credentials authenticate input downloads.
	Credentials Credentials
}

// BaseURLForYear returns the input URL prefix for the given event year.
func BaseURLForYear(year int) string {
	return fmt.Sprintf("https://adventofcode.com/%d/day", year)
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Year:         DefaultYear,
		BaseURL:      BaseURLForYear(DefaultYear),
		SolutionsDir: DefaultSolutionsPath(),
		InputDir:     DefaultInputPath(),
		Cargo:        DefaultCargoBinary,
		Progress:     true,
	}
}
