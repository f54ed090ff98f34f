package domain

import "go.trai.ch/zerr"

// Configuration errors.
var (
	// ErrMissingCredentials is returned when a download is needed but credentials are not configured.
	ErrMissingCredentials = zerr.New("missing credentials")

	// ErrMissingSessionID is returned when the session cookie value is not set.
	ErrMissingSessionID = zerr.New("session id is not set")

	// ErrMissingUserAgent is returned when the user agent is not set.
	ErrMissingUserAgent = zerr.New("user agent is not set")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)

// Input errors.
var (
	// ErrInvalidDay is returned when a day argument is not an unsigned integer.
	ErrInvalidDay = zerr.New("invalid day")

	// ErrDayRequired is returned when no day is given and the configuration requires one.
	ErrDayRequired = zerr.New("day number is required as argument")
)

// Filesystem errors.
var (
	// ErrCacheReadFailed is returned when a cached input cannot be used.
	ErrCacheReadFailed = zerr.New("failed to read cached input")

	// ErrCacheInvalidEncoding is returned when a cached input is not valid UTF-8.
	ErrCacheInvalidEncoding = zerr.New("cached input is not valid utf-8")

	// ErrCacheWriteFailed is returned when a downloaded input cannot be persisted.
	ErrCacheWriteFailed = zerr.New("failed to write cached input")

	// ErrSolutionsListFailed is returned when the solutions root cannot be listed.
	ErrSolutionsListFailed = zerr.New("failed to list solutions directory")

	// ErrManifestNotFound is returned when a day's solution project has no manifest.
	ErrManifestNotFound = zerr.New("solution manifest not found")
)

// Network errors.
var (
	// ErrInputRequestFailed is returned when the input download fails or returns a non-success status.
	ErrInputRequestFailed = zerr.New("input request failed")

	// ErrInputInvalidEncoding is returned when a downloaded input is not valid UTF-8.
	ErrInputInvalidEncoding = zerr.New("input response is not valid utf-8")
)

// Resolution errors.
var (
	// ErrNoSolutionsFound is returned when the solutions root has no day_<N> directory.
	ErrNoSolutionsFound = zerr.New("no solutions found")
)

// Stage errors.
var (
	// ErrResolveDayFailed is returned when the day to run cannot be determined.
	ErrResolveDayFailed = zerr.New("failed to resolve day")

	// ErrFetchInputFailed is returned when the input for a day cannot be obtained.
	ErrFetchInputFailed = zerr.New("failed to fetch input")

	// ErrLocateSolutionFailed is returned when the solution project for a day cannot be found.
	ErrLocateSolutionFailed = zerr.New("failed to locate solution")
)

// Delegated errors.
var (
	// ErrSolutionRunFailed is returned when building or running a solution fails.
	ErrSolutionRunFailed = zerr.New("solution run failed")
)
