// Package constants provides shared constants for the blend-planner application.
package constants

// Solver defaults
const (
	// DefaultSolverBackend is the LP backend used when none is configured.
	DefaultSolverBackend = "simplex"

	// DefaultSolverTolerance is the feasibility/optimality tolerance handed to
	// the LP backend.
	DefaultSolverTolerance = 1e-7

	// VolumeCheckTolerance is how far the returned volumes may drift from the
	// requested total before a warning is logged.
	VolumeCheckTolerance = 1e-6
)

// ABV bounds; alcohol by volume is a fraction, not a percentage.
const (
	MinABV = 0.0
	MaxABV = 1.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatJSON is the machine-readable output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodyBytes is the default maximum request body size for blend
	// problems (256 KB)
	DefaultMaxBodyBytes int64 = 256 * 1024
)
