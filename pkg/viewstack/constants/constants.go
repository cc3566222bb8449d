// Package constants defines shared constants and environment switches
// used throughout the viewstack packages.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// DebugEnvVar forces debug level logging when set to any non-empty value.
const DebugEnvVar = "VIEWSTACK_DEBUG"

// LogLevelEnvVar overrides the configured log level ("debug", "info", "warn", "error").
const LogLevelEnvVar = "VIEWSTACK_LOG_LEVEL"

// DefaultLogFilename is the log file written in the working directory when
// file logging is enabled without a path.
const DefaultLogFilename = "viewstack.log"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Render order assignment for views without a fixed order.
// The topmost auto-ordered view receives OrderBase + (n-2)*OrderStep and
// each view below it OrderStep less, leaving room for fixed-order views
// to interleave.
const (
	OrderBase = 1000
	OrderStep = 500
)
