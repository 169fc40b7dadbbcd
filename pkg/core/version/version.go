// ============================================================================
// presenty - fluent text presentation for Go
// ============================================================================
//
// Package:     version
// Description: Central version information for the library and the CLI
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Library version
	Library = "1.0.0"

	// CLI version
	CLI = "1.0.0"
)

// Build metadata, set with -ldflags "-X .../version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cli", "presenty":
		return CLI
	default:
		return Library
	}
}

// Info returns a one-line description of the build
func Info() string {
	return fmt.Sprintf("presenty %s (library %s, commit %s, built %s, %s)",
		CLI, Library, Commit, BuildDate, runtime.Version())
}
