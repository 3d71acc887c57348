// ============================================================================
// timespan - Signed durations with placeholder templates
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and its tools
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

// Version constants
const (
	// Library version of pkg/timespan
	Library = "1.0.0"

	// Tool versions
	CLI       = "1.0.0"
	Converter = "1.0.0"
)

// Build metadata, set with -ldflags "-X ...version.Commit=..."
var (
	Commit = "unknown"
	Date   = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cli", "timespan":
		return CLI
	case "converter", "tui":
		return Converter
	default:
		return Library
	}
}
