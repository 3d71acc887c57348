// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so callers and the logger can
//              pick an appropriate reaction and log level.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Severity mapping for the reduced code set
// - 2026-10-19 v0.3.0: Removed the unused alert threshold

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad user input, e.g. a value that does not match a template
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error, e.g. an unreadable configuration
	SeverityHigh

	// SeverityCritical indicates an error that leaves the program unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeInvalidFormat, CodeInvalidTemplate, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
