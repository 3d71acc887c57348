// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes raised by the timespan module and its
//              command line tools.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Narrowed the code set to parsing, input and configuration errors
// - 2026-10-19 v0.3.0: Codes only map to exit statuses

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Validation
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeInvalidTemplate Code = "INVALID_TEMPLATE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// ExitCode maps the error code to a process exit status for the CLI
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidInput, CodeInvalidFormat, CodeInvalidTemplate:
		return 2
	case CodeConfigError, CodeInvalidConfig, CodeNotFound:
		return 3
	default:
		return 1
	}
}
