// ============================================================================
// timespan - Signed durations with placeholder templates
// ============================================================================
//
// Package:     timespan
// Description: Parse failure type and its structured error form
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package timespan

import (
	"fmt"

	mdwerror "github.com/msto63/timespan/foundation/core/error"
)

// InvalidFormatError is returned when a value does not match a template,
// or when the template has no placeholder at all.
type InvalidFormatError struct {
	Value  string
	Format string

	cause *mdwerror.Error
}

func newInvalidFormatError(value, format string) *InvalidFormatError {
	e := &InvalidFormatError{Value: value, Format: format}
	e.cause = e.structured()
	return e
}

// Error implements the error interface
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid time string \"%s\" for format \"%s\"", e.Value, e.Format)
}

// Unwrap exposes the structured error carrying code INVALID_FORMAT
func (e *InvalidFormatError) Unwrap() error {
	if e.cause == nil {
		return e.structured()
	}
	return e.cause
}

func (e *InvalidFormatError) structured() *mdwerror.Error {
	return mdwerror.New(e.Error()).
		WithCode(mdwerror.CodeInvalidFormat).
		WithSeverity(mdwerror.SeverityLow).
		WithOperation("timespan.Parse").
		WithDetail("value", e.Value).
		WithDetail("format", e.Format)
}
