// Package error provides structured error handling for the timespan module.
//
// Package: error
// Title: Structured Error Handling
// Description: This package implements errors with codes, severities, details and
//              stack traces. Parsing failures, invalid command line input and
//              configuration problems are all reported through this type so the
//              logger and the CLI can react on the code instead of the message.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Adapted for the timespan module
//
// Usage:
//
//	import mdwerror "github.com/msto63/timespan/foundation/core/error"
//
//	err := mdwerror.New("value does not match template").
//		WithCode(mdwerror.CodeInvalidFormat).
//		WithOperation("timespan.Parse").
//		WithDetail("format", "%h:%i:%s")
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
//		// report bad input
//	}
package error
