// Package log provides structured logging for the timespan module.
//
// Package: log
// Title: Structured Logging
// Description: This package implements a small structured logger with levels,
//              contextual fields, correlation ids and JSON, text, console and
//              logfmt output. It understands the structured error type and logs
//              such errors at a level derived from their severity.
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
//	import mdwlog "github.com/msto63/timespan/foundation/core/log"
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelDebug,
//		Format: mdwlog.FormatLogfmt,
//		Name:   "timespan",
//	}).WithCorrelationID(uuid.NewString())
//
//	logger.Debug("template compiled", mdwlog.Field("template", "%h:%i:%s"))
//
//	timer := logger.StartTimer("parse")
//	// ... work
//	timer.Stop()
package log
