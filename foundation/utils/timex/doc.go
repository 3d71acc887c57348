// Package timex implements time utility functions for the timespan tools.
//
// Package: timex
// Title: Time Utilities
// Description: This package parses instants written in common layouts, resolves
//              relative expressions such as "+1 day +30 minutes" into signed
//              second counts, and formats durations for humans.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Reduced to parsing, relative expressions and formatting
//
// # Instant Parsing
//
// Parse tries RFC3339, ISO8601, business ("2006-01-02 15:04[:05]"), short,
// European ("02.01.2006") and compact layouts in order. "@<seconds>" reads a
// Unix timestamp. Values without zone information are UTC.
//
//	start, _ := timex.Parse("2015-01-01 23:00")
//	end, _ := timex.Parse("2015-01-03 02:00")
//	ts := timespan.FromInstantDiff(start, end) // 27:00:00
//
// # Relative Expressions
//
// ResolveSeconds accepts a sequence of signed terms. Units are second, minute,
// hour, day, week, month (30 days) and year (365 days) with their common
// abbreviations and plurals:
//
//	timex.ResolveSeconds("+1 day +1 minutes +30 seconds") // 86490
//	timex.ResolveSeconds("-30 minutes")                   // -1800
//	timex.ResolveSeconds("-1h30m")                        // -5400
//	timex.ResolveSeconds("2 days ago")                    // -172800
//
// Resolver adapts ResolveSeconds to the timespan.RelativeResolver interface:
//
//	ts, err := timespan.CreateFromString("+2 days", timex.Resolver{})
//
// # Formatting
//
// FormatDuration renders "1 day, 3 hours, and 5 seconds" style text.
package timex
