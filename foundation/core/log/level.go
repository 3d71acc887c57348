// File: level.go
// Title: Log Level Definitions
// Description: Log levels, their names and console tags, and parsing of the
//              log.level configuration value.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Dropped the audit level, levels parsed from timespan config
// - 2026-10-19 v0.3.0: Names, tags and aliases kept in one table

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is the most verbose level, e.g. individual template tokens
	LevelTrace Level = iota

	// LevelDebug provides detailed information such as template cache misses
	LevelDebug

	LevelInfo
	LevelWarn
	LevelError

	// LevelFatal represents errors that terminate the program
	LevelFatal
)

// defaultLevel keeps the CLI quiet unless something went wrong
const defaultLevel = LevelWarn

// levelInfo describes one level. The first alias is the canonical name.
type levelInfo struct {
	tag     string
	aliases []string
}

var levels = [...]levelInfo{
	LevelTrace: {"TRC", []string{"trace", "trc"}},
	LevelDebug: {"DBG", []string{"debug", "dbg"}},
	LevelInfo:  {"INF", []string{"info", "inf", "information"}},
	LevelWarn:  {"WRN", []string{"warn", "wrn", "warning"}},
	LevelError: {"ERR", []string{"error", "err"}},
	LevelFatal: {"FTL", []string{"fatal", "ftl"}},
}

func (l Level) valid() bool {
	return l >= LevelTrace && int(l) < len(levels)
}

// String returns the lower-case name used in JSON and logfmt output
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levels[l].aliases[0]
}

// tag is the three letter form used by the text and console formatters
func (l Level) tag() string {
	if !l.valid() {
		return "???"
	}
	return levels[l].tag
}

// ShouldLog reports whether l passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel accepts a level name, its tag or a common alias, ignoring case.
// On failure it returns LevelInfo together with a *ParseError.
func ParseLevel(level string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	for l, info := range levels {
		for _, alias := range info.aliases {
			if alias == name {
				return Level(l), nil
			}
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}
