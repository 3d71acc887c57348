// ============================================================================
// timespan - Signed durations with placeholder templates
// ============================================================================
//
// Package:     timespan
// Description: Text and JSON encoding using the default template
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package timespan

import (
	"bytes"
	"encoding/json"
	"strconv"

	mdwerror "github.com/msto63/timespan/foundation/core/error"
)

// The rendering methods below use value receivers so that Timespan values
// stored in maps, interfaces and non-pointer fields format and marshal like
// pointers do. Decoding and every mutator use pointer receivers.

// Format renders the span with template
func (t Timespan) Format(template string) string {
	return Format(template, t)
}

// String renders the span with DefaultFormat
func (t Timespan) String() string {
	return t.Format(DefaultFormat)
}

// MarshalText implements encoding.TextMarshaler
func (t Timespan) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text must match
// DefaultFormat; on failure the receiver is left unchanged.
func (t *Timespan) UnmarshalText(text []byte) error {
	parsed, err := Parse(DefaultFormat, string(text))
	if err != nil {
		return err
	}
	t.Seconds = parsed.Seconds
	return nil
}

// MarshalJSON encodes the span as a JSON string in DefaultFormat
func (t Timespan) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts a string in DefaultFormat or a number of seconds.
// null leaves the receiver unchanged.
func (t *Timespan) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		return t.UnmarshalText([]byte(text))
	}

	seconds, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return mdwerror.Wrap(err, "timespan must be a string or a number of seconds").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("timespan.UnmarshalJSON").
			WithDetail("value", string(data))
	}
	t.Seconds = seconds
	return nil
}
