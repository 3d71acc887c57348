// File: timex.go
// Title: Core Time Utilities
// Description: Implements instant parsing over common layouts, resolution of
//              relative expressions such as "+1 day -30 minutes" into signed
//              second counts, and human readable duration formatting.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: ParseDuration generalized into a multi-term signed
//                       resolver, business day and timezone helpers removed

package timex

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Common time layouts accepted by Parse
const (
	// ISO formats
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601Date     = "2006-01-02"
	ISO8601DateTime = "2006-01-02T15:04:05"

	// Common business formats
	BusinessDateTime      = "2006-01-02 15:04:05"
	BusinessDateTimeShort = "2006-01-02 15:04"

	// Short formats
	ShortDate     = "01/02/2006"
	ShortDateTime = "01/02/2006 15:04"

	// European format DD.MM.YYYY
	EuropeanDate     = "02.01.2006"
	EuropeanDateTime = "02.01.2006 15:04:05"

	// Compact formats
	CompactDate     = "20060102"
	CompactDateTime = "20060102150405"
)

// Unit lengths in seconds for relative expressions
const (
	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 24 * SecondsPerHour
	SecondsPerWeek   = 7 * SecondsPerDay
	SecondsPerMonth  = 30 * SecondsPerDay
	SecondsPerYear   = 365 * SecondsPerDay
)

var parseLayouts = []string{
	time.RFC3339,
	ISO8601,
	ISO8601DateTime,
	BusinessDateTime,
	BusinessDateTimeShort,
	ISO8601Date,
	ShortDateTime,
	ShortDate,
	EuropeanDateTime,
	EuropeanDate,
	CompactDateTime,
	CompactDate,
	time.RFC1123,
	time.RFC1123Z,
}

// ===============================
// Parsing Functions
// ===============================

// Parse attempts to parse an instant using common layouts. A value of the
// form "@1420153200" is read as Unix seconds. Values without zone
// information are interpreted as UTC.
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time string")
	}

	if strings.HasPrefix(value, "@") {
		sec, err := strconv.ParseInt(value[1:], 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid unix timestamp: %s", value)
		}
		return time.Unix(sec, 0).UTC(), nil
	}

	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse time string: %s", value)
}

// ===============================
// Relative Expressions
// ===============================

var (
	termPattern = regexp.MustCompile(`([+-]?)[ \t]*(\d+(?:\.\d+)?|\.\d+)[ \t]*([a-z]+)`)

	unitSeconds = map[string]float64{
		"second": 1, "sec": 1, "s": 1,
		"minute": SecondsPerMinute, "min": SecondsPerMinute, "m": SecondsPerMinute,
		"hour": SecondsPerHour, "hr": SecondsPerHour, "h": SecondsPerHour,
		"day": SecondsPerDay, "d": SecondsPerDay,
		"week": SecondsPerWeek, "wk": SecondsPerWeek, "w": SecondsPerWeek,
		"month": SecondsPerMonth, "mon": SecondsPerMonth,
		"year": SecondsPerYear, "yr": SecondsPerYear, "y": SecondsPerYear,
	}
)

// Resolver resolves relative expressions into signed second counts
type Resolver struct{}

// ResolveSeconds implements the resolver contract expected by timespan
func (Resolver) ResolveSeconds(expr string) (float64, error) {
	return ResolveSeconds(expr)
}

// ResolveSeconds converts a relative expression into a signed number of
// seconds. An expression is a sequence of terms "[sign] number unit", for
// example "+1 day +1 minutes +30 seconds", "-30 minutes", "2 weeks" or
// "1h30m". A term without sign written directly after the previous term
// inherits its sign, so "-1h30m" is -5400. A trailing "ago" negates the
// total. Months count 30 days, years 365 days.
func ResolveSeconds(expr string) (float64, error) {
	value := strings.ToLower(strings.TrimSpace(expr))
	if value == "" {
		return 0, fmt.Errorf("empty relative expression")
	}

	negateAll := false
	if rest, ok := strings.CutSuffix(value, "ago"); ok && (rest == "" || rest[len(rest)-1] == ' ') {
		negateAll = true
		value = strings.TrimSpace(rest)
	}

	matches := termPattern.FindAllStringSubmatchIndex(value, -1)
	if len(matches) == 0 {
		return 0, fmt.Errorf("unable to parse relative expression: %s", expr)
	}

	var total float64
	prevEnd := 0
	prevSign := 1.0

	for i, m := range matches {
		gap := value[prevEnd:m[0]]
		if word := strings.Trim(gap, " \t,"); word != "" && (word != "and" || i == 0) {
			return 0, fmt.Errorf("unexpected %q in relative expression: %s", word, expr)
		}

		sign := 1.0
		switch value[m[2]:m[3]] {
		case "-":
			sign = -1
		case "+":
		default:
			if i > 0 && gap == "" {
				sign = prevSign
			}
		}

		num, err := strconv.ParseFloat(value[m[4]:m[5]], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number in relative expression: %s", expr)
		}

		unit := value[m[6]:m[7]]
		factor, ok := lookupUnit(unit)
		if !ok {
			return 0, fmt.Errorf("unknown unit %q in relative expression: %s", unit, expr)
		}

		total += sign * num * factor
		prevSign = sign
		prevEnd = m[1]
	}

	if tail := strings.TrimSpace(value[prevEnd:]); tail != "" {
		return 0, fmt.Errorf("unexpected %q in relative expression: %s", tail, expr)
	}

	if math.IsInf(total, 0) || math.IsNaN(total) {
		return 0, fmt.Errorf("relative expression out of range: %s", expr)
	}

	if negateAll {
		total = -total
	}
	return total, nil
}

// lookupUnit resolves a unit name, accepting plural forms
func lookupUnit(unit string) (float64, bool) {
	if factor, ok := unitSeconds[unit]; ok {
		return factor, true
	}
	if len(unit) > 1 && strings.HasSuffix(unit, "s") {
		factor, ok := unitSeconds[unit[:len(unit)-1]]
		return factor, ok
	}
	return 0, false
}

// ===============================
// Formatting Functions
// ===============================

// FormatDuration formats a duration in a human-readable way
func FormatDuration(d time.Duration) string {
	return FormatSeconds(d.Seconds())
}

// FormatSeconds formats a signed second count as days, hours, minutes and
// seconds, e.g. "1 day, 2 hours, and 5 seconds". The parts are computed in
// float64, so counts beyond the time.Duration range are formatted too.
// Fractions of a second are dropped.
func FormatSeconds(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return strconv.FormatFloat(seconds, 'g', -1, 64) + " seconds"
	}

	total := math.Floor(math.Abs(seconds))
	if total == 0 {
		return "0 seconds"
	}

	units := []struct {
		name string
		size float64
	}{
		{"day", SecondsPerDay},
		{"hour", SecondsPerHour},
		{"minute", SecondsPerMinute},
		{"second", 1},
	}

	var parts []string
	rest := total
	for _, u := range units {
		n := math.Floor(rest / u.size)
		if n <= 0 {
			continue
		}
		rest -= n * u.size
		parts = append(parts, fmt.Sprintf("%s %s%s", strconv.FormatFloat(n, 'f', 0, 64), u.name, pluralSuffix(n)))
	}

	var text string
	switch len(parts) {
	case 1:
		text = parts[0]
	case 2:
		text = parts[0] + " and " + parts[1]
	default:
		text = strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
	}

	if seconds < 0 {
		return "-" + text
	}
	return text
}

// pluralSuffix returns "s" for counts other than one
func pluralSuffix(n float64) string {
	if n == 1 {
		return ""
	}
	return "s"
}
