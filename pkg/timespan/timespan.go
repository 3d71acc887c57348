// ============================================================================
// timespan - Signed durations with placeholder templates
// ============================================================================
//
// Package:     timespan
// Description: Timespan value type: construction, mutation and arithmetic
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package timespan

import (
	"math"
)

// Seconds per unit
const (
	SecondsPerMinute = 60
	SecondsPerHour   = 3600
)

// Timespan is a signed quantity of seconds. The zero value is an empty span.
// Mutators work in place and return the receiver so calls can be chained.
// A Timespan is not safe for concurrent mutation.
type Timespan struct {
	Seconds float64
}

// Units is the non-negative decomposition of a Timespan's magnitude. The
// parts are whole numbers held in float64, so hour counts beyond the int64
// range stay exact in magnitude instead of wrapping.
type Units struct {
	Negative     bool
	Hours        float64
	Minutes      float64 // 0-59
	Seconds      float64 // 0-59, fractions truncated
	TotalMinutes float64 // Hours*60 + Minutes
}

// Instant is anything that reports a Unix timestamp in seconds; time.Time
// satisfies it.
type Instant interface {
	Unix() int64
}

// Recompute returns hours*3600 + minutes*60 + seconds without rounding or
// bounds checks.
func Recompute(hours, minutes, seconds float64) float64 {
	return hours*SecondsPerHour + minutes*SecondsPerMinute + seconds
}

// New creates a Timespan from hours, minutes and seconds. Fractions and
// out-of-range components are kept: New(0, 1.5, 0) is 90 seconds and
// New(0, 60, 3600) is two hours.
func New(hours, minutes, seconds float64) *Timespan {
	return &Timespan{Seconds: Recompute(hours, minutes, seconds)}
}

// FromSeconds creates a Timespan from a raw second count
func FromSeconds(seconds float64) *Timespan {
	return &Timespan{Seconds: seconds}
}

// FromUnits is the inverse of Units
func FromUnits(u Units) *Timespan {
	ts := New(u.Hours, u.Minutes, u.Seconds)
	if u.Negative {
		ts.Negate()
	}
	return ts
}

// FromInstantDiff returns the signed difference end - start in whole seconds
func FromInstantDiff(start, end Instant) *Timespan {
	return FromSeconds(float64(end.Unix() - start.Unix()))
}

// SetTime replaces the whole quantity with hours*3600 + minutes*60 + seconds
func (t *Timespan) SetTime(hours, minutes, seconds float64) *Timespan {
	t.Seconds = Recompute(hours, minutes, seconds)
	return t
}

// SetSeconds replaces the quantity with seconds
func (t *Timespan) SetSeconds(seconds float64) *Timespan {
	t.Seconds = seconds
	return t
}

// SetMinutes is SetTime(0, minutes, current): the current seconds are folded
// back in, so the minutes are added to the stored quantity.
func (t *Timespan) SetMinutes(minutes float64) *Timespan {
	return t.SetTime(0, minutes, t.Seconds)
}

// SetHours is SetTime(hours, 0, current); see SetMinutes.
func (t *Timespan) SetHours(hours float64) *Timespan {
	return t.SetTime(hours, 0, t.Seconds)
}

// AddSeconds adds seconds to the quantity
func (t *Timespan) AddSeconds(seconds float64) *Timespan {
	t.Seconds += seconds
	return t
}

// AddMinutes adds minutes to the quantity
func (t *Timespan) AddMinutes(minutes float64) *Timespan {
	return t.SetTime(0, minutes, t.Seconds)
}

// AddHours adds hours to the quantity
func (t *Timespan) AddHours(hours float64) *Timespan {
	return t.SetTime(hours, 0, t.Seconds)
}

// Add adds hours, then minutes, then seconds. The result equals a single
// addition of hours*3600 + minutes*60 + seconds.
func (t *Timespan) Add(hours, minutes, seconds float64) *Timespan {
	return t.AddHours(hours).AddMinutes(minutes).AddSeconds(seconds)
}

// Negate flips the sign of the quantity
func (t *Timespan) Negate() *Timespan {
	t.Seconds = -t.Seconds
	return t
}

// Sum adds every non-nil span to the receiver, in order
func (t *Timespan) Sum(spans ...*Timespan) *Timespan {
	for _, s := range spans {
		if s != nil {
			t.Seconds += s.Seconds
		}
	}
	return t
}

// Diff returns a new Timespan of other - t. The result is absolute unless
// false is passed.
func (t *Timespan) Diff(other *Timespan, absolute ...bool) *Timespan {
	seconds := other.Seconds - t.Seconds
	if len(absolute) == 0 || absolute[0] {
		seconds = math.Abs(seconds)
	}
	return FromSeconds(seconds)
}

// AsMinutes returns the quantity in minutes, fractions included
func (t *Timespan) AsMinutes() float64 {
	return t.Seconds / SecondsPerMinute
}

// AsHours returns the quantity in hours, fractions included
func (t *Timespan) AsHours() float64 {
	return t.Seconds / SecondsPerHour
}

// IsNegative reports whether the quantity is below zero
func (t *Timespan) IsNegative() bool {
	return t.Seconds < 0
}

// IsEmpty reports whether the quantity is exactly zero
func (t *Timespan) IsEmpty() bool {
	return t.Seconds == 0
}

// Compare returns -1, 0 or +1 depending on whether t is shorter than, equal
// to or longer than other. Signs count: -10s is shorter than 5s.
func (t *Timespan) Compare(other *Timespan) int {
	switch {
	case t.Seconds < other.Seconds:
		return -1
	case t.Seconds > other.Seconds:
		return 1
	default:
		return 0
	}
}

// Equal reports whether both spans hold the same second count
func (t *Timespan) Equal(other *Timespan) bool {
	return t.Seconds == other.Seconds
}

// Clone returns an independent copy
func (t *Timespan) Clone() *Timespan {
	return &Timespan{Seconds: t.Seconds}
}

// Units decomposes the magnitude into whole hours, minutes and seconds
func (t *Timespan) Units() Units {
	h, m, s := decompose(t.Seconds)
	return Units{
		Negative:     t.IsNegative(),
		Hours:        h,
		Minutes:      m,
		Seconds:      s,
		TotalMinutes: h*60 + m,
	}
}

// decompose splits |seconds| into floored hours, minutes (0-59) and
// seconds (0-59). The parts are float64 so very large spans never overflow.
func decompose(seconds float64) (hours, minutes, secs float64) {
	abs := math.Abs(seconds)
	hours = math.Floor(abs / SecondsPerHour)
	minutes = math.Floor((abs - hours*SecondsPerHour) / SecondsPerMinute)
	secs = math.Floor(math.Mod(abs, SecondsPerMinute))
	return hours, minutes, secs
}
