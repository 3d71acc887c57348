// ============================================================================
// timespan - Signed durations with placeholder templates
// ============================================================================
//
// Package:     timespan
// Description: Relative expressions and instant differences
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package timespan

import (
	"time"

	mdwerror "github.com/msto63/timespan/foundation/core/error"
	"github.com/msto63/timespan/foundation/utils/timex"
)

// RelativeResolver turns an expression such as "+1 day -30 minutes" into a
// signed second count
type RelativeResolver interface {
	ResolveSeconds(expr string) (float64, error)
}

// AddFromString resolves expr and adds the result. A nil resolver uses
// timex.Resolver. On failure the receiver is unchanged.
func (t *Timespan) AddFromString(expr string, resolver RelativeResolver) (*Timespan, error) {
	if resolver == nil {
		resolver = timex.Resolver{}
	}

	seconds, err := resolver.ResolveSeconds(expr)
	if err != nil {
		return t, mdwerror.Wrap(err, "failed to resolve relative expression").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("timespan.AddFromString").
			WithDetail("expression", expr)
	}

	return t.AddSeconds(seconds), nil
}

// CreateFromString creates a Timespan from a relative expression
func CreateFromString(expr string, resolver RelativeResolver) (*Timespan, error) {
	ts, err := (&Timespan{}).AddFromString(expr, resolver)
	if err != nil {
		return nil, err
	}
	return ts, nil
}

// CreateFromDateDiff returns the signed difference end - start in whole seconds
func CreateFromDateDiff(start, end time.Time) *Timespan {
	return FromInstantDiff(start, end)
}
