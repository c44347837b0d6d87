// Package analytics implements the windowing and aggregation math over
// the canonical inflation series.
package analytics

import (
	"time"

	"IPCAPulse/internal/domain/models"
)

// SelectWindow clips the series to the closed interval [from, to].
//
// A zero from or to means the caller supplied a malformed or one-sided
// range (the dashboard date widget can emit a single date); the policy
// is to fall back to the full series rather than error. Bounds are
// clamped into [min, max] and swapped if transposed. The result is
// always a copy; the canonical series is shared and never mutated.
func SelectWindow(s models.Series, from, to time.Time) models.Series {
	if s.IsEmpty() {
		return models.Series{}
	}
	if from.IsZero() || to.IsZero() {
		return s.Copy()
	}

	from = clamp(from, s.MinDate(), s.MaxDate())
	to = clamp(to, s.MinDate(), s.MaxDate())
	if from.After(to) {
		from, to = to, from
	}

	out := make([]models.Observation, 0, s.Len())
	for _, o := range s.Obs {
		if o.Date.Before(from) || o.Date.After(to) {
			continue
		}
		out = append(out, o)
	}
	return models.Series{Obs: out}
}

func clamp(t, lo, hi time.Time) time.Time {
	if t.Before(lo) {
		return lo
	}
	if t.After(hi) {
		return hi
	}
	return t
}
