package models

import (
	"sort"
	"time"
)

// Observation is a single monthly index reading: a calendar date
// (truncated to day) and the monthly percentage variation.
type Observation struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Series is the canonical ordered time series: ascending unique dates.
// It is built once per fetch and treated as read-only by consumers;
// windowing always returns a copy.
type Series struct {
	Obs []Observation `json:"observations"`
}

// NewSeries builds a canonical series from raw observations: sorts
// ascending by date and deduplicates, keeping the last record for a
// repeated date.
func NewSeries(obs []Observation) Series {
	sorted := make([]Observation, len(obs))
	copy(sorted, obs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	out := sorted[:0]
	for _, o := range sorted {
		if n := len(out); n > 0 && out[n-1].Date.Equal(o.Date) {
			out[n-1] = o
			continue
		}
		out = append(out, o)
	}
	return Series{Obs: out}
}

// Len returns the number of observations.
func (s Series) Len() int { return len(s.Obs) }

// IsEmpty reports whether the series has no observations.
func (s Series) IsEmpty() bool { return len(s.Obs) == 0 }

// MinDate returns the first observation date (zero time if empty).
func (s Series) MinDate() time.Time {
	if s.IsEmpty() {
		return time.Time{}
	}
	return s.Obs[0].Date
}

// MaxDate returns the last observation date (zero time if empty).
func (s Series) MaxDate() time.Time {
	if s.IsEmpty() {
		return time.Time{}
	}
	return s.Obs[len(s.Obs)-1].Date
}

// Values returns the observation values in chronological order.
func (s Series) Values() []float64 {
	vals := make([]float64, len(s.Obs))
	for i, o := range s.Obs {
		vals[i] = o.Value
	}
	return vals
}

// Copy returns a deep copy of the series.
func (s Series) Copy() Series {
	obs := make([]Observation, len(s.Obs))
	copy(obs, s.Obs)
	return Series{Obs: obs}
}
