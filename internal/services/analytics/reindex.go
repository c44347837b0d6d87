package analytics

import (
	"math"

	"IPCAPulse/internal/domain/models"
	"IPCAPulse/pkg/util"
)

// MonthlySeries is the canonical series reindexed to a strict monthly
// cadence: one slot per calendar month from the first to the last
// observation. A missing month is an explicit NaN gap marker, never a
// zero and never silently dropped; the fitting step decides how gaps
// are handled.
type MonthlySeries struct {
	Start  models.Observation // anchor: first month, original value
	Values []float64          // one per month, NaN marks a gap
	Gaps   int
}

// IsGap reports whether the value at index i is a gap marker.
func (m MonthlySeries) IsGap(i int) bool {
	return math.IsNaN(m.Values[i])
}

// Observed returns the number of non-gap slots.
func (m MonthlySeries) Observed() int {
	return len(m.Values) - m.Gaps
}

// Reindex aligns the series to monthly frequency. Observation dates are
// bucketed by calendar month; the forecasting model requires a
// fixed-frequency index.
func Reindex(s models.Series) MonthlySeries {
	if s.IsEmpty() {
		return MonthlySeries{}
	}

	first := util.MonthStart(s.MinDate())
	last := util.MonthStart(s.MaxDate())
	n := util.MonthsBetween(first, last) + 1

	values := make([]float64, n)
	for i := range values {
		values[i] = math.NaN()
	}
	for _, o := range s.Obs {
		idx := util.MonthsBetween(first, util.MonthStart(o.Date))
		values[idx] = o.Value
	}

	gaps := 0
	for _, v := range values {
		if math.IsNaN(v) {
			gaps++
		}
	}

	return MonthlySeries{
		Start:  s.Obs[0],
		Values: values,
		Gaps:   gaps,
	}
}
