package analytics

import (
	"IPCAPulse/internal/domain/models"
)

// ComputeAggregates derives the three window KPIs. All inputs and
// outputs are percentage rates.
//
// Cumulative change compounds the monthly rates:
//
//	((1 + v1/100) * (1 + v2/100) * ... - 1) * 100
//
// The mean is the simple arithmetic average of the monthly rates, not
// the compounded equivalent; the asymmetry is intentional.
func ComputeAggregates(window models.Series) (models.AggregateResult, error) {
	if window.IsEmpty() {
		return models.AggregateResult{}, &models.EmptyWindowError{}
	}

	product := 1.0
	sum := 0.0
	max := window.Obs[0].Value
	for _, o := range window.Obs {
		product *= 1 + o.Value/100
		sum += o.Value
		if o.Value > max {
			max = o.Value
		}
	}

	return models.AggregateResult{
		CumulativeChangePct: (product - 1) * 100,
		MeanMonthlyPct:      sum / float64(window.Len()),
		MaxMonthlyPct:       max,
	}, nil
}
