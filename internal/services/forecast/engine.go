package forecast

import (
	"context"
	"fmt"
	"math"

	"IPCAPulse/internal/domain/models"
	domsvc "IPCAPulse/internal/domain/service"
	"IPCAPulse/internal/services/analytics"
	applogger "IPCAPulse/pkg/logger"
	"IPCAPulse/pkg/util"
)

// Engine implements a Forecaster with a fixed-order ARIMA baseline.
// (5,1,0) is a heuristic for monthly inflation data, not tuned per
// dataset; forecast quality is approximate by design of the caller.
type Engine struct {
	order      Order
	confidence float64
	logger     *applogger.Logger
}

// NewEngine creates a forecasting engine with the given fixed order and
// confidence level for the per-step intervals.
func NewEngine(order Order, confidence float64, logger *applogger.Logger) domsvc.Forecaster {
	return &Engine{
		order:      order,
		confidence: confidence,
		logger:     logger,
	}
}

// DefaultOrder is the ARIMA(5,1,0) baseline.
var DefaultOrder = Order{P: 5, D: 1, Q: 0}

// Forecast reindexes the full canonical series to strict monthly
// cadence, fits the model, and produces exactly horizon points dated
// strictly after the last observed month. Interior gaps are linearly
// interpolated before fitting; the gap count is reported in the result.
func (e *Engine) Forecast(_ context.Context, series models.Series, horizon int) (models.ForecastResult, error) {
	if horizon < 1 {
		return models.ForecastResult{}, &models.ForecastError{Reason: "horizon must be at least 1"}
	}

	monthly := analytics.Reindex(series)
	if monthly.Observed() < minObservations(e.order) {
		return models.ForecastResult{}, &models.ForecastError{
			Reason: fmt.Sprintf("need at least %d monthly observations, have %d",
				minObservations(e.order), monthly.Observed()),
		}
	}

	values, filled := fillGaps(monthly.Values)
	if filled != monthly.Gaps {
		return models.ForecastResult{}, &models.ForecastError{Reason: "series has unfillable gaps"}
	}
	if filled > 0 && e.logger != nil {
		e.logger.Warn("monthly series has gaps, interpolated before fit",
			applogger.Int("gaps", filled))
	}

	model, err := fitARIMA(values, e.order)
	if err != nil {
		return models.ForecastResult{}, &models.ForecastError{Reason: err.Error()}
	}

	points, lower, upper := model.predictWithInterval(horizon, e.confidence)

	lastMonth := util.MonthStart(series.MaxDate())
	out := make([]models.ForecastPoint, horizon)
	for h := 0; h < horizon; h++ {
		if math.IsNaN(points[h]) || math.IsInf(points[h], 0) {
			return models.ForecastResult{}, &models.ForecastError{Reason: "forecast produced non-finite values"}
		}
		out[h] = models.ForecastPoint{
			Date:  util.AddMonths(lastMonth, h+1),
			Point: points[h],
			Lower: lower[h],
			Upper: upper[h],
		}
	}

	return models.ForecastResult{
		Points:     out,
		Horizon:    horizon,
		Confidence: e.confidence,
		GapsFilled: filled,
		Model:      fmt.Sprintf("arima(%d,%d,%d)", e.order.P, e.order.D, e.order.Q),
	}, nil
}

// fillGaps linearly interpolates interior NaN runs. The reindexed series
// always starts and ends with an observation, so every gap has a finite
// neighbor on both sides. Returns the filled copy and the fill count.
func fillGaps(values []float64) ([]float64, int) {
	out := make([]float64, len(values))
	copy(out, values)

	filled := 0
	for i := 0; i < len(out); i++ {
		if !math.IsNaN(out[i]) {
			continue
		}
		// Find the run [i, j) of gaps and its bounding observations.
		j := i
		for j < len(out) && math.IsNaN(out[j]) {
			j++
		}
		if i == 0 || j == len(out) {
			// Edge gap: cannot interpolate.
			return out, filled
		}
		lo := out[i-1]
		hi := out[j]
		span := float64(j - i + 1)
		for k := i; k < j; k++ {
			out[k] = lo + (hi-lo)*float64(k-i+1)/span
			filled++
		}
		i = j
	}
	return out, filled
}
