package service

import (
	"context"

	"IPCAPulse/internal/domain/models"
)

// SeriesSource retrieves the raw index series from a remote provider and
// normalizes it into a canonical ordered series.
type SeriesSource interface {
	Fetch(ctx context.Context) (models.Series, error)
}

// Forecaster fits a model on the full canonical series and produces a
// fixed-horizon forecast with per-step confidence bounds.
type Forecaster interface {
	Forecast(ctx context.Context, series models.Series, horizon int) (models.ForecastResult, error)
}
