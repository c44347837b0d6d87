package usecase

import (
	"context"
	"errors"
	"time"

	"IPCAPulse/internal/domain/models"
	domrepo "IPCAPulse/internal/domain/repository"
	domsvc "IPCAPulse/internal/domain/service"
	"IPCAPulse/internal/services/analytics"
	"IPCAPulse/pkg/cache"
	applogger "IPCAPulse/pkg/logger"
)

const seriesCacheKey = "series:canonical"

// Dashboard runs the analytics pipeline: cached fetch, window selection,
// aggregates, and forecast. Stages fail independently; a forecast error
// never suppresses the KPIs and vice versa.
type Dashboard struct {
	source     domsvc.SeriesSource
	forecaster domsvc.Forecaster
	cache      cache.Service
	metrics    domrepo.Metrics
	logger     *applogger.Logger
	cacheTTL   time.Duration
	horizon    int
}

// NewDashboard creates the pipeline use case.
func NewDashboard(
	source domsvc.SeriesSource,
	forecaster domsvc.Forecaster,
	c cache.Service,
	metrics domrepo.Metrics,
	logger *applogger.Logger,
	cacheTTL time.Duration,
	horizon int,
) *Dashboard {
	return &Dashboard{
		source:     source,
		forecaster: forecaster,
		cache:      c,
		metrics:    metrics,
		logger:     logger,
		cacheTTL:   cacheTTL,
		horizon:    horizon,
	}
}

// CanonicalSeries returns the cached canonical series, fetching from the
// remote source on a miss. The cache entry is replaced wholesale; there
// is no incremental update.
func (d *Dashboard) CanonicalSeries(ctx context.Context) (models.Series, error) {
	var cached models.Series
	if err := d.cache.Get(ctx, seriesCacheKey, &cached); err == nil && !cached.IsEmpty() {
		return cached, nil
	} else if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		d.logger.Warn("series cache read failed", applogger.Error(err))
	}

	start := time.Now()
	series, err := d.source.Fetch(ctx)
	d.metrics.RecordStageLatency("fetch", time.Since(start).Seconds())
	if err != nil {
		d.metrics.RecordFetch("bcb", "error")
		d.metrics.RecordError("fetch")
		return models.Series{}, err
	}
	d.metrics.RecordFetch("bcb", "ok")
	d.metrics.RecordSeriesLength(series.Len())
	if !series.IsEmpty() {
		last := series.Obs[series.Len()-1]
		d.metrics.RecordLastObservation(last.Date, last.Value)
	}

	if err := d.cache.Set(ctx, seriesCacheKey, series, d.cacheTTL); err != nil {
		d.logger.Warn("series cache write failed", applogger.Error(err))
	}

	return series, nil
}

// Series returns the windowed series for charting and tabulation.
func (d *Dashboard) Series(ctx context.Context, from, to time.Time) (models.Series, error) {
	series, err := d.CanonicalSeries(ctx)
	if err != nil {
		return models.Series{}, err
	}
	return analytics.SelectWindow(series, from, to), nil
}

// Aggregates computes the window KPIs.
func (d *Dashboard) Aggregates(ctx context.Context, from, to time.Time) (models.AggregateResult, error) {
	series, err := d.CanonicalSeries(ctx)
	if err != nil {
		return models.AggregateResult{}, err
	}

	start := time.Now()
	window := analytics.SelectWindow(series, from, to)
	res, err := analytics.ComputeAggregates(window)
	d.metrics.RecordStageLatency("aggregates", time.Since(start).Seconds())
	if err != nil {
		d.metrics.RecordError("aggregates")
		return models.AggregateResult{}, err
	}
	return res, nil
}

// Forecast fits the model on the full canonical series, never the
// windowed one.
func (d *Dashboard) Forecast(ctx context.Context) (models.ForecastResult, error) {
	series, err := d.CanonicalSeries(ctx)
	if err != nil {
		return models.ForecastResult{}, err
	}

	start := time.Now()
	res, err := d.forecaster.Forecast(ctx, series, d.horizon)
	d.metrics.RecordStageLatency("forecast", time.Since(start).Seconds())
	if err != nil {
		d.metrics.RecordError("forecast")
		return models.ForecastResult{}, err
	}
	return res, nil
}

// Overview runs all stages for one dashboard render. Only a fetch
// failure is terminal: without a series nothing downstream can run.
// Aggregate and forecast failures become stage-scoped warnings while
// the remaining sections are still returned.
func (d *Dashboard) Overview(ctx context.Context, from, to time.Time) models.DashboardResult {
	out := models.DashboardResult{}

	series, err := d.CanonicalSeries(ctx)
	if err != nil {
		d.logger.Error("series fetch failed", applogger.Error(err))
		out.Warnings = append(out.Warnings, models.StageWarning{Stage: "fetch", Message: err.Error()})
		return out
	}

	window := analytics.SelectWindow(series, from, to)
	out.Series = &window

	if agg, err := analytics.ComputeAggregates(window); err != nil {
		d.metrics.RecordError("aggregates")
		out.Warnings = append(out.Warnings, models.StageWarning{Stage: "aggregates", Message: err.Error()})
	} else {
		out.Aggregates = &agg
	}

	start := time.Now()
	if fc, err := d.forecaster.Forecast(ctx, series, d.horizon); err != nil {
		d.metrics.RecordError("forecast")
		d.logger.Warn("forecast unavailable", applogger.Error(err))
		out.Warnings = append(out.Warnings, models.StageWarning{Stage: "forecast", Message: err.Error()})
	} else {
		out.Forecast = &fc
	}
	d.metrics.RecordStageLatency("forecast", time.Since(start).Seconds())

	return out
}
