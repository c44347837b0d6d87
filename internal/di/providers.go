package di

import (
	"fmt"

	"IPCAPulse/internal/domain/repository"
	domsvc "IPCAPulse/internal/domain/service"
	"IPCAPulse/internal/handler/api"
	"IPCAPulse/internal/service/bcb"
	"IPCAPulse/internal/services/forecast"
	"IPCAPulse/internal/usecase"
	"IPCAPulse/pkg/cache"
	"IPCAPulse/pkg/config"
	xhttp "IPCAPulse/pkg/http"
	applogger "IPCAPulse/pkg/logger"
	"IPCAPulse/pkg/metrics"
	"IPCAPulse/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCache creates the cache backend selected by config.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	switch cfg.Cache.Backend {
	case "redis":
		c, err := cache.NewRedisCache(
			cache.WithRedisHost(cfg.Cache.Redis.Host),
			cache.WithRedisPort(cfg.Cache.Redis.Port),
			cache.WithRedisPassword(cfg.Cache.Redis.Password),
			cache.WithRedisDB(cfg.Cache.Redis.DB),
			cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return c, nil
	default:
		return cache.NewMemoryCache(), nil
	}
}

// ProvideSeriesSource creates the SGS series client.
func ProvideSeriesSource(cfg *config.Config) domsvc.SeriesSource {
	return bcb.New(cfg.BCB.BaseURL, cfg.BCB.SeriesCode, cfg.BCB.Timeout)
}

// ProvideForecaster creates the ARIMA forecasting engine.
func ProvideForecaster(cfg *config.Config, l *applogger.Logger) domsvc.Forecaster {
	order := forecast.Order{
		P: cfg.Forecast.AROrder,
		D: cfg.Forecast.DiffOrder,
		Q: cfg.Forecast.MAOrder,
	}
	return forecast.NewEngine(order, cfg.Forecast.Confidence, l)
}

// ProvideDashboard creates the pipeline use case.
func ProvideDashboard(
	source domsvc.SeriesSource,
	forecaster domsvc.Forecaster,
	c cache.Service,
	m repository.Metrics,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.Dashboard {
	return usecase.NewDashboard(source, forecaster, c, m, l, cfg.BCB.CacheTTL, cfg.Forecast.Horizon)
}

// ProvideHandler creates the Echo HTTP handler.
func ProvideHandler(l *applogger.Logger, dash *usecase.Dashboard) xhttp.Handler {
	return api.NewDashboardEchoHandler(l, dash)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, dash *usecase.Dashboard, h xhttp.Handler) *server.App {
	return server.New(cfg, l, dash, h)
}
