package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"IPCAPulse/internal/usecase"
	"IPCAPulse/pkg/config"
	xhttp "IPCAPulse/pkg/http"
	applogger "IPCAPulse/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	dash       *usecase.Dashboard
	httpServer *xhttp.Server
	handler    xhttp.Handler
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, logger *applogger.Logger, dash *usecase.Dashboard, handler xhttp.Handler) *App {
	return &App{
		cfg:     cfg,
		logger:  logger,
		dash:    dash,
		handler: handler,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(a.cfg.Metrics.Path),
		xhttp.WithLogger(a.logger),
	)

	// Warm the series cache and keep it fresh on the cache TTL interval.
	// The cache entry is replaced wholesale; requests in between are
	// served from the last complete snapshot.
	go a.refreshLoop(ctx)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("server started", applogger.Int("port", a.cfg.Server.Port))

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

func (a *App) refreshLoop(ctx context.Context) {
	if _, err := a.dash.CanonicalSeries(ctx); err != nil {
		a.logger.Warn("initial series fetch failed", applogger.Error(err))
	}

	interval := a.cfg.BCB.CacheTTL
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := a.dash.CanonicalSeries(ctx); err != nil {
				a.logger.Warn("series refresh failed", applogger.Error(err))
			}
		}
	}
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		return err
	}

	a.logger.Info("shutdown complete")
	return nil
}
