package app

import (
	"context"
	"errors"
	"fmt"
	"fxdash/internal/platform/db"
	httpserver "fxdash/internal/platform/http"
	"fxdash/internal/platform/logging"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fxdash/internal/adapters"
	"fxdash/internal/adapters/cache"
	"fxdash/internal/adapters/frankfurter"
	"fxdash/internal/adapters/postgres"
	"fxdash/internal/api"
	"fxdash/internal/config"
	"fxdash/internal/dashboard"
	"fxdash/internal/dashboard/handler"

	"github.com/sirupsen/logrus"
)

var errDefaultsRequired = errors.New("dashboard base and symbols are required")

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	logCloser := logging.Setup(appCfg.Logging)
	defer func() { _ = logCloser.Close() }()
	logrus.Info("✅ Config initialization successful")

	defaults, err := dashboardDefaults(appCfg.Dashboard)
	if err != nil {
		return err
	}

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, migrations, initial reads)
	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	if err = db.Migrate(startupCtx, pool); err != nil {
		logrus.WithError(err).Error("Failed to apply migrations")
		return err
	}
	logrus.Info("✅ Migrations applied")

	// Repositories
	currencyRepo := postgres.NewCurrencyRepository(pool)
	preferencesRepo := postgres.NewPreferencesRepository(pool)

	// Supported currencies from the last sync (seeded by migration on first start)
	supported, err := currencyRepo.List(startupCtx)
	if err != nil || len(supported) == 0 {
		if err == nil {
			err = errors.New("no supported currencies available")
		}
		logrus.WithError(err).Error("Failed to load supported currencies")
		return err
	}
	logrus.Infof("✅ %d supported currencies loaded", len(supported))

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	rateClient := frankfurter.NewClient(&http.Client{Timeout: httpTimeout}, appCfg.Frankfurter.BaseURL)

	// Chart memo
	var chartCache adapters.ChartCache
	if appCfg.Cache.MaxItems > 0 {
		c, cacheErr := cache.NewChartCache(appCfg.Cache.MaxItems, time.Duration(appCfg.Cache.TTLSeconds)*time.Second)
		if cacheErr != nil {
			logrus.WithError(cacheErr).Error("Failed to create chart cache")
			return cacheErr
		}
		defer c.Close()
		chartCache = c
	}

	// Services
	validator := dashboard.NewValidator(supported)
	dashboardService := dashboard.NewService(rateClient, chartCache)
	preferencesService := dashboard.NewPreferencesService(preferencesRepo, defaults.Base, defaults.Quotes, defaults.Range)

	scheduler := dashboard.NewScheduler(rateClient, currencyRepo, validator,
		time.Duration(appCfg.Scheduler.CurrencySyncIntervalSec)*time.Second)
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and router
	h := handler.NewHandler(dashboardService, validator, preferencesService, defaults)
	router := api.NewRouter(h)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

func dashboardDefaults(cfg config.Dashboard) (dashboard.Defaults, error) {
	r := dashboard.DefaultRange
	if cfg.DefaultRange != "" {
		parsed, err := dashboard.ParseDateRange(cfg.DefaultRange)
		if err != nil {
			return dashboard.Defaults{}, fmt.Errorf("dashboard.default_range: %w", err)
		}
		r = parsed
	}
	if cfg.Base == "" || len(cfg.Symbols) == 0 {
		return dashboard.Defaults{}, errDefaultsRequired
	}
	return dashboard.Defaults{Base: cfg.Base, Quotes: cfg.Symbols, Range: r}, nil
}
