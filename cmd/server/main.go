// Package main provides the fee comparison server entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codermillat/wbe-uni-fee-compare/internal/buildinfo"
	"github.com/codermillat/wbe-uni-fee-compare/internal/catalog"
	"github.com/codermillat/wbe-uni-fee-compare/internal/compare"
	"github.com/codermillat/wbe-uni-fee-compare/internal/config"
	"github.com/codermillat/wbe-uni-fee-compare/internal/logger"
	"github.com/codermillat/wbe-uni-fee-compare/internal/metrics"
	"github.com/codermillat/wbe-uni-fee-compare/internal/report"
	"github.com/codermillat/wbe-uni-fee-compare/internal/sentry"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.LogLevel)
	log.WithField("version", buildinfo.Version).
		WithField("commit", buildinfo.Commit).
		Info("Starting university fee comparison server")

	// Initialize error tracking (optional, no-op without a token)
	if err := sentry.Initialize(sentry.Config{
		Token:       cfg.BetterStackToken,
		Host:        cfg.BetterStackHost,
		Environment: cfg.Environment,
		Release:     buildinfo.Version,
	}); err != nil {
		log.WithError(err).Warn("Failed to initialize error tracking")
	} else if sentry.IsEnabled() {
		log.WithField("environment", cfg.Environment).Info("Error tracking enabled")
	}

	// Load university catalogs. A catalog directory on disk overrides the
	// embedded data so counselors can update fees without a rebuild.
	var universities []catalog.University
	if cfg.CatalogDir != "" {
		log.WithField("dir", cfg.CatalogDir).Info("Loading catalogs from directory")
		universities, err = catalog.LoadDir(cfg.CatalogDir)
	} else {
		universities, err = catalog.Load()
	}
	if err != nil {
		sentry.CaptureException(err)
		sentry.Flush(2 * time.Second)
		log.WithError(err).Fatal("Failed to load university catalogs")
	}

	programCount := 0
	for _, u := range universities {
		programCount += len(u.Programs)
	}
	log.WithField("universities", len(universities)).
		WithField("programs", programCount).
		Info("Catalogs loaded")

	// Create Prometheus registry
	registry := prometheus.NewRegistry()

	// Register Go and process collectors
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewBuildInfoCollector())

	// Create metrics
	m := metrics.New(registry)
	log.Info("Metrics initialized")

	// Create the comparison service with the offer formatter
	formatter := report.NewFormatter(cfg.AgencyName)
	svc, err := compare.New(universities, formatter, log, m)
	if err != nil {
		log.WithError(err).Fatal("Failed to create comparison service")
	}
	log.WithField("agency", cfg.AgencyName).Info("Comparison service created")

	// Set Gin mode based on log level
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	if sentry.IsEnabled() {
		router.Use(sentry.GinMiddleware())
	}
	router.Use(securityHeadersMiddleware())
	router.Use(requestIDMiddleware())
	router.Use(gzipMiddleware())
	router.Use(loggingMiddleware(log, m))

	// Setup routes
	setupRoutes(router, svc, registry, cfg, log)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  config.HTTPReadTimeout,
		WriteTimeout: config.HTTPWriteTimeout,
		IdleTimeout:  config.HTTPIdleTimeout,
	}

	// Run the server until an interrupt signal, then drain in-flight
	// requests within the shutdown timeout.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithField("port", cfg.Port).Info("Server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		sentry.CaptureException(err)
		log.WithError(err).Error("Server exited with error")
	}

	sentry.Flush(2 * time.Second)
	log.Info("Server stopped")
}
