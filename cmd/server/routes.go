// Package main provides the fee comparison server entry point.
package main

import (
	"net/http"

	"github.com/codermillat/wbe-uni-fee-compare/internal/api"
	"github.com/codermillat/wbe-uni-fee-compare/internal/compare"
	"github.com/codermillat/wbe-uni-fee-compare/internal/config"
	"github.com/codermillat/wbe-uni-fee-compare/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all HTTP routes
func setupRoutes(router *gin.Engine, svc *compare.Service, registry *prometheus.Registry, cfg *config.Config, log *logger.Logger) {
	// Root endpoint - redirect to the project repository
	rootHandler := func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "https://github.com/codermillat/wbe-uni-fee-compare")
	}
	router.GET("/", rootHandler)
	router.HEAD("/", rootHandler)

	// Health check endpoints
	// Liveness Probe - checks if the application is alive (minimal check)
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/healthz", healthHandler)
	router.HEAD("/healthz", healthHandler)

	// Readiness Probe - the service is ready once catalogs are loaded.
	// All data is in memory, so this also reports catalog coverage.
	readyHandler := func(c *gin.Context) {
		universities := svc.Universities()
		if len(universities) == 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"reason": "no university catalogs loaded",
			})
			return
		}

		programCount := 0
		for _, u := range universities {
			programCount += len(u.Programs)
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ready",
			"catalog": gin.H{
				"universities": len(universities),
				"programs":     programCount,
			},
		})
	}
	router.GET("/ready", readyHandler)
	router.HEAD("/ready", readyHandler)

	// Query API for the counselor UI
	api.NewHandler(svc, log).Register(router.Group("/api"))

	// Prometheus metrics endpoint, Basic Auth protected when a password
	// is configured
	metricsHandler := gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	if cfg.MetricsPassword != "" {
		authorized := router.Group("/", gin.BasicAuth(gin.Accounts{
			cfg.MetricsUsername: cfg.MetricsPassword,
		}))
		authorized.GET("/metrics", metricsHandler)
	} else {
		router.GET("/metrics", metricsHandler)
	}
}
