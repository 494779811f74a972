package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"customer-dashboard/internal/config"
	"customer-dashboard/internal/server"
	"customer-dashboard/internal/services"
	"customer-dashboard/web"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.Load()

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	dashboardLogger := services.NewDashboardLogger(logger)
	dataSource := services.NewDataSourceClient(&cfg.DataSource, logger)
	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfigFromDataSource(&cfg.DataSource))
	dashboardService := services.NewDashboardService(dataSource, breaker, metrics, dashboardLogger)

	srv, err := server.New(cfg, server.Dependencies{
		DashboardService: dashboardService,
		Logger:           dashboardLogger,
		Metrics:          metrics,
		Gatherer:         prometheus.DefaultGatherer,
		Templates:        web.TemplatesFS,
		AccessLogger:     logger,
	})
	if err != nil {
		logger.Error("Failed to build HTTP server", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The page is served immediately; collections fill in as each fetch completes
	go dashboardService.Load(ctx)

	go func() {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	}()

	logger.Info("Starting dashboard server",
		"address", cfg.Server.Address(),
		"environment", cfg.Server.Environment,
		"data_source", cfg.DataSource.BaseURL,
	)
	if err := srv.Start(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}

	logger.Info("Server stopped gracefully")
}
