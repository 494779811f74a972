package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"customer-dashboard/internal/config"
	"customer-dashboard/internal/services"
	"customer-dashboard/internal/tui"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.Load()

	// The terminal belongs to the UI, so logs go to a file
	logFile, err := os.OpenFile(cfg.Logging.TUIFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", cfg.Logging.TUIFile, err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger := cfg.NewLoggerTo(logFile)

	metrics := services.NewPrometheusMetrics(prometheus.NewRegistry())
	dataSource := services.NewDataSourceClient(&cfg.DataSource, logger)
	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfigFromDataSource(&cfg.DataSource))
	dashboardService := services.NewDashboardService(dataSource, breaker, metrics, services.NewDashboardLogger(logger))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting terminal dashboard", "data_source", cfg.DataSource.BaseURL)
	if err := tui.New(dashboardService, logger).Run(ctx); err != nil {
		logger.Error("Terminal UI error", "error", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
