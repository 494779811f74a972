// Package server wires the dashboard handlers and middleware into an echo instance.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"customer-dashboard/internal/config"
	"customer-dashboard/internal/handlers"
	"customer-dashboard/internal/middleware"
	"customer-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the collaborators the HTTP layer needs
type Dependencies struct {
	DashboardService services.DashboardServiceInterface
	Logger           services.DashboardLoggerInterface
	Metrics          services.MetricsRecorderInterface
	Gatherer         prometheus.Gatherer
	Templates        fs.FS
	AccessLogger     *slog.Logger
}

// Server owns the echo instance and its rate limiter
type Server struct {
	echo        *echo.Echo
	config      *config.Config
	rateLimiter *middleware.IPRateLimiter
}

// New builds the echo instance with the middleware chain and all routes
func New(cfg *config.Config, deps Dependencies) (*Server, error) {
	renderer, err := handlers.NewTemplateRenderer(deps.Templates)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.Renderer = renderer
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	rateLimiter := middleware.NewIPRateLimiter(cfg.Security)

	e.Use(middleware.RequestID())
	e.Use(middleware.AccessLog(deps.AccessLogger))
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, middleware.TraceIDHeader},
	}))

	dashboardHandler := handlers.NewDashboardHandler(deps.DashboardService, deps.Logger, deps.Metrics)
	healthHandler := handlers.NewHealthCheckHandler(deps.DashboardService)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))

	e.GET("/", dashboardHandler.Page, rateLimiter.Middleware())

	api := e.Group("/api/v1", rateLimiter.Middleware())
	api.GET("/dashboard", dashboardHandler.GetDashboard)
	api.GET("/customers/:id/transactions", dashboardHandler.GetCustomerTransactions)
	api.GET("/customers/:id/chart", dashboardHandler.GetCustomerChart)
	api.POST("/reload", dashboardHandler.Reload)
	// The group's catch-all route answers unmatched methods with 404
	api.Match(
		[]string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete},
		"/reload",
		methodNotAllowed(http.MethodPost),
	)

	return &Server{
		echo:        e,
		config:      cfg,
		rateLimiter: rateLimiter,
	}, nil
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on the configured address until Shutdown is called
func (s *Server) Start() error {
	if err := s.echo.Start(s.config.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops background work
func (s *Server) Shutdown(ctx context.Context) error {
	defer s.rateLimiter.Stop()
	return s.echo.Shutdown(ctx)
}

func methodNotAllowed(allow string) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderAllow, allow)
		return echo.ErrMethodNotAllowed
	}
}
