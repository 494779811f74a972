package handlers

import (
	"net/http"
	"time"

	"customer-dashboard/internal/dto"
	"customer-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(dashboardService services.DashboardServiceInterface) *HealthCheckHandler {
	return &HealthCheckHandler{dashboardService: dashboardService}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Reports the load status of each data source collection. An empty or failed collection is not an outage.
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is healthy"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	snapshot := h.dashboardService.Snapshot()

	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:         "healthy",
		Time:           time.Now().UTC().Format(time.RFC3339),
		CircuitBreaker: h.dashboardService.CircuitState().String(),
		Resources:      toResourceStatuses(snapshot),
	})
}
