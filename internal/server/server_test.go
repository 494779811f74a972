package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"customer-dashboard/internal/config"
	"customer-dashboard/internal/dto"
	"customer-dashboard/internal/models"
	"customer-dashboard/internal/services"
	"customer-dashboard/internal/services/service_mocks"
	"customer-dashboard/internal/viewmodel"
	"customer-dashboard/web"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

// ServerTestSuite exercises the assembled router
type ServerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockDashboardServiceInterface
	mockLogger  *service_mocks.MockDashboardLoggerInterface
	server      *Server
	registry    *prometheus.Registry
}

func (s *ServerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockDashboardServiceInterface(s.ctrl)
	s.mockLogger = service_mocks.NewMockDashboardLoggerInterface(s.ctrl)
	s.registry = prometheus.NewRegistry()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Host:             "localhost",
			Port:             "0",
			Environment:      "testing",
			ReadTimeout:      time.Second,
			WriteTimeout:     time.Second,
			CORSAllowOrigins: []string{"http://localhost:8080"},
		},
		Security: config.SecurityConfig{RateLimitPerSecond: 100, RateLimitBurst: 100},
	}

	server, err := New(cfg, Dependencies{
		DashboardService: s.mockService,
		Logger:           s.mockLogger,
		Metrics:          services.NewPrometheusMetrics(s.registry),
		Gatherer:         s.registry,
		Templates:        web.TemplatesFS,
		AccessLogger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	s.Require().NoError(err)
	s.server = server
}

func (s *ServerTestSuite) TearDownTest() {
	s.server.rateLimiter.Stop()
	s.ctrl.Finish()
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.server.Handler().ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) TestHealth() {
	s.mockService.EXPECT().Snapshot().Return(models.Snapshot{})
	s.mockService.EXPECT().CircuitState().Return(models.CircuitClosed)

	rec := s.do(http.MethodGet, "/health")

	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get("X-Trace-ID"))

	var response dto.HealthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("closed", response.CircuitBreaker)
}

func (s *ServerTestSuite) TestDashboardPage() {
	s.mockService.EXPECT().View(models.DashboardState{}).Return(viewmodel.Dashboard{Groups: []viewmodel.RowGroup{}})
	s.mockService.EXPECT().Snapshot().Return(models.Snapshot{})

	rec := s.do(http.MethodGet, "/")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Content-Type"), "text/html")
	s.Contains(rec.Body.String(), "Customers and Transactions")
}

func (s *ServerTestSuite) TestDashboardAPI_ValidationError() {
	s.mockLogger.EXPECT().LogValidationFailure(gomock.Any(), "dashboard_view", gomock.Any())

	rec := s.do(http.MethodGet, "/api/v1/dashboard?amount="+strings.Repeat("5", 300))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
	s.Contains(rec.Body.String(), "amount: must be at most 256 characters long")
}

func (s *ServerTestSuite) TestCustomerChart_NotFound() {
	s.mockService.EXPECT().Series(models.NewIntID(42)).Return(models.ChartSeries{}, services.ErrCustomerNotFound)

	rec := s.do(http.MethodGet, "/api/v1/customers/42/chart")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "CUSTOMER_001")
}

func (s *ServerTestSuite) TestReload_WrongMethod() {
	rec := s.do(http.MethodGet, "/api/v1/reload")

	s.Equal(http.StatusMethodNotAllowed, rec.Code)
	s.Equal(http.MethodPost, rec.Header().Get(echo.HeaderAllow))
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *ServerTestSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/api/v1/invoices")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_007")
}

func (s *ServerTestSuite) TestMetricsEndpoint() {
	s.mockService.EXPECT().View(gomock.Any()).Return(viewmodel.Dashboard{Groups: []viewmodel.RowGroup{}})
	s.mockService.EXPECT().Snapshot().Return(models.Snapshot{})
	s.do(http.MethodGet, "/api/v1/dashboard")

	rec := s.do(http.MethodGet, "/metrics")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `dashboard_views_total{format="json"} 1`)
}
