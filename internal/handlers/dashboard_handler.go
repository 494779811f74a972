package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"customer-dashboard/internal/dto"
	"customer-dashboard/internal/errors"
	"customer-dashboard/internal/models"
	"customer-dashboard/internal/services"
	"customer-dashboard/internal/viewmodel"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the dashboard page and its JSON API
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
	logger           services.DashboardLoggerInterface
	metrics          services.MetricsRecorderInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	dashboardService services.DashboardServiceInterface,
	logger services.DashboardLoggerInterface,
	metrics services.MetricsRecorderInterface,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
		metrics:          metrics,
	}
}

// bindState reads and validates the dashboard state from the query string.
// Errors are rendered by the HTTP error handler.
func (h *DashboardHandler) bindState(c echo.Context, operation string) (models.DashboardState, error) {
	var query dto.DashboardQuery
	if err := c.Bind(&query); err != nil {
		h.logger.LogValidationFailure(c.Request().Context(), operation, err.Error())
		return models.DashboardState{}, err
	}

	if err := c.Validate(query); err != nil {
		h.logger.LogValidationFailure(c.Request().Context(), operation, err.Error())
		return models.DashboardState{}, err
	}

	return query.ToState(), nil
}

// Page renders the dashboard
// @Summary Dashboard page
// @Description Customers and transactions table with name and amount filters and an optional chart
// @Tags Dashboard
// @Produce html
// @Param name query string false "Case-insensitive customer name filter"
// @Param amount query string false "Substring of a transaction amount"
// @Param customer query string false "Customer to chart"
// @Success 200 {string} string "HTML page"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid query parameters"
// @Router / [get]
func (h *DashboardHandler) Page(c echo.Context) error {
	state, err := h.bindState(c, "dashboard_page")
	if err != nil {
		return err
	}

	view := h.dashboardService.View(state)
	page := newDashboardPage(view, h.dashboardService.Snapshot())

	h.metrics.IncrementCounter(services.MetricDashboardView, map[string]string{"format": "html"})
	return c.Render(http.StatusOK, dashboardPageID, page)
}

// GetDashboard returns the dashboard view-model
// @Summary Dashboard view-model
// @Description Visible customers with their transactions and the selected customer's chart series
// @Tags Dashboard
// @Produce json
// @Param name query string false "Case-insensitive customer name filter"
// @Param amount query string false "Substring of a transaction amount"
// @Param customer query string false "Customer to chart"
// @Success 200 {object} dto.DashboardResponse "Dashboard view-model"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid query parameters"
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	state, err := h.bindState(c, "dashboard_view")
	if err != nil {
		return err
	}

	view := h.dashboardService.View(state)
	snapshot := h.dashboardService.Snapshot()

	h.metrics.IncrementCounter(services.MetricDashboardView, map[string]string{"format": "json"})
	return c.JSON(http.StatusOK, toDashboardResponse(view, snapshot))
}

// GetCustomerTransactions lists a customer's transactions in source order
// @Summary Customer transactions
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.CustomerTransactionsResponse "Customer transactions"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Failure 503 {object} errors.ErrorResponse "DATASOURCE_002 - Data not loaded yet"
// @Router /api/v1/customers/{id}/transactions [get]
func (h *DashboardHandler) GetCustomerTransactions(c echo.Context) error {
	customerID, err := getCustomerIDParam(c)
	if err != nil {
		h.logger.LogValidationFailure(c.Request().Context(), "customer_transactions", err.Error())
		return SendError(c, errors.CustomerInvalidID)
	}

	customer, transactions, err := h.dashboardService.CustomerTransactions(customerID)
	if err != nil {
		return h.sendLookupError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CustomerTransactionsResponse{
		Customer:     customer,
		Transactions: transactions,
		Total:        len(transactions),
	})
}

// GetCustomerChart returns the chart series of a customer
// @Summary Customer chart series
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.ChartSeriesResponse "Chart series"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Failure 503 {object} errors.ErrorResponse "DATASOURCE_002 - Data not loaded yet"
// @Router /api/v1/customers/{id}/chart [get]
func (h *DashboardHandler) GetCustomerChart(c echo.Context) error {
	customerID, err := getCustomerIDParam(c)
	if err != nil {
		h.logger.LogValidationFailure(c.Request().Context(), "customer_chart", err.Error())
		return SendError(c, errors.CustomerInvalidID)
	}

	series, err := h.dashboardService.Series(customerID)
	if err != nil {
		return h.sendLookupError(c, err)
	}

	return c.JSON(http.StatusOK, toChartSeriesResponse(series))
}

// Reload re-fetches both collections from the data source
// @Summary Reload data
// @Description Re-fetches customers and transactions. A failed fetch keeps the previously held collection.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.ReloadResponse "Per-resource load status"
// @Failure 502 {object} errors.ErrorResponse "DATASOURCE_001 - Every fetch failed"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Data source circuit open"
// @Router /api/v1/reload [post]
func (h *DashboardHandler) Reload(c echo.Context) error {
	start := time.Now()

	result, err := h.dashboardService.Reload(c.Request().Context())
	h.metrics.RecordProcessingTime(services.MetricReload, time.Since(start))

	if err != nil {
		if stderrors.Is(err, services.ErrDataSourceUnavailable) {
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("data source circuit is open"))
		}
		return SendSystemError(c, err)
	}

	if result.AllFailed() {
		failed := make([]string, 0, 2)
		for _, resource := range result.Failed() {
			failed = append(failed, string(resource))
		}
		errorResponse := errors.NewFetchFailureError(failed, getTraceID(c))
		return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
	}

	return c.JSON(http.StatusOK, dto.ReloadResponse{
		Resources: toResourceStatuses(h.dashboardService.Snapshot()),
	})
}

func (h *DashboardHandler) sendLookupError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrCustomerNotFound):
		return SendError(c, errors.CustomerNotFound)
	case stderrors.Is(err, services.ErrDataNotLoaded):
		return SendError(c, errors.DataSourceNotLoaded)
	default:
		return SendSystemError(c, err)
	}
}

func toDashboardResponse(view viewmodel.Dashboard, snapshot models.Snapshot) dto.DashboardResponse {
	response := dto.DashboardResponse{
		Filter:    view.State.Filter,
		Customers: make([]dto.CustomerGroupResponse, len(view.Groups)),
		Meta: dto.DashboardMeta{
			VisibleCustomers: len(view.Groups),
			Rows:             view.RowCount(),
			LoadedAt:         snapshot.LoadedAt,
		},
	}

	for i, group := range view.Groups {
		response.Customers[i] = dto.CustomerGroupResponse{
			Customer:     group.Customer,
			Transactions: group.Transactions,
			RowSpan:      group.RowSpan(),
		}
	}

	if view.HasChart() {
		chart := toChartSeriesResponse(*view.Chart)
		response.Chart = &chart
	}

	return response
}

func toChartSeriesResponse(series models.ChartSeries) dto.ChartSeriesResponse {
	return dto.ChartSeriesResponse{
		ChartSeries: series,
		XAxisLabel:  viewmodel.ChartXAxisLabel,
		YAxisLabel:  viewmodel.ChartYAxisLabel,
	}
}

func toResourceStatuses(snapshot models.Snapshot) []dto.ResourceStatus {
	states := snapshot.States()
	statuses := make([]dto.ResourceStatus, len(states))
	for i, state := range states {
		statuses[i] = dto.ResourceStatus{
			Resource:  string(state.Resource),
			Loaded:    state.Loaded,
			Count:     state.Count,
			LastError: state.LastError,
			FetchedAt: state.FetchedAt,
		}
	}
	return statuses
}
