package services

import (
	"context"
	"time"

	"customer-dashboard/internal/models"
	"customer-dashboard/internal/viewmodel"
)

// DataSourceInterface fetches the raw collections from the data source
type DataSourceInterface interface {
	FetchCustomers(ctx context.Context) ([]models.Customer, error)
	FetchTransactions(ctx context.Context) ([]models.Transaction, error)
}

// DashboardServiceInterface holds the fetched collections for the session and
// derives view-models from them
type DashboardServiceInterface interface {
	// Load fetches both collections concurrently. Failures are logged and leave
	// the affected collection unchanged.
	Load(ctx context.Context) models.LoadResult

	// Reload re-runs Load unless the data source circuit is open
	Reload(ctx context.Context) (models.LoadResult, error)

	Snapshot() models.Snapshot
	View(state models.DashboardState) viewmodel.Dashboard
	CustomerTransactions(customerID models.ID) (models.Customer, []models.Transaction, error)
	Series(customerID models.ID) (models.ChartSeries, error)
	CircuitState() models.CircuitBreakerState
}

// CircuitBreakerInterface guards calls to the data source
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// DashboardLoggerInterface emits structured dashboard events
type DashboardLoggerInterface interface {
	LogDataLoadStarted(ctx context.Context, trigger string)
	LogFetchSucceeded(ctx context.Context, resource models.Resource, count int, durationMs int64)
	LogFetchFailed(ctx context.Context, resource models.Resource, errorMsg string, durationMs int64)
	LogDataLoadCompleted(ctx context.Context, customers, transactions int, failed []models.Resource, durationMs int64)
	LogReloadRejected(ctx context.Context, reason string)
	LogValidationFailure(ctx context.Context, operation string, errorMsg string)
}
