package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"customer-dashboard/internal/models"
	"customer-dashboard/internal/viewmodel"

	"golang.org/x/sync/errgroup"
)

var (
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrDataSourceUnavailable = errors.New("data source unavailable")
	ErrDataNotLoaded         = errors.New("data has not been loaded yet")
)

// Load triggers
const (
	TriggerStartup = "startup"
	TriggerReload  = "reload"
)

// DashboardService holds the customer and transaction collections for the
// life of the process and builds dashboard views from them.
type DashboardService struct {
	source  DataSourceInterface
	breaker CircuitBreakerInterface
	metrics MetricsRecorderInterface
	logger  DashboardLoggerInterface

	loadMu sync.Mutex

	mu           sync.RWMutex
	customers    []models.Customer
	transactions []models.Transaction
	states       map[models.Resource]models.ResourceState
	loadedAt     *time.Time
}

func NewDashboardService(
	source DataSourceInterface,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger DashboardLoggerInterface,
) DashboardServiceInterface {
	return &DashboardService{
		source:       source,
		breaker:      breaker,
		metrics:      metrics,
		logger:       logger,
		customers:    []models.Customer{},
		transactions: []models.Transaction{},
		states: map[models.Resource]models.ResourceState{
			models.ResourceCustomers:    {Resource: models.ResourceCustomers},
			models.ResourceTransactions: {Resource: models.ResourceTransactions},
		},
	}
}

// Load fetches both collections concurrently. A failed fetch is logged and
// leaves its collection as it was; the other fetch is unaffected.
func (s *DashboardService) Load(ctx context.Context) models.LoadResult {
	return s.load(ctx, TriggerStartup)
}

// Reload re-runs a load unless the circuit breaker is open
func (s *DashboardService) Reload(ctx context.Context) (models.LoadResult, error) {
	if s.breaker.IsOpen() {
		s.logger.LogReloadRejected(ctx, ErrCircuitBreakerOpen.Error())
		s.metrics.IncrementCounter(MetricReload, map[string]string{"status": "rejected"})
		return models.LoadResult{}, fmt.Errorf("%w: %w", ErrDataSourceUnavailable, ErrCircuitBreakerOpen)
	}

	result := s.load(ctx, TriggerReload)

	status := "success"
	if len(result.Failed()) > 0 {
		status = "partial"
	}
	if result.AllFailed() {
		status = "failed"
	}
	s.metrics.IncrementCounter(MetricReload, map[string]string{"status": status})

	return result, nil
}

func (s *DashboardService) load(ctx context.Context, trigger string) models.LoadResult {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	start := time.Now()
	s.logger.LogDataLoadStarted(ctx, trigger)

	var result models.LoadResult
	var g errgroup.Group

	g.Go(func() error {
		customers, outcome := runFetch(ctx, s, models.ResourceCustomers, s.source.FetchCustomers)
		result.Customers = outcome
		if outcome.OK() {
			s.mu.Lock()
			s.customers = customers
			s.mu.Unlock()
		}
		s.recordOutcome(outcome)
		return nil
	})

	g.Go(func() error {
		transactions, outcome := runFetch(ctx, s, models.ResourceTransactions, s.source.FetchTransactions)
		result.Transactions = outcome
		if outcome.OK() {
			s.mu.Lock()
			s.transactions = transactions
			s.mu.Unlock()
		}
		s.recordOutcome(outcome)
		return nil
	})

	_ = g.Wait()

	if len(result.Failed()) > 0 {
		s.breaker.RecordFailure()
	} else {
		s.breaker.RecordSuccess()
	}
	s.metrics.RecordGauge(MetricCircuitBreakerState, float64(s.breaker.GetState()), map[string]string{"service": "data_source"})

	s.mu.Lock()
	now := time.Now()
	s.loadedAt = &now
	customerCount, transactionCount := len(s.customers), len(s.transactions)
	s.mu.Unlock()

	s.logger.LogDataLoadCompleted(ctx, customerCount, transactionCount, result.Failed(), time.Since(start).Milliseconds())

	return result
}

// runFetch performs one collection fetch and reports its outcome
func runFetch[M any](ctx context.Context, s *DashboardService, resource models.Resource, fetch func(context.Context) ([]M, error)) ([]M, models.FetchOutcome) {
	start := time.Now()
	items, err := fetch(ctx)
	duration := time.Since(start)

	outcome := models.FetchOutcome{
		Resource:  resource,
		Count:     len(items),
		Err:       err,
		FetchedAt: time.Now(),
		Duration:  duration,
	}

	s.metrics.RecordProcessingTime(MetricDataSourceFetch+"."+string(resource), duration)

	if err != nil {
		outcome.Count = 0
		s.logger.LogFetchFailed(ctx, resource, err.Error(), duration.Milliseconds())
		s.metrics.IncrementCounter(MetricDataSourceFetch, map[string]string{"resource": string(resource), "status": "failure"})
		return nil, outcome
	}

	if items == nil {
		items = []M{}
	}

	s.logger.LogFetchSucceeded(ctx, resource, len(items), duration.Milliseconds())
	s.metrics.IncrementCounter(MetricDataSourceFetch, map[string]string{"resource": string(resource), "status": "success"})
	return items, outcome
}

func (s *DashboardService) recordOutcome(outcome models.FetchOutcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.states[outcome.Resource]
	state.Resource = outcome.Resource
	if outcome.OK() {
		fetchedAt := outcome.FetchedAt
		state.Loaded = true
		state.Count = outcome.Count
		state.LastError = ""
		state.FetchedAt = &fetchedAt
	} else {
		state.LastError = outcome.Err.Error()
	}
	s.states[outcome.Resource] = state

	s.metrics.RecordGauge(MetricCollectionSize, float64(state.Count), map[string]string{"resource": string(outcome.Resource)})
}

// Snapshot returns copies of the held collections
func (s *DashboardService) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := models.Snapshot{
		Customers:         slices.Clone(s.customers),
		Transactions:      slices.Clone(s.transactions),
		CustomersState:    s.states[models.ResourceCustomers],
		TransactionsState: s.states[models.ResourceTransactions],
	}
	if s.loadedAt != nil {
		loadedAt := *s.loadedAt
		snapshot.LoadedAt = &loadedAt
	}
	return snapshot
}

// View builds the dashboard for state from the held collections
func (s *DashboardService) View(state models.DashboardState) viewmodel.Dashboard {
	start := time.Now()

	s.mu.RLock()
	dashboard := viewmodel.Build(s.customers, s.transactions, state)
	s.mu.RUnlock()

	s.metrics.RecordProcessingTime(MetricDashboardBuild, time.Since(start))
	return dashboard
}

// CustomerTransactions returns the customer and its transactions in source order.
// Before the first load completes every lookup fails with ErrDataNotLoaded.
func (s *DashboardService) CustomerTransactions(customerID models.ID) (models.Customer, []models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.loadedAt == nil {
		return models.Customer{}, nil, ErrDataNotLoaded
	}

	customer, ok := viewmodel.FindCustomer(s.customers, customerID)
	if !ok {
		return models.Customer{}, nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, customerID)
	}
	return customer, viewmodel.TransactionsFor(s.transactions, customerID), nil
}

// Series returns the chart series for a customer
func (s *DashboardService) Series(customerID models.ID) (models.ChartSeries, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.loadedAt == nil {
		return models.ChartSeries{}, ErrDataNotLoaded
	}

	customer, ok := viewmodel.FindCustomer(s.customers, customerID)
	if !ok {
		return models.ChartSeries{}, fmt.Errorf("%w: %s", ErrCustomerNotFound, customerID)
	}
	return viewmodel.SelectCustomerSeries(customer.ID, customer.Name, s.transactions), nil
}

func (s *DashboardService) CircuitState() models.CircuitBreakerState {
	return s.breaker.GetState()
}
