package services

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricDataSourceFetch     = "data_source_fetch"
	MetricReload              = "reload"
	MetricDashboardView       = "dashboard_view"
	MetricDashboardBuild      = "dashboard_build"
	MetricCollectionSize      = "collection_size"
	MetricCircuitBreakerState = "circuit_breaker_state"
)

type PrometheusMetrics struct {
	dataSourceFetchTotal    *prometheus.CounterVec
	dataSourceFetchDuration *prometheus.HistogramVec
	collectionSize          *prometheus.GaugeVec
	circuitBreakerState     *prometheus.GaugeVec
	reloadTotal             *prometheus.CounterVec
	dashboardViewsTotal     *prometheus.CounterVec
	dashboardBuildDuration  prometheus.Histogram
}

// NewPrometheusMetrics registers the dashboard metrics with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		dataSourceFetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "data_source_fetch_total",
				Help: "Total number of data source collection fetches",
			},
			[]string{"resource", "status"},
		),
		dataSourceFetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "data_source_fetch_duration_seconds",
				Help:    "Data source collection fetch duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"resource"},
		),
		collectionSize: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dashboard_collection_size",
				Help: "Number of records currently held per collection",
			},
			[]string{"resource"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		reloadTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_reload_total",
				Help: "Total number of reload requests by outcome",
			},
			[]string{"status"},
		),
		dashboardViewsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_views_total",
				Help: "Total number of dashboard views rendered by format",
			},
			[]string{"format"},
		),
		dashboardBuildDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_build_duration_milliseconds",
				Help:    "View-model build duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case MetricDataSourceFetch:
		if resource := tags["resource"]; resource != "" && status != "" {
			m.dataSourceFetchTotal.WithLabelValues(resource, status).Inc()
		}
	case MetricReload:
		if status != "" {
			m.reloadTotal.WithLabelValues(status).Inc()
		}
	case MetricDashboardView:
		if format := tags["format"]; format != "" {
			m.dashboardViewsTotal.WithLabelValues(format).Inc()
		}
	}
}

// RecordProcessingTime records durations. Fetch durations are named
// "data_source_fetch.<resource>".
func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch {
	case strings.HasPrefix(name, MetricDataSourceFetch+"."):
		resource := strings.TrimPrefix(name, MetricDataSourceFetch+".")
		m.dataSourceFetchDuration.WithLabelValues(resource).Observe(duration.Seconds())
	case name == MetricDashboardBuild:
		m.dashboardBuildDuration.Observe(float64(duration.Microseconds()) / 1000)
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricCollectionSize:
		if resource := tags["resource"]; resource != "" {
			m.collectionSize.WithLabelValues(resource).Set(value)
		}
	case MetricCircuitBreakerState:
		if service := tags["service"]; service != "" {
			m.circuitBreakerState.WithLabelValues(service).Set(value)
		}
	}
}
