package services

import (
	"context"
	"log/slog"
	"time"

	"customer-dashboard/internal/models"
)

type contextKey string

// RequestIDContextKey carries the request trace ID in a context.Context
const RequestIDContextKey contextKey = "request_id"

// ContextWithRequestID returns a copy of ctx carrying requestID
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDContextKey, requestID)
}

// DashboardLogger provides structured logging for data loading and dashboard operations
type DashboardLogger struct {
	logger *slog.Logger
}

// NewDashboardLogger creates a new dashboard logger
func NewDashboardLogger(logger *slog.Logger) DashboardLoggerInterface {
	return &DashboardLogger{
		logger: logger,
	}
}

// LogDataLoadStarted logs the start of a load of both collections
func (dl *DashboardLogger) LogDataLoadStarted(ctx context.Context, trigger string) {
	dl.logger.InfoContext(ctx, "data load started",
		slog.String("event_type", "data_load_started"),
		slog.String("trigger", trigger),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogFetchSucceeded logs a successful collection fetch
func (dl *DashboardLogger) LogFetchSucceeded(ctx context.Context, resource models.Resource, count int, durationMs int64) {
	dl.logger.InfoContext(ctx, "data source fetch succeeded",
		slog.String("event_type", "data_source_fetch_succeeded"),
		slog.String("resource", string(resource)),
		slog.Int("count", count),
		slog.Int64("duration_ms", durationMs),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogFetchFailed logs a failed collection fetch. The collection keeps its previous contents.
func (dl *DashboardLogger) LogFetchFailed(ctx context.Context, resource models.Resource, errorMsg string, durationMs int64) {
	dl.logger.ErrorContext(ctx, "data source fetch failed",
		slog.String("event_type", "data_source_fetch_failed"),
		slog.String("resource", string(resource)),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogDataLoadCompleted logs the end of a load
func (dl *DashboardLogger) LogDataLoadCompleted(ctx context.Context, customers, transactions int, failed []models.Resource, durationMs int64) {
	level := slog.LevelInfo
	if len(failed) > 0 {
		level = slog.LevelWarn
	}

	failedNames := make([]string, len(failed))
	for i, r := range failed {
		failedNames[i] = string(r)
	}

	dl.logger.Log(ctx, level, "data load completed",
		slog.String("event_type", "data_load_completed"),
		slog.Int("customers", customers),
		slog.Int("transactions", transactions),
		slog.Any("failed_resources", failedNames),
		slog.Int64("duration_ms", durationMs),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogReloadRejected logs a reload refused without contacting the data source
func (dl *DashboardLogger) LogReloadRejected(ctx context.Context, reason string) {
	dl.logger.WarnContext(ctx, "reload rejected",
		slog.String("event_type", "reload_rejected"),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogValidationFailure logs validation failures
func (dl *DashboardLogger) LogValidationFailure(ctx context.Context, operation string, errorMsg string) {
	dl.logger.WarnContext(ctx, "validation failure",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(RequestIDContextKey).(string); ok {
		return requestID
	}
	return ""
}
