package services

import (
	"log/slog"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
)

const (
	entityCategory    = "category"
	entityTransaction = "transaction"
	entityDebt        = "debt"
	entityInvestment  = "investment"
	entityDashboard   = "dashboard"
)

// operationTracker times one store operation and reports its outcome once.
type operationTracker struct {
	metrics   MetricsRecorderInterface
	entity    string
	operation string
	start     time.Time
}

func track(metrics MetricsRecorderInterface, entity, operation string) *operationTracker {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &operationTracker{metrics: metrics, entity: entity, operation: operation, start: time.Now()}
}

func (t *operationTracker) done(name string) {
	t.metrics.RecordProcessingTime(t.entity+"."+t.operation, time.Since(t.start))
	t.metrics.IncrementCounter(name, map[string]string{
		"entity":    t.entity,
		"operation": t.operation,
	})
}

func (t *operationTracker) success() {
	t.done(MetricOperationSuccess)
}

// invalid logs and counts a rejected input and returns it as an AppError.
func (t *operationTracker) invalid(logger *slog.Logger, code errors.ErrorCode, message string) *errors.AppError {
	logger.Warn("rejected invalid input",
		"entity", t.entity,
		"operation", t.operation,
		"code", code,
		"reason", message,
	)
	t.done(MetricOperationInvalid)
	return errors.NewValidationError(code, message)
}

// failed logs and counts a storage failure and returns it as an AppError.
func (t *operationTracker) failed(logger *slog.Logger, err error) *errors.AppError {
	logger.Error("storage operation failed",
		"entity", t.entity,
		"operation", t.operation,
		"error", err,
	)
	t.done(MetricOperationFailed)
	return errors.NewStorageError(err)
}

// result turns an AppError into the failure outcome of a mutating operation.
func result(err *errors.AppError) dto.OperationResult {
	return dto.Failed(err.Code, err.Message)
}
