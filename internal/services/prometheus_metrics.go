package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counter names understood by PrometheusMetrics.
const (
	MetricOperationSuccess = "operation.success"
	MetricOperationFailed  = "operation.failed"
	MetricOperationInvalid = "operation.invalid"
)

type PrometheusMetrics struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
}

// NewPrometheusMetrics registers the finance series on reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_operations_total",
				Help: "Total number of store and dashboard operations",
			},
			[]string{"entity", "operation", "status"},
		),
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finance_operation_duration_milliseconds",
				Help:    "Store and dashboard operation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	entity := tags["entity"]
	operation := tags["operation"]

	switch name {
	case MetricOperationSuccess:
		m.operationsTotal.WithLabelValues(entity, operation, "success").Inc()
	case MetricOperationFailed:
		m.operationsTotal.WithLabelValues(entity, operation, "failed").Inc()
	case MetricOperationInvalid:
		m.operationsTotal.WithLabelValues(entity, operation, "invalid").Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	m.operationDuration.WithLabelValues(name).Observe(float64(duration.Milliseconds()))
}

// noopMetrics is used when a service is built without a recorder.
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(string, map[string]string) {}
func (noopMetrics) RecordProcessingTime(string, time.Duration) {}
