package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "api_client",
		Name:      "requests_total",
		Help:      "Count of explorer backend requests.",
	}, []string{"backend", "operation", "status"})
	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "api_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of explorer backend requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"backend", "operation", "status"})
)

// APIClient tracks metrics for calls to the explorer backend.
type APIClient struct {
	backend string
}

// NewAPIClient constructs a collector labelled with the backend host.
func NewAPIClient(backend string) *APIClient {
	if backend == "" {
		backend = unknown
	}
	return &APIClient{backend: backend}
}

// Observe records a single backend call outcome and duration.
func (m APIClient) Observe(operation string, err error, started time.Time) {
	s := status(err)
	apiRequestsTotal.WithLabelValues(m.backend, operation, s).Inc()
	apiRequestDuration.WithLabelValues(m.backend, operation, s).Observe(time.Since(started).Seconds())
}
