package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	monitorRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "network_monitor",
		Name:      "refresh_total",
		Help:      "Count of network info refreshes.",
	}, []string{"backend", "status"})

	monitorRefreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "network_monitor",
		Name:      "refresh_duration_seconds",
		Help:      "Duration of network info refreshes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"backend", "status"})

	monitorLastBlock = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "network_monitor",
		Name:      "last_block",
		Help:      "Last block height reported by the backend.",
	}, []string{"backend"})

	monitorMempoolSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "network_monitor",
		Name:      "mempool_size",
		Help:      "Mempool transaction count reported by the backend.",
	}, []string{"backend"})
)

// NetworkMonitor tracks the periodic network info refresh.
type NetworkMonitor struct {
	backend string
}

func NewNetworkMonitor(backend string) *NetworkMonitor {
	if backend == "" {
		backend = unknown
	}
	return &NetworkMonitor{backend: backend}
}

// ObserveRefresh records a refresh outcome and its duration as measured by the caller's clock.
func (m NetworkMonitor) ObserveRefresh(err error, elapsed time.Duration) {
	s := status(err)
	monitorRefreshTotal.WithLabelValues(m.backend, s).Inc()
	monitorRefreshDuration.WithLabelValues(m.backend, s).Observe(elapsed.Seconds())
}

// ObserveSnapshot publishes the values of the latest accepted snapshot.
func (m NetworkMonitor) ObserveSnapshot(lastBlock, mempoolSize int64) {
	monitorLastBlock.WithLabelValues(m.backend).Set(float64(lastBlock))
	monitorMempoolSize.WithLabelValues(m.backend).Set(float64(mempoolSize))
}
