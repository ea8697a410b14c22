package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shieldledger"

var (
	serviceRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "service",
		Name:      "requests_total",
		Help:      "Count of queued write requests applied by the consumer.",
	}, []string{"kind", "status"})

	serviceApplyDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "service",
		Name:      "apply_duration_seconds",
		Help:      "Duration of applying a write request under the exclusive lock.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind", "status"})

	serviceReadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "service",
		Name:      "reads_total",
		Help:      "Count of ledger reads.",
	}, []string{"operation", "status"})

	serviceReadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "service",
		Name:      "read_duration_seconds",
		Help:      "Duration of ledger reads under the shared lock.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})

	serviceQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "service",
		Name:      "queue_depth",
		Help:      "Number of write requests waiting for the consumer.",
	})
)

// Service tracks metrics for the ledger service core.
type Service struct{}

// NewService constructs a Service metrics collector.
func NewService() *Service {
	return &Service{}
}

// ObserveRequest records the outcome and duration of an applied write.
func (Service) ObserveRequest(kind string, err error, started time.Time) {
	status := statusLabel(err)
	serviceRequestsTotal.WithLabelValues(kind, status).Inc()
	serviceApplyDuration.WithLabelValues(kind, status).Observe(time.Since(started).Seconds())
}

// ObserveRead records the outcome and duration of a read.
func (Service) ObserveRead(operation string, err error, started time.Time) {
	status := statusLabel(err)
	serviceReadsTotal.WithLabelValues(operation, status).Inc()
	serviceReadDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

func (Service) SetQueueDepth(depth int) {
	serviceQueueDepth.Set(float64(depth))
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
