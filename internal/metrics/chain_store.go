package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainStoreOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chain_store",
		Name:      "operations_total",
		Help:      "Count of chain store operations.",
	}, []string{"operation", "backend", "status"})
	chainStoreOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "chain_store",
		Name:      "operation_duration_seconds",
		Help:      "Duration of chain store operations.",
		Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation", "backend", "status"})

	cacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chain_store",
		Name:      "cache_lookups_total",
		Help:      "Count of block cache lookups by result.",
	}, []string{"resource", "result"})
)

// ChainStore tracks metrics for one chain store backend.
type ChainStore struct {
	backend string
}

// NewChainStore creates a ChainStore metrics collector labelled with backend.
func NewChainStore(backend string) *ChainStore {
	if backend == "" {
		backend = "unknown"
	}
	return &ChainStore{backend: backend}
}

// Observe records duration and status of a store operation.
func (m ChainStore) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	chainStoreOperationsTotal.WithLabelValues(operation, m.backend, status).Inc()
	chainStoreOperationDuration.WithLabelValues(operation, m.backend, status).Observe(time.Since(started).Seconds())
}

// Cache counts block cache hits and misses.
type Cache struct{}

func NewCache() *Cache { return &Cache{} }

func (Cache) ObserveLookup(resource string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookupsTotal.WithLabelValues(resource, result).Inc()
}
