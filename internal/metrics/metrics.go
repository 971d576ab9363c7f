package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// balance computations
	BalanceComputations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_balance_computations_total",
			Help: "Worker balance computations by result",
		},
		[]string{"result"}, // ok|error
	)
	MalformedRows = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_malformed_rows_total",
			Help: "Rows whose monetary field could not be parsed and counted as zero",
		},
		[]string{"collection"},
	)
	WorkerBalance = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pos_worker_balance",
			Help: "Net balance per worker as of the last scheduled refresh",
		},
		[]string{"worker_id"},
	)

	// worker pool
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)

	initOnce sync.Once
)

// Handler serves /metrics.
var Handler = promhttp.Handler

// Init registers the collectors with the default registry. Safe to call more
// than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestsTotal,
			RequestLatency,
			BalanceComputations,
			MalformedRows,
			WorkerBalance,
			WorkerQueueDepth,
		)
	})
}
