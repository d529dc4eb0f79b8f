package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gwas_stats_requests_total",
		Help: "Association requests by outcome",
	}, []string{"outcome"})

	resolutionSelections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gwas_stats_resolution_selections_total",
		Help: "Genotype store resolution chosen per executed request",
	}, []string{"resolution"})

	requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gwas_stats_request_duration_seconds",
		Help:    "Time spent compiling and executing an association request",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 15), // 1ms to ~16s
	})

	variantsEvaluated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gwas_stats_variants_returned_total",
		Help: "Variant statistics returned to clients",
	})

	// mirrored as plain totals for the housekeeping summary
	served   uint64
	rejected uint64
)

func RecordSuccess(resolution string, seconds float64, variants int) {
	requestsTotal.WithLabelValues("success").Inc()
	resolutionSelections.WithLabelValues(resolution).Inc()
	requestDuration.Observe(seconds)
	variantsEvaluated.Add(float64(variants))
	atomic.AddUint64(&served, 1)
}

func RecordRejection() {
	requestsTotal.WithLabelValues("rejected").Inc()
	atomic.AddUint64(&rejected, 1)
}

func RecordFailure() {
	requestsTotal.WithLabelValues("failed").Inc()
}

// Totals returns the number of served and rejected requests so far
func Totals() (uint64, uint64) {
	return atomic.LoadUint64(&served), atomic.LoadUint64(&rejected)
}
