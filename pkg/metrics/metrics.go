package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dictionary"

var (
	WordOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "word_operations_total", Help: "Word API operations by operation and outcome."},
		[]string{"op", "outcome"},
	)
	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{Namespace: namespace, Name: "search_results", Help: "Number of entries returned per search.", Buckets: []float64{0, 1, 5, 10, 25, 50}},
	)
	SearchCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "search_cache_total", Help: "Search cache lookups by result (hit, miss, error, bypass)."},
		[]string{"result"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(WordOperations)
	reg.MustRegister(SearchResults)
	reg.MustRegister(SearchCache)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
