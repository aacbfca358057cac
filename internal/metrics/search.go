package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search and assistant Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "foliodex",
			Name:      "searches_total",
			Help:      "Total number of catalog searches",
		},
		[]string{"source"}, // "api" / "assistant"
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "foliodex",
			Name:      "search_duration_seconds",
			Help:      "Catalog search duration in seconds",
			Buckets:   []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
		},
	)

	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "foliodex",
			Name:      "search_results",
			Help:      "Number of projects returned per search",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)

	AssistantRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "foliodex",
			Name:      "assistant_requests_total",
			Help:      "Total number of assistant completions",
		},
		[]string{"model", "status"},
	)

	AssistantRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "foliodex",
			Name:      "assistant_request_duration_seconds",
			Help:      "Assistant completion duration in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"model"},
	)

	AssistantTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "foliodex",
			Name:      "assistant_tokens_total",
			Help:      "Total assistant tokens consumed",
		},
		[]string{"model", "type"}, // "prompt" / "completion"
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers search and assistant metrics.
// Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchResults)
	prometheus.MustRegister(AssistantRequestsTotal)
	prometheus.MustRegister(AssistantRequestDuration)
	prometheus.MustRegister(AssistantTokensTotal)
	searchMetricsRegistered = true
}
