package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MarkdownRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workbench_markdown_renders_total",
			Help: "Total number of markdown transforms by outcome",
		},
		[]string{"outcome"},
	)

	QueryPreviews = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workbench_query_previews_total",
			Help: "Total number of query previews built per template",
		},
		[]string{"template"},
	)

	DescribeRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workbench_describe_requests_total",
			Help: "Total number of query builder describe calls by outcome",
		},
		[]string{"outcome"},
	)

	SavedResultLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workbench_saved_result_loads_total",
			Help: "Total number of saved result loads into a workbench by outcome",
		},
		[]string{"outcome"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "workbench_http_request_duration_seconds",
			Help:    "HTTP request latency per route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ComparisonsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "workbench_comparisons_active",
			Help: "Number of open comparison pages",
		},
	)
)
