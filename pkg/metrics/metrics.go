package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ghcm_requests_total",
			Help: "Total chart requests processed",
		},
		[]string{"status"},
	)

	GitHubCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ghcm_github_calls_total",
			Help: "Upstream GitHub API calls",
		},
		[]string{"kind", "outcome"},
	)

	RenderDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ghcm_render_duration_seconds",
			Help:    "Time spent merging and rendering a chart",
			Buckets: prometheus.DefBuckets,
		},
	)

	ChartCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ghcm_chart_cache_hits_total",
			Help: "Rendered chart cache hits",
		},
	)

	ChartCacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ghcm_chart_cache_misses_total",
			Help: "Rendered chart cache misses",
		},
	)
)

// Register adds all collectors to the default registry.
func Register() {
	prometheus.MustRegister(
		RequestsTotal,
		GitHubCallsTotal,
		RenderDuration,
		ChartCacheHits,
		ChartCacheMisses,
	)
}
