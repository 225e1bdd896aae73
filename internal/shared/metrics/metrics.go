package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pipeline Prometheus metrics.
var (
	IngestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "research",
			Name:      "ingest_total",
			Help:      "Total ingest operations by outcome",
		},
		[]string{"status"}, // "completed" / "failed"
	)

	IngestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "research",
			Name:      "ingest_duration_seconds",
			Help:      "Ingest duration in seconds, summarization included",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	QueryTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "research",
			Name:      "query_total",
			Help:      "Total question queries by outcome",
		},
		[]string{"status"}, // "completed" / "failed"
	)

	QueryDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "research",
			Name:      "query_duration_seconds",
			Help:      "Query duration in seconds, backend call included",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	ParseFallbackTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "research",
			Name:      "parse_fallback_total",
			Help:      "Model replies that failed strict JSON decoding and went through degraded recovery",
		},
	)
)

var registered bool

// Register registers pipeline metrics with the default registry. Must be
// called once from bootstrap.
func Register() {
	if registered {
		return
	}
	registered = true
	prometheus.MustRegister(
		IngestTotal,
		IngestDuration,
		QueryTotal,
		QueryDuration,
		ParseFallbackTotal,
	)
}

// Handler exposes the default registry in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
