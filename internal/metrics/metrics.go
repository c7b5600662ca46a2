package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	GuidesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guides_generated_total",
			Help: "Total number of guides generated",
		},
		[]string{"model"},
	)

	GuidesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guides_failed_total",
			Help: "Total number of guide generation failures",
		},
		[]string{"stage"},
	)

	VerificationVerdicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verification_verdicts_total",
			Help: "Total number of per-provider verification verdicts",
		},
		[]string{"provider", "status"},
	)

	SearchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Total number of source search requests",
		},
		[]string{"provider", "status"},
	)

	QueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "generate_queue_depth",
			Help: "Number of guide requests waiting in the generate queue",
		},
	)
)

// PrometheusMiddleware records request counts and latency for every route.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())

		HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
		HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
	}
}
