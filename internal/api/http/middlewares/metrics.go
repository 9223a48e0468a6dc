package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "phicalc",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "phicalc",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "phicalc",
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	scaleComputeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "phicalc",
			Name:      "scale_compute_total",
			Help:      "Scale computations by kind and cache outcome",
		},
		[]string{"kind", "cached"},
	)

	operationsByKind = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "phicalc",
			Name:      "operations_by_kind",
			Help:      "Computed operations by kind, as stored in analytics",
		},
		[]string{"kind"},
	)
)

// SetOperationsByKind выставляет число расчётов вида kind из аналитики.
func SetOperationsByKind(kind string, count uint64) {
	operationsByKind.WithLabelValues(kind).Set(float64(count))
}

// ObserveCompute учитывает расчёт шкалы вида kind (из кэша или посчитанный).
func ObserveCompute(kind string, cached bool) {
	scaleComputeTotal.WithLabelValues(kind, strconv.FormatBool(cached)).Inc()
}

// PrometheusMetrics считает запросы, длительность и запросы в обработке. /metrics не учитывается.
func PrometheusMetrics(c *gin.Context) {
	if c.Request.URL.Path == "/metrics" {
		c.Next()
		return
	}

	httpRequestsInFlight.Inc()
	start := time.Now()

	c.Next()

	duration := time.Since(start).Seconds()
	status := strconv.Itoa(c.Writer.Status())
	path := c.FullPath()
	if path == "" {
		path = "unknown"
	}

	httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	httpRequestsInFlight.Dec()
}
