package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus metrics for the portfolio server.
//
// All metrics are prefixed with "portfolio_":
//   - portfolio_http_requests_total{method,route,status}
//   - portfolio_http_request_duration_seconds{method,route}
//   - portfolio_project_operations_total{operation,result}
//   - portfolio_uploaded_bytes_total
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal      *prometheus.CounterVec
	HTTPRequestDuration    *prometheus.HistogramVec
	ProjectOperationsTotal *prometheus.CounterVec
	UploadedBytesTotal     prometheus.Counter
}

// New registers the metrics on a fresh registry, together with the Go and process collectors.
// Each call gets its own registry so tests can build several servers in one process.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_http_requests_total",
				Help: "Total number of HTTP requests handled",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portfolio_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		ProjectOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_project_operations_total",
				Help: "Project create/update/delete operations by result",
			},
			[]string{"operation", "result"}, // result: "ok", "invalid", "not_found", "error"
		),
		UploadedBytesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "portfolio_uploaded_bytes_total",
				Help: "Bytes of image data written to the upload directory",
			},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// GinMiddleware counts requests by matched route pattern
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// ObserveProjectOperation is safe to call on a nil *Metrics
func (m *Metrics) ObserveProjectOperation(operation, result string) {
	if m == nil {
		return
	}
	m.ProjectOperationsTotal.WithLabelValues(operation, result).Inc()
}

// AddUploadedBytes is safe to call on a nil *Metrics
func (m *Metrics) AddUploadedBytes(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.UploadedBytesTotal.Add(float64(n))
}
