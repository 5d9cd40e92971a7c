package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_http_requests_total",
		Help: "Total HTTP requests by method, route and status code.",
	}, []string{"method", "path", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
	}, []string{"method", "path"})

	errorResponsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_http_error_responses_total",
		Help: "Error responses by classification branch.",
	}, []string{"class"})
)

// Metrics records request counts, latencies and error classifications.
// Register it outermost so it observes the final written status.
func (m Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()

		requestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).Inc()
		requestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
		if status >= http.StatusBadRequest {
			errorResponsesTotal.WithLabelValues(errorClass(status)).Inc()
		}
	}
}

// errorClass maps a response status to the classifier branch that
// produced it, for operator-facing counters.
func errorClass(status int) string {
	switch {
	case status == http.StatusConflict:
		return "conflict"
	case status == http.StatusNotFound:
		return "not_found"
	case status == http.StatusBadRequest:
		return "validation"
	case status >= http.StatusInternalServerError:
		return "internal"
	default:
		return "application"
	}
}
