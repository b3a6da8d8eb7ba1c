package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus collectors
type Metrics struct {
	// RequestTotal counts HTTP requests by method, route and status.
	RequestTotal *prometheus.CounterVec
	// RequestDuration is the latency of HTTP requests.
	RequestDuration *prometheus.HistogramVec
	// AuthEvents counts register/login/logout outcomes.
	AuthEvents *prometheus.CounterVec
	// ToolOperations counts tool operations by kind and outcome.
	ToolOperations *prometheus.CounterVec
}

// New registers the collectors on reg
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RequestTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "femaqua_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "femaqua_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		AuthEvents: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "femaqua_auth_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event", "outcome"},
		),
		ToolOperations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "femaqua_tool_operations_total",
				Help: "Total number of tool operations",
			},
			[]string{"operation", "outcome"},
		),
	}
}

// Middleware records request count and duration. Routes are labelled by
// their pattern so ids don't blow up cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.RequestTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// AuthEvent records an authentication event
func (m *Metrics) AuthEvent(event string, err error) {
	m.AuthEvents.WithLabelValues(event, outcome(err)).Inc()
}

// ToolOperation records a tool operation
func (m *Metrics) ToolOperation(operation string, err error) {
	m.ToolOperations.WithLabelValues(operation, outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
