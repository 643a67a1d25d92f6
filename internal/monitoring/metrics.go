// Package monitoring provides Prometheus metrics for the HTTP surface
// and the tool catalog.
package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Tool catalog metrics
	ToolCalls    *prometheus.CounterVec
	ToolDuration *prometheus.HistogramVec
	ToolErrors   *prometheus.CounterVec

	Uptime    prometheus.GaugeFunc
	startTime time.Time

	mu       sync.RWMutex
	snapshot Snapshot
}

// Snapshot holds aggregate values for the JSON summary endpoint.
type Snapshot struct {
	TotalRequests int64   `json:"total_requests"`
	TotalErrors   int64   `json:"total_errors"`
	TotalDuration float64 `json:"-"`
	RequestCount  int64   `json:"-"`
	AvgDurationMS float64 `json:"avg_duration_ms"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// New creates a metrics collector registered on reg. Tests pass their
// own registry to avoid default-registry collisions.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	m := &Metrics{startTime: time.Now()}

	m.RequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "browserd_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	m.RequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "browserd_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "path"},
	)
	m.ToolCalls = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "browserd_tool_calls_total",
			Help: "Total number of tool catalog calls",
		},
		[]string{"service", "tool", "status"},
	)
	m.ToolDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "browserd_tool_duration_seconds",
			Help:    "Tool call duration in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"service", "tool"},
	)
	m.ToolErrors = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "browserd_tool_errors_total",
			Help: "Total number of failed tool calls",
		},
		[]string{"service", "tool"},
	)
	m.Uptime = factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "browserd_uptime_seconds",
			Help: "Service uptime in seconds",
		},
		func() float64 { return time.Since(m.startTime).Seconds() },
	)

	return m
}

// RecordHTTPRequest records one HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())

	m.mu.Lock()
	m.snapshot.TotalRequests++
	if status >= "400" {
		m.snapshot.TotalErrors++
	}
	m.snapshot.TotalDuration += duration.Seconds()
	m.snapshot.RequestCount++
	m.mu.Unlock()
}

// RecordToolCall records one tool catalog call.
func (m *Metrics) RecordToolCall(service, tool, status string, duration time.Duration) {
	m.ToolCalls.WithLabelValues(service, tool, status).Inc()
	m.ToolDuration.WithLabelValues(service, tool).Observe(duration.Seconds())
	if status != "success" {
		m.ToolErrors.WithLabelValues(service, tool).Inc()
	}
}

// CurrentSnapshot returns aggregate values for the JSON summary.
func (m *Metrics) CurrentSnapshot() Snapshot {
	m.mu.RLock()
	snap := m.snapshot
	m.mu.RUnlock()

	if snap.RequestCount > 0 {
		snap.AvgDurationMS = snap.TotalDuration / float64(snap.RequestCount) * 1000
	}
	snap.UptimeSeconds = time.Since(m.startTime).Seconds()
	return snap
}
