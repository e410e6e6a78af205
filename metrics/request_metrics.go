package metrics

import (
	"runtime"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RequestMetricsCollector holds the Prometheus collectors for HTTP
// request metrics. Registered once per process.
type RequestMetricsCollector struct {
	Requests *prometheus.CounterVec
	Errors   *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

var requestCollector *RequestMetricsCollector

func getRequestCollector() *RequestMetricsCollector {
	if requestCollector == nil {
		requestCollector = &RequestMetricsCollector{
			Requests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "directory_http_requests_total",
					Help: "The total number of HTTP requests processed",
				},
				[]string{"outcome"},
			),
			Errors: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "directory_http_errors_total",
					Help: "The total number of HTTP requests that ended in error",
				},
				[]string{"outcome"},
			),
			Duration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "directory_http_request_duration_seconds",
					Help:    "HTTP request duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"outcome"},
			),
		}
	}
	return requestCollector
}

// RequestStats is a snapshot of the aggregated request metrics.
type RequestStats struct {
	RequestCount        int64   `json:"request_count"`
	AverageResponseTime float64 `json:"average_response_time_ms"`
	ErrorCount          int64   `json:"error_count"`
	ErrorRate           float64 `json:"error_rate_percent"`
	MemoryAllocBytes    uint64  `json:"memory_alloc_bytes"`
	MemorySysBytes      uint64  `json:"memory_sys_bytes"`
}

// RequestMetrics aggregates per-request latency and error counts.
// Process-wide state, reset only on restart; RecordRequest never fails.
type RequestMetrics struct {
	mu                sync.RWMutex
	requestCount      int64
	totalResponseTime time.Duration
	errorCount        int64
	collector         *RequestMetricsCollector
}

// NewRequestMetrics creates a request metrics aggregator.
func NewRequestMetrics() *RequestMetrics {
	return &RequestMetrics{
		collector: getRequestCollector(),
	}
}

// RecordRequest records a completed request's elapsed time and whether
// its outcome was an error. Outcome classification is the caller's
// responsibility; this component only aggregates.
func (m *RequestMetrics) RecordRequest(responseTime time.Duration, hasError bool) {
	m.mu.Lock()
	m.requestCount++
	m.totalResponseTime += responseTime
	if hasError {
		m.errorCount++
	}
	m.mu.Unlock()

	outcome := "ok"
	if hasError {
		outcome = "error"
		m.collector.Errors.WithLabelValues(outcome).Inc()
	}
	m.collector.Requests.WithLabelValues(outcome).Inc()
	m.collector.Duration.WithLabelValues(outcome).Observe(responseTime.Seconds())
}

// GetStats returns the derived snapshot. Pure read, safe to call
// concurrently with RecordRequest.
func (m *RequestMetrics) GetStats() RequestStats {
	m.mu.RLock()
	count := m.requestCount
	total := m.totalResponseTime
	errs := m.errorCount
	m.mu.RUnlock()

	var avg float64
	var errorRate float64
	if count > 0 {
		avg = float64(total.Milliseconds()) / float64(count)
		errorRate = float64(errs) / float64(count) * 100
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return RequestStats{
		RequestCount:        count,
		AverageResponseTime: avg,
		ErrorCount:          errs,
		ErrorRate:           errorRate,
		MemoryAllocBytes:    mem.Alloc,
		MemorySysBytes:      mem.Sys,
	}
}
