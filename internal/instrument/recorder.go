package instrument

import (
	"fmt"

	"request-metrics/internal/shared/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	LabelHandler    = "handler"
	LabelMethod     = "method"
	LabelStatusCode = "status_code"

	latencyMetricName = "http_request_duration_seconds"
	latencyMetricHelp = "The HTTP request latencies in seconds."
)

// LatencyRecorder owns the request latency histogram.
type LatencyRecorder struct {
	histogram *prometheus.HistogramVec
}

// NewLatencyRecorder registers the latency histogram with reg, or picks up the one
// already registered there. Empty buckets select prometheus.DefBuckets.
func NewLatencyRecorder(reg prometheus.Registerer, buckets []float64) (*LatencyRecorder, error) {
	if len(buckets) == 0 {
		buckets = metrics.DefBuckets
	}
	histogram, err := metrics.RegisterHistogramVec(reg, metrics.HistogramOpts{
		Name:    latencyMetricName,
		Help:    latencyMetricHelp,
		Buckets: buckets,
	}, []string{LabelHandler, LabelMethod, LabelStatusCode})
	if err != nil {
		return nil, fmt.Errorf("latency recorder: %w", err)
	}
	return &LatencyRecorder{histogram: histogram}, nil
}

// Observe records one latency sample. An empty method or status stands for
// "not applicable", as for instrumented operations.
func (l *LatencyRecorder) Observe(handler, method, status string, seconds float64) {
	l.histogram.WithLabelValues(handler, method, status).Observe(seconds)
}
