package http

import (
	"request-metrics/internal/shared/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// httpMetrics holds the application router's request counter. Latency is
// recorded separately by the instrument package.
type httpMetrics struct {
	requestsTotal *prometheus.CounterVec
}

func newHTTPMetrics(factory promauto.Factory) *httpMetrics {
	return &httpMetrics{
		requestsTotal: factory.NewCounterVec(
			metrics.CounterOpts{
				Namespace: metrics.Namespace,
				Subsystem: metrics.SubHTTP,
				Name:      "requests_total",
				Help:      "HTTP requests handled by the application, by route, status and error code.",
			},
			[]string{"method", "path", "status", metrics.FieldErrorCode},
		),
	}
}
