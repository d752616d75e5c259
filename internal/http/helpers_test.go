package http

import (
	"testing"

	"request-metrics/internal/instrument"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

// testMetrics bundles an isolated registry with the instrumentation built on it.
type testMetrics struct {
	reg   *prometheus.Registry
	instr *instrument.Instrumenter
	http  *httpMetrics
}

func newTestMetrics(t *testing.T) *testMetrics {
	t.Helper()

	reg := prometheus.NewRegistry()
	recorder, err := instrument.NewLatencyRecorder(reg, nil)
	require.NoError(t, err)

	return &testMetrics{
		reg:   reg,
		instr: instrument.NewInstrumenter(recorder, nil),
		http:  newHTTPMetrics(promauto.With(reg)),
	}
}

// latencySeries returns the handler label -> sample count of the latency histogram.
func (m *testMetrics) latencySeries(t *testing.T) map[string]uint64 {
	t.Helper()

	families, err := m.reg.Gather()
	require.NoError(t, err)

	series := map[string]uint64{}
	for _, mf := range families {
		if mf.GetName() != "http_request_duration_seconds" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, lp := range metric.GetLabel() {
				if lp.GetName() == instrument.LabelHandler {
					series[lp.GetValue()] += metric.GetHistogram().GetSampleCount()
				}
			}
		}
	}
	return series
}

func (m *testMetrics) requestCount(method, path, status, errorCode string) float64 {
	return testutil.ToFloat64(m.http.requestsTotal.WithLabelValues(method, path, status, errorCode))
}
