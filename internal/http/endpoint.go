package http

import (
	"net/http"
	"strings"

	"request-metrics/internal/instrument"
	"request-metrics/internal/shared/metrics"
)

const (
	handlerApp        = "app"
	handlerPrometheus = "prometheus"
)

// EndpointSettings configures the metrics endpoint.
type EndpointSettings struct {
	// Prefix is the path, as segments, under which metrics are served.
	Prefix []string
	// InstrumentApp records every delegated request under handler "app",
	// skipping hijacked connections. Leave it off when app measures its own
	// routes, or each request is observed twice.
	InstrumentApp bool
	// InstrumentEndpoint records metrics endpoint requests under handler "prometheus".
	InstrumentEndpoint bool
}

// DefaultEndpointSettings serves metrics under /metrics and times the endpoint
// itself. The application is expected to measure its own routes.
func DefaultEndpointSettings() EndpointSettings {
	return EndpointSettings{
		Prefix:             []string{"metrics"},
		InstrumentEndpoint: true,
	}
}

// NewMetricsEndpoint serves GET <prefix> and GET <prefix>/<namespace...> from
// exporter and hands every other request to app unchanged. A nil instr turns
// both instrumentation switches off.
func NewMetricsEndpoint(settings EndpointSettings, exporter Exporter, instr *instrument.Instrumenter, app http.Handler) http.Handler {
	return newMetricsEndpoint(settings, exporter, instr, app, nil)
}

// newMetricsEndpoint is NewMetricsEndpoint with mw applied to the metrics
// branch only; delegated requests never pass through it.
func newMetricsEndpoint(settings EndpointSettings, exporter Exporter, instr *instrument.Instrumenter, app http.Handler, mw func(http.Handler) http.Handler) http.Handler {
	var serveMetrics http.Handler = errorHandlingAdapter(&metricsHandler{
		prefix:   settings.Prefix,
		exporter: exporter,
	})
	if mw != nil {
		serveMetrics = mw(serveMetrics)
	}

	if instr != nil {
		if settings.InstrumentApp {
			app = instr.Request(instrument.IgnoreRaw, instrument.Constant(handlerApp), app)
		}
		if settings.InstrumentEndpoint {
			serveMetrics = instr.FixedHandler(handlerPrometheus, serveMetrics)
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if MatchRoute(settings.Prefix, r).Kind == RouteDelegate {
			app.ServeHTTP(w, r)
			return
		}
		serveMetrics.ServeHTTP(w, r)
	})
}

type metricsHandler struct {
	prefix   []string
	exporter Exporter
}

// Handle serves the namespace listing or a namespace export.
func (h *metricsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	match := MatchRoute(h.prefix, r)
	if match.Kind == RouteList {
		var b strings.Builder
		for _, ns := range h.exporter.Namespaces() {
			b.WriteString(ns)
			b.WriteByte('\n')
		}
		writeMetrics(w, []byte(b.String()))
		return nil
	}

	body, err := h.exporter.ExportText(match.Namespace)
	if err != nil {
		return errMetricsExportFailed(match.Namespace, err)
	}
	writeMetrics(w, body)
	return nil
}

func writeMetrics(w http.ResponseWriter, body []byte) {
	w.Header().Set(headerContentType, metrics.ContentTypeText)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
