package http

import (
	"net/http"

	"request-metrics/internal/instrument"
	"request-metrics/internal/shared/loggers"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewRouter creates and configures the application router. With routeLatency
// set, latency of its routes is recorded by route pattern; counters always go
// to factory.
func NewRouter(instr *instrument.Instrumenter, factory promauto.Factory, healthCheck func() error, httpLogger loggers.Logger, routeLatency bool) http.Handler {
	return newRouter(instr, newHTTPMetrics(factory), healthCheck, httpLogger, routeLatency)
}

func newRouter(instr *instrument.Instrumenter, m *httpMetrics, healthCheck func() error, httpLogger loggers.Logger, routeLatency bool) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger, instr, m, routeLatency)

	// Routes
	router.Get("/healthz", errorHandlingAdapter(NewHealthHandler(instr, healthCheck)))
	router.Post("/echo", errorHandlingAdapter(NewEchoHandler()))
	router.Get("/raw", errorHandlingAdapter(NewRawHandler()))

	return router
}

// NewHandler puts the metrics endpoint in front of app. Metrics requests get a
// request-scoped logger; delegated requests reach app untouched.
func NewHandler(settings EndpointSettings, exporter Exporter, instr *instrument.Instrumenter, app http.Handler, httpLogger loggers.Logger) http.Handler {
	return newMetricsEndpoint(settings, exporter, instr, app, mwRequestID(httpLogger))
}
