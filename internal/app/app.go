package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	internalhttp "request-metrics/internal/http"
	"request-metrics/internal/instrument"
	"request-metrics/internal/shared/clock"
	"request-metrics/internal/shared/configs"
	"request-metrics/internal/shared/loggers"
	"request-metrics/internal/shared/metrics"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
	registry  *metrics.Registry
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "request-metrics").
		Logger()

	registry, err := newRegistry(config.Metrics)
	if err != nil {
		return nil, err
	}

	// Initialize latency instrumentation
	httpRegistry, err := registry.Namespace(metrics.NamespaceHTTP)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize http metrics namespace: %w", err)
	}
	recorder, err := instrument.NewLatencyRecorder(httpRegistry, config.Metrics.Buckets)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize latency recorder: %w", err)
	}
	instr := instrument.NewInstrumenter(recorder, clock.Default)

	// Initialize http router
	httpFactory, err := registry.Factory(metrics.NamespaceHTTP)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize http metrics factory: %w", err)
	}
	httpGatherer := registry.Gatherer(metrics.NamespaceHTTP)
	healthCheck := func() error {
		_, err := httpGatherer.Gather()
		return err
	}
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	// One latency layer only: per route, or the whole app under "app".
	routeLatency := !config.Metrics.InstrumentApp
	router := internalhttp.NewRouter(instr, httpFactory, healthCheck, httpLogger, routeLatency)

	settings := internalhttp.EndpointSettings{
		Prefix:             config.Metrics.EndpointPrefix,
		InstrumentApp:      config.Metrics.InstrumentApp,
		InstrumentEndpoint: config.Metrics.InstrumentEndpoint,
	}
	handler := internalhttp.NewHandler(settings, registry, instr, router, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
		registry:  registry,
	}, nil
}

func newRegistry(config configs.MetricsConfig) (*metrics.Registry, error) {
	registry := metrics.NewRegistry()
	if !config.RuntimeCollectors {
		return registry, nil
	}

	runtimeRegistry, err := registry.Namespace(metrics.NamespaceRuntime)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize runtime metrics namespace: %w", err)
	}
	if err := metrics.RegisterRuntimeCollectors(runtimeRegistry); err != nil {
		return nil, fmt.Errorf("failed to register runtime collectors: %w", err)
	}
	return registry, nil
}

// Handler returns the root HTTP handler.
func (app *App) Handler() http.Handler {
	return app.server.Handler
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Strs(loggers.FieldNamespace, app.registry.Namespaces()).
		Msgf("Starting request-metrics service on port %d (log_level=%s, metrics_endpoint=/%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			strings.Join(app.config.Metrics.EndpointPrefix, "/"))

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	return nil
}
