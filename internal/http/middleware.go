package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"request-metrics/internal/instrument"
	"request-metrics/internal/shared/loggers"
	"request-metrics/internal/shared/svcerrors"
	"request-metrics/internal/shared/ulid"

	"github.com/go-chi/chi/v5"
	"github.com/mileusna/useragent"
)

func setupMiddleware(router *chi.Mux, httpLogger loggers.Logger, instr *instrument.Instrumenter, m *httpMetrics, routeLatency bool) {
	router.Use(mwRequestID(httpLogger))
	if routeLatency {
		router.Use(instr.Middleware(instrument.IgnoreRaw, instrument.RoutePattern))
	}
	router.Use(mwAppResponseWriter)
	router.Use(mwRequestCounter(m))
	router.Use(mwRequestCompletionLog)
	router.Use(mwRecoverer)
}

// mwAppResponseWriter initializes the appResponseWriter once and passes it through the middleware chain.
func mwAppResponseWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appWriter := newAppResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(appWriter, r)
	})
}

// mwRequestCounter counts requests by route pattern, status and error code.
// Hijacked connections have no status of their own and are not counted.
func mwRequestCounter(m *httpMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)

			appWriter, ok := asAppResponseWriter(w)
			if !ok || appWriter.Hijacked() {
				return
			}
			m.requestsTotal.WithLabelValues(
				r.Method,
				instrument.RoutePattern(r),
				strconv.Itoa(appWriter.StatusOrOK()),
				appWriter.ErrorCode(),
			).Inc()
		})
	}
}

// mwRequestID extracts or generates a request ID and attaches a request-scoped logger to context.
func mwRequestID(httpLogger loggers.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := requestID(r)
			if requestID == "" {
				requestID = ulid.NewULID()
				setRequestID(r, requestID)
			}
			ctxWithReqLogger := httpLogger.With().
				Str(loggers.FieldRequestID, requestID).
				Logger().WithContext(r.Context())

			next.ServeHTTP(w, r.WithContext(ctxWithReqLogger))
		})
	}
}

// mwRequestCompletionLog logs one line per finished request.
func mwRequestCompletionLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			status := http.StatusOK
			if appWriter, ok := asAppResponseWriter(w); ok {
				status = appWriter.StatusOrOK()
			}
			loggers.Ctx(r.Context()).Info().
				Str(loggers.FieldHttpMethod, r.Method).
				Str(loggers.FieldHttpPath, r.URL.Path).
				Str(loggers.FieldHandler, instrument.RoutePattern(r)).
				Int(loggers.FieldHttpStatus, status).
				Str(loggers.FieldUserAgent, userAgentName(r)).
				Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
				Msg("request completed")
		}()

		next.ServeHTTP(w, r)
	})
}

// userAgentName reduces the User-Agent header to the client name, e.g. "Chrome" or "curl".
func userAgentName(r *http.Request) string {
	raw := r.UserAgent()
	if raw == "" {
		return ""
	}
	if ua := useragent.Parse(raw); ua.Name != "" {
		return ua.Name
	}
	return raw
}

// mwRecoverer provides panic recovery middleware.
func mwRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				if p == http.ErrAbortHandler {
					panic(p)
				}
				loggers.Ctx(r.Context()).Error().
					Bytes(loggers.FieldErrorStack, debug.Stack()).
					Msgf("http panic recovered: %v", p)

				// Convert panic value to error
				var panicErr error
				if err, ok := p.(error); ok {
					panicErr = err
				} else {
					panicErr = fmt.Errorf("%v", p)
				}

				svcErr := svcerrors.NewInternalErrorPanic(panicErr)
				writeErrorResponse(w, r, svcErr)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
