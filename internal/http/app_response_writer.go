package http

import (
	"bufio"
	"net"
	"net/http"

	"request-metrics/internal/shared/metrics"
	"request-metrics/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter records the status and the service error of a response for
// the middlewares that run after the handler.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
	hijacked bool
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

// asAppResponseWriter finds the appResponseWriter in a chain of wrapped writers.
func asAppResponseWriter(w http.ResponseWriter) (*appResponseWriter, bool) {
	for {
		switch tw := w.(type) {
		case *appResponseWriter:
			return tw, true
		case interface{ Unwrap() http.ResponseWriter }:
			w = tw.Unwrap()
		default:
			return nil, false
		}
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return metrics.ValueNoError
}

// StatusOrOK is the status sent to the client; no Write or WriteHeader means 200.
func (w *appResponseWriter) StatusOrOK() int {
	if status := w.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}

// Hijack takes over the connection through the wrapped writer chain.
func (w *appResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	conn, rw, err := http.NewResponseController(w.Unwrap()).Hijack()
	if err != nil {
		return nil, nil, err
	}
	w.hijacked = true
	return conn, rw, nil
}

// Hijacked reports whether the handler took over the connection.
func (w *appResponseWriter) Hijacked() bool {
	return w.hijacked
}
