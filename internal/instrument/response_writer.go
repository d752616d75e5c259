package instrument

import (
	"bufio"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// responseWriter captures the status code and notices connection hijacks.
type responseWriter struct {
	middleware.WrapResponseWriter
	hijacked bool
}

func newResponseWriter(w http.ResponseWriter, protoMajor int) *responseWriter {
	return &responseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

// Hijack hands the connection over through the wrapped writer chain and marks
// the response as raw.
func (w *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	conn, rw, err := http.NewResponseController(w.Unwrap()).Hijack()
	if err != nil {
		return nil, nil, err
	}
	w.hijacked = true
	return conn, rw, nil
}

func (w *responseWriter) Flush() {
	if f, ok := w.WrapResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *responseWriter) response() Response {
	return Response{
		Status: statusOrOK(w.Status()),
		Raw:    w.hijacked,
	}
}
