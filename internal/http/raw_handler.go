package http

import (
	"net/http"
)

const rawResponse = "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 4\r\nConnection: close\r\n\r\nraw\n"

type rawHandler struct{}

// NewRawHandler takes over the connection and writes the HTTP response itself.
// Its requests are excluded from latency metrics by the IgnoreRaw filter.
func NewRawHandler() AppHttpHandler {
	return &rawHandler{}
}

// Handle processes GET /raw requests.
func (h *rawHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	conn, buf, err := http.NewResponseController(w).Hijack()
	if err != nil {
		return errHijackFailed(err)
	}
	defer conn.Close()

	if _, err := buf.WriteString(rawResponse); err != nil {
		return err
	}
	return buf.Flush()
}
