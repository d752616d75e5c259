package http

import (
	"io"
	"net/http"
)

const maxEchoBytes = 1 << 20

type echoHandler struct{}

func NewEchoHandler() AppHttpHandler {
	return &echoHandler{}
}

// Handle processes POST /echo requests by sending the body back.
func (h *echoHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxEchoBytes))
	if err != nil {
		return errEchoReadFailed(err)
	}
	if len(body) == 0 {
		return errEchoEmptyBody()
	}

	if ct := contentType(r); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
	return nil
}
