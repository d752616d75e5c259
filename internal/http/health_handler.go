package http

import (
	"encoding/json"
	"net/http"

	"request-metrics/internal/instrument"
)

const operationHealthCheck = "healthcheck"

type healthHandler struct {
	instr *instrument.Instrumenter
	check func() error
}

// NewHealthHandler reports whether check passes. Successful checks are timed
// as the "healthcheck" operation.
func NewHealthHandler(instr *instrument.Instrumenter, check func() error) AppHttpHandler {
	return &healthHandler{instr: instr, check: check}
}

// Handle processes GET /healthz requests.
func (h *healthHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if err := h.instr.Operation(operationHealthCheck, h.check); err != nil {
		return errHealthCheckFailed(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	return nil
}
