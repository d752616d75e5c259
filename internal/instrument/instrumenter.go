package instrument

import (
	"math/big"
	"net/http"
	"strconv"
	"time"

	"request-metrics/internal/shared/clock"
)

// Instrumenter times requests and operations and reports them to a LatencyRecorder.
type Instrumenter struct {
	recorder *LatencyRecorder
	clock    clock.Clock
}

// NewInstrumenter returns an Instrumenter reading time from clk, or from
// clock.Default when clk is nil.
func NewInstrumenter(recorder *LatencyRecorder, clk clock.Clock) *Instrumenter {
	if clk == nil {
		clk = clock.Default
	}
	return &Instrumenter{recorder: recorder, clock: clk}
}

// Request wraps next so that every response accepted by filter is recorded with
// the handler label from labeler, the request method and the status code of the
// response returned by filter. A nil filter keeps everything.
//
// Nothing is recorded when next panics.
func (in *Instrumenter) Request(filter Filter, labeler Labeler, next http.Handler) http.Handler {
	if filter == nil {
		filter = KeepAll
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := newResponseWriter(w, r.ProtoMajor)

		start := in.clock.Now()
		next.ServeHTTP(rw, r)

		measured, keep := filter(rw.response())
		if !keep {
			return
		}
		end := in.clock.Now()

		in.recorder.Observe(labeler(r), r.Method, strconv.Itoa(measured.Status), durationSeconds(start, end))
	})
}

// FixedHandler records every response of next under the handler label name.
func (in *Instrumenter) FixedHandler(name string, next http.Handler) http.Handler {
	return in.Request(KeepAll, Constant(name), next)
}

// Middleware is Request in the form accepted by chi's Use.
func (in *Instrumenter) Middleware(filter Filter, labeler Labeler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return in.Request(filter, labeler, next)
	}
}

// Operation runs op and records its duration under label with empty method and
// status. A failed op is not recorded and its error is returned unchanged.
func (in *Instrumenter) Operation(label string, op func() error) error {
	start := in.clock.Now()
	if err := op(); err != nil {
		return err
	}
	end := in.clock.Now()

	in.recorder.Observe(label, "", "", durationSeconds(start, end))
	return nil
}

// OperationValue is Operation for operations that produce a value.
func OperationValue[T any](in *Instrumenter, label string, op func() (T, error)) (T, error) {
	var result T
	err := in.Operation(label, func() error {
		var err error
		result, err = op()
		return err
	})
	return result, err
}

// durationSeconds converts end-start to seconds with a single rounding step.
// Negative durations are passed through.
func durationSeconds(start, end time.Time) float64 {
	seconds, _ := new(big.Rat).SetFrac64(int64(end.Sub(start)), int64(time.Second)).Float64()
	return seconds
}
