// Package instrument measures request and operation latency.
//
// Every measurement ends up in a single histogram, http_request_duration_seconds,
// labelled by handler, method and status_code. Request instrumentation runs the
// response through a Filter before recording, so responses whose status cannot be
// trusted (hijacked connections) can be left out without affecting what the client
// receives.
package instrument
