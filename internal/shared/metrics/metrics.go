package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	FieldErrorCode = "error_code"

	ValueNoError = ""

	Namespace = "request_metrics"
	SubHTTP   = "http"

	// Registry namespaces served under the metrics endpoint.
	NamespaceHTTP    = "http"
	NamespaceRuntime = "runtime"

	// ContentTypeText is the content type of the text exposition format.
	ContentTypeText = "text/plain; version=0.0.4"
)

// CounterOpts is a type alias for prometheus.CounterOpts.
type CounterOpts = prometheus.CounterOpts

// HistogramOpts is a type alias for prometheus.HistogramOpts.
type HistogramOpts = prometheus.HistogramOpts

// DefBuckets is a re-export of prometheus.DefBuckets.
var DefBuckets = prometheus.DefBuckets

// RegisterHistogramVec registers a HistogramVec built from opts and labelNames with reg.
// If an identical histogram is already registered, the existing one is returned so that
// repeated construction within a process is harmless. A histogram registered under the
// same name with a different help string or label set is reported as an error.
func RegisterHistogramVec(reg prometheus.Registerer, opts HistogramOpts, labelNames []string) (*prometheus.HistogramVec, error) {
	hv := prometheus.NewHistogramVec(opts, labelNames)
	if err := reg.Register(hv); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("register histogram %q: %w", prometheus.BuildFQName(opts.Namespace, opts.Subsystem, opts.Name), err)
		}
		existing, ok := are.ExistingCollector.(*prometheus.HistogramVec)
		if !ok {
			return nil, fmt.Errorf("register histogram %q: existing collector is %T", opts.Name, are.ExistingCollector)
		}
		return existing, nil
	}
	return hv, nil
}

// RegisterRuntimeCollectors registers the Go runtime and process collectors with reg.
func RegisterRuntimeCollectors(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return fmt.Errorf("register runtime collector: %w", err)
		}
	}
	return nil
}
