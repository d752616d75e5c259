package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHistogramVec_Idempotent(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	opts := HistogramOpts{Name: "op_duration_seconds", Help: "Op duration.", Buckets: DefBuckets}

	first, err := RegisterHistogramVec(reg, opts, []string{"op"})
	require.NoError(t, err)
	second, err := RegisterHistogramVec(reg, opts, []string{"op"})
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestRegisterHistogramVec_IncompatibleShape(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := RegisterHistogramVec(reg, HistogramOpts{Name: "op_duration_seconds", Help: "Op duration."}, []string{"op"})
	require.NoError(t, err)

	_, err = RegisterHistogramVec(reg, HistogramOpts{Name: "op_duration_seconds", Help: "Op duration."}, []string{"op", "result"})
	assert.Error(t, err)
}

func TestRegisterRuntimeCollectors_Twice(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	require.NoError(t, RegisterRuntimeCollectors(reg))
	require.NoError(t, RegisterRuntimeCollectors(reg))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
