package metrics

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Namespace_ReturnsSameRegistry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	first, err := reg.Namespace("http")
	require.NoError(t, err)
	second, err := reg.Namespace("http")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, []string{"http"}, reg.Namespaces())
}

func TestRegistry_Namespace_ConcurrentFirstUse(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	results := make([]*prometheus.Registry, 16)

	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = reg.Namespace("jobs")
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}

func TestRegistry_Namespace_InvalidNames(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	for _, name := range []string{"", "/http", "http/", "a//b"} {
		_, err := reg.Namespace(name)
		assert.ErrorIs(t, err, ErrInvalidNamespace, "name %q", name)
	}
	assert.Empty(t, reg.Namespaces())
}

func TestRegistry_Namespaces_Sorted(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	for _, name := range []string{"jobs", "http", "app/queue"} {
		_, err := reg.Namespace(name)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"app/queue", "http", "jobs"}, reg.Namespaces())
}

func TestRegistry_ExportText(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	factory, err := reg.Factory("jobs")
	require.NoError(t, err)
	factory.NewCounter(CounterOpts{Name: "jobs_run_total", Help: "Jobs run."}).Add(3)

	body, err := reg.ExportText("jobs")
	require.NoError(t, err)

	assert.Equal(t, "# HELP jobs_run_total Jobs run.\n# TYPE jobs_run_total counter\njobs_run_total 3\n", string(body))
}

func TestRegistry_ExportText_IncludesDescendants(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	parent, err := reg.Factory("app")
	require.NoError(t, err)
	child, err := reg.Factory("app/jobs")
	require.NoError(t, err)
	sibling, err := reg.Factory("apple")
	require.NoError(t, err)

	parent.NewCounter(CounterOpts{Name: "app_total", Help: "App."}).Inc()
	child.NewCounter(CounterOpts{Name: "app_jobs_total", Help: "Jobs."}).Inc()
	sibling.NewCounter(CounterOpts{Name: "apple_total", Help: "Apples."}).Inc()

	body, err := reg.ExportText("app")
	require.NoError(t, err)
	assert.Contains(t, string(body), "app_total 1")
	assert.Contains(t, string(body), "app_jobs_total 1")
	assert.NotContains(t, string(body), "apple_total")

	body, err = reg.ExportText("app/jobs")
	require.NoError(t, err)
	assert.Contains(t, string(body), "app_jobs_total 1")
	assert.NotContains(t, string(body), "app_total 1")
}

func TestRegistry_ExportText_UnknownNamespaceIsEmpty(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	body, err := reg.ExportText("missing")

	require.NoError(t, err)
	assert.Empty(t, body)
}
