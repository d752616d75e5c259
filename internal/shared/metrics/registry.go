package metrics

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

var ErrInvalidNamespace = errors.New("invalid metrics namespace")

// Registry is a set of Prometheus registries addressed by slash separated
// namespace paths such as "http" or "app/jobs".
//
// Exporting a namespace includes every namespace below it, so "app" covers
// both "app" and "app/jobs".
type Registry struct {
	mu         sync.RWMutex
	namespaces map[string]*prometheus.Registry
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{namespaces: make(map[string]*prometheus.Registry)}
}

// JoinNamespace joins path segments into a namespace name.
func JoinNamespace(segments ...string) string {
	return strings.Join(segments, "/")
}

// Namespace returns the registry for name, creating it on first use.
func (r *Registry) Namespace(name string) (*prometheus.Registry, error) {
	if err := validateNamespace(name); err != nil {
		return nil, err
	}

	r.mu.RLock()
	reg, ok := r.namespaces[name]
	r.mu.RUnlock()
	if ok {
		return reg, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if reg, ok = r.namespaces[name]; ok {
		return reg, nil
	}
	reg = prometheus.NewRegistry()
	r.namespaces[name] = reg
	return reg, nil
}

// Factory returns a promauto.Factory that registers collectors in the given namespace.
func (r *Registry) Factory(name string) (promauto.Factory, error) {
	reg, err := r.Namespace(name)
	if err != nil {
		return promauto.Factory{}, err
	}
	return promauto.With(reg), nil
}

// Namespaces returns the names of all registered namespaces in lexical order.
func (r *Registry) Namespaces() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.namespaces))
	for name := range r.namespaces {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Gatherer returns a Gatherer over name and all of its descendants.
func (r *Registry) Gatherer(name string) prometheus.Gatherer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var gatherers prometheus.Gatherers
	for ns, reg := range r.namespaces {
		if ns == name || strings.HasPrefix(ns, name+"/") {
			gatherers = append(gatherers, reg)
		}
	}
	return gatherers
}

// ExportText gathers name and its descendants and encodes the result in the
// text exposition format. Unknown namespaces export an empty body.
func (r *Registry) ExportText(name string) ([]byte, error) {
	families, err := r.Gatherer(name).Gather()
	if err != nil {
		return nil, fmt.Errorf("gather namespace %q: %w", name, err)
	}

	var buf bytes.Buffer
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return nil, fmt.Errorf("encode metric family %q: %w", mf.GetName(), err)
		}
	}
	return buf.Bytes(), nil
}

func validateNamespace(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidNamespace)
	}
	for _, segment := range strings.Split(name, "/") {
		if segment == "" {
			return fmt.Errorf("%w: %q has an empty segment", ErrInvalidNamespace, name)
		}
	}
	return nil
}
