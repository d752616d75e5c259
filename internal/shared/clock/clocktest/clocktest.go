package clocktest

import (
	"sync"
	"time"

	"request-metrics/internal/shared/clock"
)

// New returns a test clock that answers Now() calls with the given
// instants in order. Once exhausted it keeps returning the last one.
func New(ts ...time.Time) clock.Clock {
	var mu sync.Mutex
	var last time.Time
	return clock.Func(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		if len(ts) == 0 {
			return last
		}
		last, ts = ts[0], ts[1:]
		return last
	})
}

// NewFromDurations returns a test clock whose readings are offsets
// from a fixed base instant.
func NewFromDurations(ds ...time.Duration) clock.Clock {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ts := make([]time.Time, 0, len(ds))
	for _, d := range ds {
		ts = append(ts, t0.Add(d))
	}
	return New(ts...)
}

// Manual is a clock that only moves when Advance is called.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual returns a Manual clock starting at t.
func NewManual(t time.Time) *Manual {
	return &Manual{now: t}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}
