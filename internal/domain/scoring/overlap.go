// Package scoring holds the five independent signal scorers. Each scorer
// is a pure computation over snapshot data; combination and ordering live
// in the rank package.
package scoring

import (
	"github.com/okian/deuce/internal/domain/model"
)

// DefaultMinOverlapMinutes is the eligibility gate: candidates whose
// windows share less than this many minutes are excluded, not scored.
const DefaultMinOverlapMinutes = 60

// OverlapOption applies a configuration option to the OverlapCalculator.
type OverlapOption func(*OverlapCalculator)

// WithMinOverlapMinutes sets the minimum shared minutes for eligibility.
func WithMinOverlapMinutes(minutes int) OverlapOption {
	return func(c *OverlapCalculator) {
		if minutes > 0 {
			c.minMinutes = minutes
		}
	}
}

// OverlapCalculator computes window intersections and applies the
// minimum-overlap eligibility gate.
type OverlapCalculator struct {
	minMinutes int
}

// NewOverlapCalculator creates an overlap calculator with options.
func NewOverlapCalculator(opts ...OverlapOption) *OverlapCalculator {
	c := &OverlapCalculator{minMinutes: DefaultMinOverlapMinutes}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MinMinutes returns the configured eligibility gate.
func (c *OverlapCalculator) MinMinutes() int {
	return c.minMinutes
}

// Overlap intersects two windows. eligible is false when the intersection
// is empty, inverted, or shorter than the gate; minutes is never negative.
// Touching boundaries (end1 == start2) intersect to zero minutes and are
// therefore ineligible.
func (c *OverlapCalculator) Overlap(a, b model.Window) (rng model.Window, minutes int, eligible bool) {
	rng = a.Intersect(b)
	minutes = rng.Minutes()
	if minutes < 0 {
		minutes = 0
	}
	return rng, minutes, minutes >= c.minMinutes
}
