// Package rank orchestrates the five signal scorers into a ranked,
// explainable suggestion list for one requester availability.
package rank

import (
	"github.com/okian/deuce/internal/domain/scoring"
	"github.com/okian/deuce/pkg/logger"
)

// Option applies a configuration option to the Ranker.
type Option func(*Ranker)

// WithOverlapCalculator replaces the default overlap calculator.
func WithOverlapCalculator(c *scoring.OverlapCalculator) Option {
	return func(r *Ranker) {
		if c != nil {
			r.overlap = c
		}
	}
}

// WithLevelScorer replaces the default level scorer.
func WithLevelScorer(s *scoring.LevelScorer) Option {
	return func(r *Ranker) {
		if s != nil {
			r.level = s
		}
	}
}

// WithLocationScorer replaces the default location scorer.
func WithLocationScorer(s *scoring.LocationScorer) Option {
	return func(r *Ranker) {
		if s != nil {
			r.location = s
		}
	}
}

// WithSurfaceScorer replaces the default surface scorer.
func WithSurfaceScorer(s *scoring.SurfaceScorer) Option {
	return func(r *Ranker) {
		if s != nil {
			r.surface = s
		}
	}
}

// WithWeights sets the signal weights. Callers validate before passing.
func WithWeights(w scoring.Weights) Option {
	return func(r *Ranker) {
		r.weights = w
	}
}

// WithMinScore sets the final acceptance gate.
func WithMinScore(min float64) Option {
	return func(r *Ranker) {
		r.minScore = min
	}
}

// WithConcurrency bounds the parallel candidate evaluation fan-out.
func WithConcurrency(n int) Option {
	return func(r *Ranker) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithLogger sets a custom logger for the ranker.
func WithLogger(l logger.Logger) Option {
	return func(r *Ranker) {
		if l != nil {
			r.logger = l
		}
	}
}
