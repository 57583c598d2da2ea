// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load() layers file/env.
// - The loaded Config is validated once and never mutated at request time.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"

	"github.com/okian/deuce/internal/domain/scoring"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MinOverlapMinutes is the eligibility gate on shared window minutes.
	MinOverlapMinutes int `koanf:"min_overlap_minutes"`

	// MinScore is the final acceptance gate on the combined score.
	MinScore float64 `koanf:"min_score"`

	// CloseLevelDelta is the widest level difference still scored close.
	CloseLevelDelta float64 `koanf:"close_level_delta"`

	// MaxDistanceKM is the distance at which the location bonus reaches zero.
	MaxDistanceKM float64 `koanf:"max_distance_km"`

	// MaxLocationScore is the location bonus at zero distance.
	MaxLocationScore float64 `koanf:"max_location_score"`

	// SurfaceBonus is awarded when both parties prefer the same surface.
	SurfaceBonus float64 `koanf:"surface_bonus"`

	// Per-signal weights applied when combining scores.
	WeightOverlap  float64 `koanf:"weight_overlap"`
	WeightSocial   float64 `koanf:"weight_social"`
	WeightLevel    float64 `koanf:"weight_level"`
	WeightLocation float64 `koanf:"weight_location"`
	WeightSurface  float64 `koanf:"weight_surface"`

	// EvalConcurrency bounds the parallel candidate evaluation fan-out.
	EvalConcurrency int `koanf:"eval_concurrency"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":9080",
		MinOverlapMinutes: scoring.DefaultMinOverlapMinutes,
		MinScore:          scoring.DefaultMinScore,
		CloseLevelDelta:   scoring.DefaultCloseLevelDelta,
		MaxDistanceKM:     scoring.DefaultMaxDistanceKM,
		MaxLocationScore:  scoring.DefaultMaxLocationScore,
		SurfaceBonus:      scoring.DefaultSurfaceBonus,
		WeightOverlap:     1,
		WeightSocial:      1,
		WeightLevel:       1,
		WeightLocation:    1,
		WeightSurface:     1,
		EvalConcurrency:   runtime.NumCPU(),
	}
}

// Weights collects the per-signal weights into the scoring type.
func (c *Config) Weights() scoring.Weights {
	return scoring.Weights{
		Overlap:  c.WeightOverlap,
		Social:   c.WeightSocial,
		Level:    c.WeightLevel,
		Location: c.WeightLocation,
		Surface:  c.WeightSurface,
	}
}
