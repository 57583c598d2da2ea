package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if DEUCE_CONFIG is set
//  3. env (prefix DEUCE_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("DEUCE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: DEUCE_ADDR, DEUCE_MIN_SCORE, ...
	// Map env keys like DEUCE_MIN_SCORE -> min_score (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("DEUCE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "deuce_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the engine cannot run with. Weights may
// be zero (signal off) but never negative; gates must stay meaningful.
func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.MinOverlapMinutes <= 0:
		return fmt.Errorf("%w: min_overlap_minutes must be positive", ErrInvalidConfig)
	case c.CloseLevelDelta <= 0:
		return fmt.Errorf("%w: close_level_delta must be positive", ErrInvalidConfig)
	case c.MaxDistanceKM <= 0:
		return fmt.Errorf("%w: max_distance_km must be positive", ErrInvalidConfig)
	case c.MaxLocationScore <= 0:
		return fmt.Errorf("%w: max_location_score must be positive", ErrInvalidConfig)
	case c.SurfaceBonus < 0:
		return fmt.Errorf("%w: surface_bonus must not be negative", ErrInvalidConfig)
	case c.EvalConcurrency <= 0:
		return fmt.Errorf("%w: eval_concurrency must be positive", ErrInvalidConfig)
	}
	if err := c.Weights().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
