package scoring

import (
	"strings"
)

// DefaultSurfaceBonus is awarded when both parties resolve to the same
// preferred surface. The upstream derivation rule is still settling, so
// the bonus lives next to the weights in config and the scorer stays
// deliberately small.
const DefaultSurfaceBonus = 10.0

// SurfaceOption applies a configuration option to the SurfaceScorer.
type SurfaceOption func(*SurfaceScorer)

// WithSurfaceBonus sets the points awarded on a surface match.
func WithSurfaceBonus(points float64) SurfaceOption {
	return func(s *SurfaceScorer) {
		if points > 0 {
			s.bonus = points
		}
	}
}

// SurfaceScorer compares best-effort preferred surfaces. Either side
// resolving to nothing means a zero contribution, never a penalty.
type SurfaceScorer struct {
	bonus float64
}

// NewSurfaceScorer creates a surface scorer with options.
func NewSurfaceScorer(opts ...SurfaceOption) *SurfaceScorer {
	s := &SurfaceScorer{bonus: DefaultSurfaceBonus}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score returns the bonus and the matched surface when both preferences
// are known and equal (case-insensitive).
func (s *SurfaceScorer) Score(requesterSurface, candidateSurface string) (points float64, surface string, matched bool) {
	a := strings.ToLower(strings.TrimSpace(requesterSurface))
	b := strings.ToLower(strings.TrimSpace(candidateSurface))
	if a == "" || b == "" || a != b {
		return 0, "", false
	}
	return s.bonus, a, true
}
