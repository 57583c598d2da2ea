package scoring

import (
	"errors"
	"fmt"
)

// DefaultMinScore is the final acceptance gate: candidates whose combined
// score falls below it are dropped after scoring.
const DefaultMinScore = 10.0

// ErrInvalidWeights signals a weight set that fails validation.
var ErrInvalidWeights = errors.New("invalid weights")

// Weights holds the per-signal multipliers applied when combining the
// five signals. Validated once at startup and never mutated per request.
type Weights struct {
	Overlap  float64
	Social   float64
	Level    float64
	Location float64
	Surface  float64
}

// DefaultWeights returns the neutral weight set (all 1).
func DefaultWeights() Weights {
	return Weights{Overlap: 1, Social: 1, Level: 1, Location: 1, Surface: 1}
}

// Validate rejects negative weights; a zero weight is a legitimate way to
// switch a signal off.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"overlap":  w.Overlap,
		"social":   w.Social,
		"level":    w.Level,
		"location": w.Location,
		"surface":  w.Surface,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s weight must not be negative", ErrInvalidWeights, name)
		}
	}
	return nil
}

// Combine applies the weights to a raw per-signal contribution set.
func (w Weights) Combine(overlapMinutes float64, social, level, location, surface float64) float64 {
	return w.Overlap*overlapMinutes +
		w.Social*social +
		w.Level*level +
		w.Location*location +
		w.Surface*surface
}
