package scoring

import (
	"math"

	"github.com/okian/deuce/internal/domain/types"
)

// Level signal point values. The four-category shape and these points are
// a fixed contract; only the close band width is tunable.
const (
	levelClosePoints    = 20.0
	levelPlayablePoints = 5.0
	levelFarPoints      = -5.0
	levelUnknownPoints  = 10.0
)

// DefaultCloseLevelDelta is the maximum absolute level difference still
// considered a close match.
const DefaultCloseLevelDelta = 1.0

// LevelCategory classifies the skill comparison outcome.
type LevelCategory int

// Level categories. Unknown is the optimistic default for missing data;
// Far is a penalty, not a zero.
const (
	LevelUnknown LevelCategory = iota
	LevelClose
	LevelPlayable
	LevelFar
)

// String returns the category name.
func (c LevelCategory) String() string {
	switch c {
	case LevelClose:
		return "close"
	case LevelPlayable:
		return "playable"
	case LevelFar:
		return "far"
	default:
		return "unknown"
	}
}

// Points returns the category's score contribution.
func (c LevelCategory) Points() float64 {
	switch c {
	case LevelClose:
		return levelClosePoints
	case LevelPlayable:
		return levelPlayablePoints
	case LevelFar:
		return levelFarPoints
	default:
		return levelUnknownPoints
	}
}

// Reason returns the explanation entry for the category.
func (c LevelCategory) Reason() types.Reason {
	switch c {
	case LevelClose:
		return types.Reason{Code: types.ReasonLevelClose}
	case LevelPlayable:
		return types.Reason{Code: types.ReasonLevelPlayable}
	case LevelFar:
		return types.Reason{Code: types.ReasonLevelFar}
	default:
		return types.Reason{Code: types.ReasonLevelUnknown}
	}
}

// LevelOption applies a configuration option to the LevelScorer.
type LevelOption func(*LevelScorer)

// WithCloseLevelDelta sets the close-band width.
func WithCloseLevelDelta(delta float64) LevelOption {
	return func(s *LevelScorer) {
		if delta > 0 {
			s.closeDelta = delta
		}
	}
}

// LevelScorer compares requester and candidate skill levels.
type LevelScorer struct {
	closeDelta float64
}

// NewLevelScorer creates a level scorer with options.
func NewLevelScorer(opts ...LevelOption) *LevelScorer {
	s := &LevelScorer{closeDelta: DefaultCloseLevelDelta}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Compare classifies the pair. requesterLevel/candidateLevel are nil when
// the party is unrated; acceptMin/acceptMax come from the requester's
// availability and a nil bound is open on that side.
func (s *LevelScorer) Compare(requesterLevel, candidateLevel, acceptMin, acceptMax *float64) LevelCategory {
	if requesterLevel == nil || candidateLevel == nil {
		return LevelUnknown
	}
	if math.Abs(*requesterLevel-*candidateLevel) <= s.closeDelta {
		return LevelClose
	}
	if acceptMin != nil && *candidateLevel < *acceptMin {
		return LevelFar
	}
	if acceptMax != nil && *candidateLevel > *acceptMax {
		return LevelFar
	}
	return LevelPlayable
}
