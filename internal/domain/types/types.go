// Package types contains common types used across the application
package types

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Breakdown carries the per-signal contributions that sum (after
// weighting) to a candidate's total score.
type Breakdown struct {
	Overlap  float64 `json:"overlap"`
	Social   float64 `json:"social"`
	Level    float64 `json:"level"`
	Location float64 `json:"location"`
	Surface  float64 `json:"surface"`
}

// ScoredCandidate is one ranked suggestion. It is built fresh per request
// and never persisted.
type ScoredCandidate struct {
	CandidateUserID         uuid.UUID  `json:"candidate_user_id"`
	CandidatePlayerID       *uuid.UUID `json:"candidate_player_id,omitempty"`
	CandidateAvailabilityID uuid.UUID  `json:"candidate_availability_id"`
	RequesterAvailabilityID uuid.UUID  `json:"requester_availability_id"`
	OverlapStart            time.Time  `json:"overlap_start"`
	OverlapEnd              time.Time  `json:"overlap_end"`
	OverlapMinutes          int        `json:"overlap_minutes"`
	Score                   float64    `json:"score"`
	Breakdown               Breakdown  `json:"breakdown"`
	Reasons                 []string   `json:"reasons"`
}

// ReasonCode tags which category a scorer landed in. Codes are stable;
// the rendered text is presentation only and may change.
type ReasonCode string

// Reason codes emitted by the scorers.
const (
	ReasonOverlap          ReasonCode = "overlap"
	ReasonFriends          ReasonCode = "friends"
	ReasonPreviousOpponent ReasonCode = "previous_opponent"
	ReasonLevelClose       ReasonCode = "level_close"
	ReasonLevelPlayable    ReasonCode = "level_playable"
	ReasonLevelFar         ReasonCode = "level_far"
	ReasonLevelUnknown     ReasonCode = "level_unknown"
	ReasonNearby           ReasonCode = "nearby"
	ReasonSurfaceMatch     ReasonCode = "surface_match"
)

// Reason is a tagged explanation entry. Detail holds the code-specific
// quantity: minutes for overlap, km for nearby, the surface name for
// surface_match; unused otherwise.
type Reason struct {
	Code    ReasonCode
	Detail  float64
	Surface string
}

// Render turns a reason into display text. Kept separate from scoring so
// wording can change without touching score math.
func (r Reason) Render() string {
	switch r.Code {
	case ReasonOverlap:
		return fmt.Sprintf("%d min overlap", int(r.Detail))
	case ReasonFriends:
		return "Friends with requester"
	case ReasonPreviousOpponent:
		return "Played against requester before"
	case ReasonLevelClose:
		return "Level: close match"
	case ReasonLevelPlayable:
		return "Level: within your accepted range"
	case ReasonLevelFar:
		return "Level: outside your accepted range"
	case ReasonLevelUnknown:
		return "Level: unknown"
	case ReasonNearby:
		return fmt.Sprintf("%.1f km away", r.Detail)
	case ReasonSurfaceMatch:
		return fmt.Sprintf("Both prefer %s", r.Surface)
	}
	return string(r.Code)
}

// RenderReasons renders a reason list in order.
func RenderReasons(reasons []Reason) []string {
	out := make([]string, len(reasons))
	for i, r := range reasons {
		out[i] = r.Render()
	}
	return out
}
