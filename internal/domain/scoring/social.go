package scoring

import (
	"github.com/okian/deuce/internal/domain/types"
)

// Social signal point values. These are part of the scoring contract, not
// tunables: friendship is the strongest willingness signal, a prior
// opponent is a weaker one.
const (
	friendPoints           = 50.0
	previousOpponentPoints = 20.0
	strangerPoints         = 0.0
)

// SocialCategory classifies a candidate relative to the requester.
type SocialCategory int

// Social categories, in precedence order. Friendship always wins when a
// pair is both friends and past opponents.
const (
	SocialStranger SocialCategory = iota
	SocialPreviousOpponent
	SocialFriend
)

// String returns the category name.
func (c SocialCategory) String() string {
	switch c {
	case SocialFriend:
		return "friend"
	case SocialPreviousOpponent:
		return "previous_opponent"
	default:
		return "stranger"
	}
}

// Points returns the category's score contribution.
func (c SocialCategory) Points() float64 {
	switch c {
	case SocialFriend:
		return friendPoints
	case SocialPreviousOpponent:
		return previousOpponentPoints
	default:
		return strangerPoints
	}
}

// Reason returns the explanation entry for the category, or false for
// strangers, which contribute nothing worth explaining.
func (c SocialCategory) Reason() (types.Reason, bool) {
	switch c {
	case SocialFriend:
		return types.Reason{Code: types.ReasonFriends}, true
	case SocialPreviousOpponent:
		return types.Reason{Code: types.ReasonPreviousOpponent}, true
	default:
		return types.Reason{}, false
	}
}

// ClassifySocial maps the two relationship lookups onto exactly one
// category, friendship first.
func ClassifySocial(friends, previouslyPlayed bool) SocialCategory {
	switch {
	case friends:
		return SocialFriend
	case previouslyPlayed:
		return SocialPreviousOpponent
	default:
		return SocialStranger
	}
}
