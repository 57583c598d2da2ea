// Package repository defines the read-only directory the engine ranks
// over, and its in-memory implementation.
package repository

import (
	"github.com/okian/deuce/internal/domain/model"
)

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithAvailabilities seeds the store with availabilities.
func WithAvailabilities(as ...model.Availability) Option {
	return func(s *MemoryStore) {
		for _, a := range as {
			s.availabilities[a.ID] = a
		}
	}
}

// WithPlayers seeds the store with player profiles.
func WithPlayers(ps ...model.Player) Option {
	return func(s *MemoryStore) {
		for _, p := range ps {
			s.players[p.UserID] = p
		}
	}
}

// WithMatches seeds the store with match history.
func WithMatches(ms ...model.MatchRecord) Option {
	return func(s *MemoryStore) {
		for _, m := range ms {
			s.matches = append(s.matches, m)
			s.playedPairs[pairKey(m.UserA, m.UserB)] = struct{}{}
		}
	}
}
