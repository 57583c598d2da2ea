package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/okian/deuce/internal/domain/model"
)

// MemoryStore implements Directory over in-process maps. Writes exist for
// seeding (fixtures, tests, demo); the engine itself only reads.
type MemoryStore struct {
	mu sync.RWMutex

	availabilities map[uuid.UUID]model.Availability
	players        map[uuid.UUID]model.Player // keyed by user id
	friendEdges    map[[2]uuid.UUID]struct{}  // directed edges, checked both ways
	matches        []model.MatchRecord
	playedPairs    map[[2]uuid.UUID]struct{} // normalized pair index over matches
	surfacePrefs   map[uuid.UUID]string      // explicit preferences
}

// NewMemoryStore creates an empty in-memory directory with options.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		availabilities: make(map[uuid.UUID]model.Availability),
		players:        make(map[uuid.UUID]model.Player),
		friendEdges:    make(map[[2]uuid.UUID]struct{}),
		playedPairs:    make(map[[2]uuid.UUID]struct{}),
		surfacePrefs:   make(map[uuid.UUID]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddAvailability inserts or replaces an availability.
func (s *MemoryStore) AddAvailability(a model.Availability) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.availabilities[a.ID] = a
}

// AddPlayer inserts or replaces a player profile, keyed by user id.
func (s *MemoryStore) AddPlayer(p model.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[p.UserID] = p
}

// AddFriendship records a directed friendship edge.
func (s *MemoryStore) AddFriendship(from, to uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.friendEdges[[2]uuid.UUID{from, to}] = struct{}{}
}

// AddMatch records a historical match between two users.
func (s *MemoryStore) AddMatch(m model.MatchRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches = append(s.matches, m)
	s.playedPairs[pairKey(m.UserA, m.UserB)] = struct{}{}
}

// SetSurfacePreference records a user's explicit preferred surface.
func (s *MemoryStore) SetSurfacePreference(userID uuid.UUID, surface string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surfacePrefs[userID] = surface
}

// Availability returns one availability by id.
func (s *MemoryStore) Availability(_ context.Context, id uuid.UUID) (model.Availability, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.availabilities[id]
	return a, ok, nil
}

// OtherAvailabilities returns every availability not owned by
// excludeUserID, sorted by id for a stable enumeration order.
func (s *MemoryStore) OtherAvailabilities(_ context.Context, excludeUserID uuid.UUID) ([]model.Availability, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Availability, 0, len(s.availabilities))
	for _, a := range s.availabilities {
		if a.UserID == excludeUserID {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

// PlayerByUserID returns the user's rated profile when one exists.
func (s *MemoryStore) PlayerByUserID(_ context.Context, userID uuid.UUID) (model.Player, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[userID]
	return p, ok, nil
}

// AreFriends reports friendship, checking the directed edge both ways.
func (s *MemoryStore) AreFriends(_ context.Context, a, b uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.friendEdges[[2]uuid.UUID{a, b}]; ok {
		return true, nil
	}
	_, ok := s.friendEdges[[2]uuid.UUID{b, a}]
	return ok, nil
}

// HavePlayed reports whether the pair shares any match record.
func (s *MemoryStore) HavePlayed(_ context.Context, a, b uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.playedPairs[pairKey(a, b)]
	return ok, nil
}

// SurfacePreference resolves a preferred surface: an explicit preference
// wins; otherwise the surface the user has played on most often, ties
// broken lexicographically so resolution stays deterministic.
func (s *MemoryStore) SurfacePreference(_ context.Context, userID uuid.UUID) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if pref, ok := s.surfacePrefs[userID]; ok && pref != "" {
		return pref, true, nil
	}

	counts := make(map[string]int)
	for _, m := range s.matches {
		if m.Surface == "" {
			continue
		}
		if m.UserA == userID || m.UserB == userID {
			counts[m.Surface]++
		}
	}
	best := ""
	for surface, n := range counts {
		if best == "" || n > counts[best] || (n == counts[best] && surface < best) {
			best = surface
		}
	}
	if best == "" {
		return "", false, nil
	}
	return best, true, nil
}

// Counts returns pool sizes for stats and gauges.
func (s *MemoryStore) Counts() (availabilities, players, friendships, matches int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.availabilities), len(s.players), len(s.friendEdges), len(s.matches)
}

// pairKey normalizes an unordered user pair into a map key.
func pairKey(a, b uuid.UUID) [2]uuid.UUID {
	if a.String() > b.String() {
		a, b = b, a
	}
	return [2]uuid.UUID{a, b}
}
