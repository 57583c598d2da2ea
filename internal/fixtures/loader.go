package fixtures

import (
	"github.com/okian/deuce/internal/adapters/repository"
)

// Load seeds a memory store with a generated pool.
func Load(store *repository.MemoryStore, p *Pool) {
	for _, a := range p.Availabilities {
		store.AddAvailability(a)
	}
	for _, pl := range p.Players {
		store.AddPlayer(pl)
	}
	for _, f := range p.Friendships {
		store.AddFriendship(f[0], f[1])
	}
	for _, m := range p.Matches {
		store.AddMatch(m)
	}
	for userID, surface := range p.SurfacePrefs {
		store.SetSurfacePreference(userID, surface)
	}
}
