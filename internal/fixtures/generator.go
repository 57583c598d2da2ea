// Package fixtures generates deterministic demo pools for the matchmaking
// engine: users with rated profiles, overlapping availabilities, a sprinkle
// of friendships and match history. Seeded, so identical seeds reproduce
// identical pools.
package fixtures

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/okian/deuce/internal/domain/model"
)

// Generation constants. Levels follow the common 1.0-7.0 rating ladder;
// coordinates scatter around a city center within ~0.2 degrees.
const (
	levelMin   = 1.0
	levelRange = 6.0

	centerLat = 52.52 // Berlin
	centerLon = 13.405

	coordScatter = 0.2

	windowStartHourMin  = 8
	windowStartHourSpan = 10 // start hours 08:00-17:00
	windowHoursMin      = 1
	windowHoursSpan     = 3 // durations 1h-3h

	friendProbability = 0.2
	playedProbability = 0.3
	ratedProbability  = 0.85
	acceptBandWidth   = 1.5
)

// surfaces the generator draws preferences from.
var surfaces = []string{"clay", "hard", "grass"}

// Pool is a generated snapshot ready to be loaded into a store.
type Pool struct {
	UserIDs        []uuid.UUID
	Players        []model.Player
	Availabilities []model.Availability
	Friendships    [][2]uuid.UUID
	Matches        []model.MatchRecord
	SurfacePrefs   map[uuid.UUID]string
}

// Generator produces pools from a seeded random source.
type Generator struct {
	rng *rand.Rand
	day time.Time
}

// NewGenerator creates a generator for the given seed; all windows land on
// the given day.
func NewGenerator(seed int64, day time.Time) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic pools are the point
		day: time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
	}
}

// Generate builds a pool of n users.
func (g *Generator) Generate(n int) *Pool {
	p := &Pool{
		UserIDs:      make([]uuid.UUID, n),
		SurfacePrefs: make(map[uuid.UUID]string),
	}
	for i := range p.UserIDs {
		p.UserIDs[i] = g.uuid()
	}

	for _, userID := range p.UserIDs {
		if g.rng.Float64() < ratedProbability {
			level := levelMin + g.rng.Float64()*levelRange
			lat := centerLat + (g.rng.Float64()-0.5)*coordScatter
			lon := centerLon + (g.rng.Float64()-0.5)*coordScatter
			p.Players = append(p.Players, model.Player{
				ID:              g.uuid(),
				UserID:          userID,
				LevelValue:      &level,
				LevelConfidence: g.rng.Float64(),
				City:            "Berlin",
				Latitude:        &lat,
				Longitude:       &lon,
			})
		}
		p.Availabilities = append(p.Availabilities, g.availability(userID))
		if g.rng.Float64() < 0.5 {
			p.SurfacePrefs[userID] = surfaces[g.rng.Intn(len(surfaces))]
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := p.UserIDs[i], p.UserIDs[j]
			if g.rng.Float64() < friendProbability {
				p.Friendships = append(p.Friendships, [2]uuid.UUID{a, b})
			}
			if g.rng.Float64() < playedProbability {
				p.Matches = append(p.Matches, model.MatchRecord{
					ID:      g.uuid(),
					UserA:   a,
					UserB:   b,
					Surface: surfaces[g.rng.Intn(len(surfaces))],
					Date:    g.day.AddDate(0, 0, -1-g.rng.Intn(60)),
				})
			}
		}
	}

	return p
}

// availability builds one window for the user on the pool's day, with a
// level acceptance band roughly centered on a plausible level.
func (g *Generator) availability(userID uuid.UUID) model.Availability {
	startHour := windowStartHourMin + g.rng.Intn(windowStartHourSpan)
	hours := windowHoursMin + g.rng.Intn(windowHoursSpan)
	start := g.day.Add(time.Duration(startHour) * time.Hour)
	end := start.Add(time.Duration(hours) * time.Hour)

	lat := centerLat + (g.rng.Float64()-0.5)*coordScatter
	lon := centerLon + (g.rng.Float64()-0.5)*coordScatter

	mid := levelMin + g.rng.Float64()*levelRange
	minLevel := mid - acceptBandWidth
	maxLevel := mid + acceptBandWidth

	return model.Availability{
		ID:           g.uuid(),
		UserID:       userID,
		Date:         g.day,
		Window:       model.Window{Start: start, End: end},
		LocationText: "Berlin",
		Latitude:     &lat,
		Longitude:    &lon,
		MinLevel:     &minLevel,
		MaxLevel:     &maxLevel,
	}
}

// uuid derives a uuid from the seeded source so pools stay reproducible.
func (g *Generator) uuid() uuid.UUID {
	var b [16]byte
	g.rng.Read(b[:]) //nolint:errcheck // rand.Rand.Read never fails
	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // variant 10
	return uuid.UUID(b)
}
