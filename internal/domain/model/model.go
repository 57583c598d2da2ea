// Package model contains domain models passed between layers.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Window is a half-open time range [Start, End). Start < End is enforced
// by whoever owns the record; the engine assumes it.
type Window struct {
	Start time.Time
	End   time.Time
}

// Minutes returns the window length in whole minutes.
func (w Window) Minutes() int {
	return int(w.End.Sub(w.Start) / time.Minute)
}

// Intersect returns the overlap of two windows. The returned window is
// zero-length or inverted when the inputs do not overlap; callers gate on
// Minutes() > 0.
func (w Window) Intersect(other Window) Window {
	out := Window{Start: w.Start, End: w.End}
	if other.Start.After(out.Start) {
		out.Start = other.Start
	}
	if other.End.Before(out.End) {
		out.End = other.End
	}
	return out
}

// Availability is a user's declared playable window, with an optional
// self-declared acceptable opponent level range and an optional location.
type Availability struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Date         time.Time // calendar day the window belongs to
	Window       Window
	LocationText string
	Latitude     *float64
	Longitude    *float64
	MinLevel     *float64 // acceptable opponent level range; nil = open
	MaxLevel     *float64
}

// Coordinates reports the availability's own location, falling back to
// nothing when it was created without one.
func (a Availability) Coordinates() (lat, lon float64, ok bool) {
	if a.Latitude == nil || a.Longitude == nil {
		return 0, 0, false
	}
	return *a.Latitude, *a.Longitude, true
}

// Player is a user's rated profile. A user may have no Player record at
// all (unrated), and a record may still carry a nil LevelValue.
type Player struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	LevelValue      *float64 // continuous estimate, e.g. 1.0-7.0
	LevelConfidence float64  // [0,1] trust in LevelValue
	City            string
	Latitude        *float64
	Longitude       *float64
}

// Level returns the player's level estimate when one exists.
func (p Player) Level() (float64, bool) {
	if p.LevelValue == nil {
		return 0, false
	}
	return *p.LevelValue, true
}

// Coordinates reports the player's home location when one exists.
func (p Player) Coordinates() (lat, lon float64, ok bool) {
	if p.Latitude == nil || p.Longitude == nil {
		return 0, 0, false
	}
	return *p.Latitude, *p.Longitude, true
}

// MatchRecord is one historical match between two users, kept only as far
// as the engine needs it: who played whom, and on what surface.
type MatchRecord struct {
	ID      uuid.UUID
	UserA   uuid.UUID
	UserB   uuid.UUID
	Surface string // e.g. "clay", "hard", "grass"; may be empty
	Date    time.Time
}
