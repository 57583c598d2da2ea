package scoring

import (
	"math"
)

// Default location scoring constants: 15 points at 0 km decaying linearly
// to 0 at 20 km. Distance is a bonus, never a penalty, so the floor is 0.
const (
	DefaultMaxDistanceKM    = 20.0
	DefaultMaxLocationScore = 15.0

	earthRadiusKM = 6371.0
)

// LocationOption applies a configuration option to the LocationScorer.
type LocationOption func(*LocationScorer)

// WithMaxDistanceKM sets the distance at which the score reaches zero.
func WithMaxDistanceKM(km float64) LocationOption {
	return func(s *LocationScorer) {
		if km > 0 {
			s.maxDistanceKM = km
		}
	}
}

// WithMaxLocationScore sets the score awarded at zero distance.
func WithMaxLocationScore(points float64) LocationOption {
	return func(s *LocationScorer) {
		if points > 0 {
			s.maxScore = points
		}
	}
}

// LocationScorer converts great-circle distance into a proximity bonus.
type LocationScorer struct {
	maxDistanceKM float64
	maxScore      float64
}

// NewLocationScorer creates a location scorer with options.
func NewLocationScorer(opts ...LocationOption) *LocationScorer {
	s := &LocationScorer{
		maxDistanceKM: DefaultMaxDistanceKM,
		maxScore:      DefaultMaxLocationScore,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score maps a distance in km onto [0, maxScore].
func (s *LocationScorer) Score(distanceKM float64) float64 {
	if distanceKM < 0 || distanceKM > s.maxDistanceKM {
		return 0
	}
	return s.maxScore * (1 - distanceKM/s.maxDistanceKM)
}

// Haversine returns the great-circle distance in km between two points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
