// Package repository defines the read-only directory the engine ranks
// over, and its in-memory implementation.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/okian/deuce/internal/domain/model"
)

// Directory provides read-only access to the matchmaking snapshot. The
// ranker only ever reads through this interface, which keeps it testable
// with fixture data and free of any process-wide client.
type Directory interface {
	// Availability returns one availability by id; ok is false when the
	// id is unknown.
	Availability(ctx context.Context, id uuid.UUID) (model.Availability, bool, error)

	// OtherAvailabilities returns every availability not owned by
	// excludeUserID, in a stable order.
	OtherAvailabilities(ctx context.Context, excludeUserID uuid.UUID) ([]model.Availability, error)

	// PlayerByUserID returns the user's rated profile; ok is false when
	// the user is unrated.
	PlayerByUserID(ctx context.Context, userID uuid.UUID) (model.Player, bool, error)

	// AreFriends reports friendship between two users. Edges are stored
	// directed but the relation is symmetric in effect.
	AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error)

	// HavePlayed reports whether two users have a shared match record.
	HavePlayed(ctx context.Context, a, b uuid.UUID) (bool, error)

	// SurfacePreference resolves the user's preferred surface on a best
	// effort basis; ok is false when nothing can be derived.
	SurfacePreference(ctx context.Context, userID uuid.UUID) (string, bool, error)
}
