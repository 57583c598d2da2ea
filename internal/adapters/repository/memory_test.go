package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/deuce/internal/adapters/repository"
	"github.com/okian/deuce/internal/domain/model"
)

func TestMemoryStoreAvailabilities(t *testing.T) {
	Convey("Given a store with two users' availabilities", t, func() {
		store := repository.NewMemoryStore()
		ctx := context.Background()

		alice := uuid.New()
		bob := uuid.New()
		a1 := model.Availability{ID: uuid.New(), UserID: alice, Date: time.Now()}
		a2 := model.Availability{ID: uuid.New(), UserID: alice, Date: time.Now()}
		b1 := model.Availability{ID: uuid.New(), UserID: bob, Date: time.Now()}
		store.AddAvailability(a1)
		store.AddAvailability(a2)
		store.AddAvailability(b1)

		Convey("When looking up a known id", func() {
			got, ok, err := store.Availability(ctx, b1.ID)

			Convey("Then the record is found", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(got.UserID, ShouldEqual, bob)
			})
		})

		Convey("When looking up an unknown id", func() {
			_, ok, err := store.Availability(ctx, uuid.New())

			Convey("Then the store reports absence without error", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When listing availabilities excluding one user", func() {
			out, err := store.OtherAvailabilities(ctx, alice)

			Convey("Then only the other user's rows remain", func() {
				So(err, ShouldBeNil)
				So(out, ShouldHaveLength, 1)
				So(out[0].ID, ShouldEqual, b1.ID)
			})
		})

		Convey("When listing twice", func() {
			first, _ := store.OtherAvailabilities(ctx, bob)
			second, _ := store.OtherAvailabilities(ctx, bob)

			Convey("Then the enumeration order is stable", func() {
				So(first, ShouldHaveLength, 2)
				So(second, ShouldHaveLength, 2)
				So(first[0].ID, ShouldEqual, second[0].ID)
				So(first[1].ID, ShouldEqual, second[1].ID)
				So(first[0].ID.String(), ShouldBeLessThan, first[1].ID.String())
			})
		})
	})
}

func TestMemoryStoreRelations(t *testing.T) {
	Convey("Given a store with a friendship and a match", t, func() {
		store := repository.NewMemoryStore()
		ctx := context.Background()

		alice := uuid.New()
		bob := uuid.New()
		carol := uuid.New()
		store.AddFriendship(alice, bob)
		store.AddMatch(model.MatchRecord{ID: uuid.New(), UserA: bob, UserB: carol, Surface: "clay"})

		Convey("When checking friendship in either direction", func() {
			forward, err1 := store.AreFriends(ctx, alice, bob)
			reverse, err2 := store.AreFriends(ctx, bob, alice)

			Convey("Then the directed edge reads as symmetric", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(forward, ShouldBeTrue)
				So(reverse, ShouldBeTrue)
			})
		})

		Convey("When checking an unrelated pair", func() {
			ok, err := store.AreFriends(ctx, alice, carol)

			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
		})

		Convey("When checking match history in either order", func() {
			forward, _ := store.HavePlayed(ctx, bob, carol)
			reverse, _ := store.HavePlayed(ctx, carol, bob)
			never, _ := store.HavePlayed(ctx, alice, carol)

			Convey("Then the pair index is unordered", func() {
				So(forward, ShouldBeTrue)
				So(reverse, ShouldBeTrue)
				So(never, ShouldBeFalse)
			})
		})
	})
}

func TestMemoryStoreSurfacePreference(t *testing.T) {
	Convey("Given a user with an explicit preference and a contradicting history", t, func() {
		store := repository.NewMemoryStore()
		ctx := context.Background()
		alice := uuid.New()
		bob := uuid.New()

		store.SetSurfacePreference(alice, "grass")
		for i := 0; i < 3; i++ {
			store.AddMatch(model.MatchRecord{ID: uuid.New(), UserA: alice, UserB: bob, Surface: "clay"})
		}

		Convey("When resolving the preference", func() {
			surface, ok, err := store.SurfacePreference(ctx, alice)

			Convey("Then the explicit preference wins over history", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(surface, ShouldEqual, "grass")
			})
		})

		Convey("When the user has only history", func() {
			surface, ok, err := store.SurfacePreference(ctx, bob)

			Convey("Then the modal surface is derived", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(surface, ShouldEqual, "clay")
			})
		})
	})

	Convey("Given a user whose history is split evenly", t, func() {
		store := repository.NewMemoryStore()
		ctx := context.Background()
		alice := uuid.New()
		bob := uuid.New()

		store.AddMatch(model.MatchRecord{ID: uuid.New(), UserA: alice, UserB: bob, Surface: "hard"})
		store.AddMatch(model.MatchRecord{ID: uuid.New(), UserA: alice, UserB: bob, Surface: "clay"})

		Convey("When resolving the preference", func() {
			surface, ok, err := store.SurfacePreference(ctx, alice)

			Convey("Then the tie breaks lexicographically", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(surface, ShouldEqual, "clay")
			})
		})
	})

	Convey("Given a user with neither preference nor history", t, func() {
		store := repository.NewMemoryStore()

		Convey("When resolving the preference", func() {
			surface, ok, err := store.SurfacePreference(context.Background(), uuid.New())

			Convey("Then no surface resolves", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
				So(surface, ShouldBeEmpty)
			})
		})
	})
}

func TestMemoryStoreCounts(t *testing.T) {
	Convey("Given a seeded store", t, func() {
		alice := uuid.New()
		bob := uuid.New()
		store := repository.NewMemoryStore(
			repository.WithAvailabilities(
				model.Availability{ID: uuid.New(), UserID: alice},
				model.Availability{ID: uuid.New(), UserID: bob},
			),
			repository.WithPlayers(
				model.Player{ID: uuid.New(), UserID: alice},
			),
			repository.WithMatches(
				model.MatchRecord{ID: uuid.New(), UserA: alice, UserB: bob, Surface: "hard"},
			),
		)
		store.AddFriendship(alice, bob)

		Convey("When reading pool sizes", func() {
			availabilities, players, friendships, matches := store.Counts()

			So(availabilities, ShouldEqual, 2)
			So(players, ShouldEqual, 1)
			So(friendships, ShouldEqual, 1)
			So(matches, ShouldEqual, 1)
		})
	})
}
