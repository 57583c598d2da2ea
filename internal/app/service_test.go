package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"

	service "github.com/okian/deuce/internal/app"
	"github.com/okian/deuce/internal/domain/model"
	"github.com/okian/deuce/internal/domain/rank"
)

func TestServiceLifecycle(t *testing.T) {
	Convey("Given a service with defaults", t, func() {
		svc := service.New()
		ctx := context.Background()

		Convey("When started", func() {
			So(svc.Start(ctx), ShouldBeNil)
			defer svc.Stop()

			Convey("Then the store is ready for seeding", func() {
				So(svc.Store(), ShouldNotBeNil)
			})

			Convey("Then stats report the running configuration", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldBeTrue)
				So(stats["minOverlapMinutes"], ShouldEqual, 60)
				So(stats["minScore"], ShouldEqual, 10.0)
				So(stats["availabilities"], ShouldEqual, 0)
			})

			Convey("And starting again is a no-op", func() {
				store := svc.Store()
				So(svc.Start(ctx), ShouldBeNil)
				So(svc.Store(), ShouldEqual, store)
			})
		})

		Convey("When stopped without starting", func() {
			So(func() { svc.Stop() }, ShouldNotPanic)
		})
	})
}

func TestServiceSuggest(t *testing.T) {
	Convey("Given a started service with a seeded pool", t, func() {
		svc := service.New(service.WithEvalConcurrency(4))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		day := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
		requesterID := uuid.New()
		candidateID := uuid.New()
		reqAvail := model.Availability{
			ID:     uuid.New(),
			UserID: requesterID,
			Date:   day,
			Window: model.Window{Start: day.Add(10 * time.Hour), End: day.Add(12 * time.Hour)},
		}
		svc.Store().AddAvailability(reqAvail)
		svc.Store().AddAvailability(model.Availability{
			ID:     uuid.New(),
			UserID: candidateID,
			Date:   day,
			Window: model.Window{Start: day.Add(10 * time.Hour), End: day.Add(13 * time.Hour)},
		})

		Convey("When suggesting for the requester", func() {
			result, err := svc.Suggest(ctx, requesterID, reqAvail.ID)

			Convey("Then the candidate ranks", func() {
				So(err, ShouldBeNil)
				So(result.Candidates, ShouldHaveLength, 1)
				So(result.Candidates[0].CandidateUserID, ShouldEqual, candidateID)
				So(result.Candidates[0].OverlapMinutes, ShouldEqual, 120)
			})

			Convey("And the pool counts surface in stats", func() {
				So(err, ShouldBeNil)
				stats := svc.GetStats()
				So(stats["availabilities"], ShouldEqual, 2)
			})
		})

		Convey("When suggesting for a foreign availability", func() {
			_, err := svc.Suggest(ctx, uuid.New(), reqAvail.ID)

			So(err, ShouldEqual, rank.ErrWrongOwner)
		})
	})

	Convey("Given a service with a raised overlap gate", t, func() {
		svc := service.New(service.WithMinOverlapMinutes(150))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		day := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
		requesterID := uuid.New()
		reqAvail := model.Availability{
			ID:     uuid.New(),
			UserID: requesterID,
			Date:   day,
			Window: model.Window{Start: day.Add(10 * time.Hour), End: day.Add(12 * time.Hour)},
		}
		svc.Store().AddAvailability(reqAvail)
		svc.Store().AddAvailability(model.Availability{
			ID:     uuid.New(),
			UserID: uuid.New(),
			Date:   day,
			Window: model.Window{Start: day.Add(10 * time.Hour), End: day.Add(12 * time.Hour)},
		})

		Convey("When the shared window is shorter than the gate", func() {
			result, err := svc.Suggest(ctx, requesterID, reqAvail.ID)

			Convey("Then nothing ranks", func() {
				So(err, ShouldBeNil)
				So(result.Candidates, ShouldBeEmpty)
			})
		})
	})
}
