package types_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/deuce/internal/domain/types"
)

func TestReasonRendering(t *testing.T) {
	Convey("Given the tagged reason kinds", t, func() {
		Convey("Then each renders its display text", func() {
			So(types.Reason{Code: types.ReasonOverlap, Detail: 90}.Render(), ShouldEqual, "90 min overlap")
			So(types.Reason{Code: types.ReasonFriends}.Render(), ShouldEqual, "Friends with requester")
			So(types.Reason{Code: types.ReasonPreviousOpponent}.Render(), ShouldEqual, "Played against requester before")
			So(types.Reason{Code: types.ReasonLevelClose}.Render(), ShouldEqual, "Level: close match")
			So(types.Reason{Code: types.ReasonLevelUnknown}.Render(), ShouldEqual, "Level: unknown")
			So(types.Reason{Code: types.ReasonNearby, Detail: 4.25}.Render(), ShouldEqual, "4.2 km away")
			So(types.Reason{Code: types.ReasonSurfaceMatch, Surface: "clay"}.Render(), ShouldEqual, "Both prefer clay")
		})

		Convey("Then an unknown code falls back to the raw code", func() {
			So(types.Reason{Code: "mystery"}.Render(), ShouldEqual, "mystery")
		})
	})

	Convey("Given an ordered reason list", t, func() {
		rendered := types.RenderReasons([]types.Reason{
			{Code: types.ReasonOverlap, Detail: 60},
			{Code: types.ReasonFriends},
			{Code: types.ReasonNearby, Detail: 2.0},
		})

		Convey("Then rendering preserves order", func() {
			So(rendered, ShouldResemble, []string{
				"60 min overlap",
				"Friends with requester",
				"2.0 km away",
			})
		})
	})
}

func TestScoredCandidateJSON(t *testing.T) {
	Convey("Given a scored candidate without a player record", t, func() {
		sc := types.ScoredCandidate{
			CandidateUserID:         uuid.New(),
			CandidateAvailabilityID: uuid.New(),
			RequesterAvailabilityID: uuid.New(),
			OverlapMinutes:          75,
			Score:                   92.5,
			Breakdown:               types.Breakdown{Overlap: 75, Social: 0, Level: 10, Location: 7.5},
			Reasons:                 []string{"75 min overlap", "Level: unknown"},
		}

		raw, err := json.Marshal(sc)
		So(err, ShouldBeNil)
		body := string(raw)

		Convey("Then the wire names are snake_case and the player id is omitted", func() {
			So(body, ShouldContainSubstring, `"candidate_user_id"`)
			So(body, ShouldContainSubstring, `"overlap_minutes":75`)
			So(body, ShouldContainSubstring, `"breakdown"`)
			So(body, ShouldNotContainSubstring, `"candidate_player_id"`)
		})
	})
}
