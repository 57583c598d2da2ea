package scoring_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	scoring "github.com/okian/deuce/internal/domain/scoring"
)

func lvl(v float64) *float64 { return &v }

func TestLevelScorer(t *testing.T) {
	Convey("Given a level scorer with the default close band", t, func() {
		scorer := scoring.NewLevelScorer()

		Convey("When the candidate has no level", func() {
			cat := scorer.Compare(lvl(4.0), nil, lvl(3.0), lvl(5.0))

			Convey("Then the category is unknown, never a penalty", func() {
				So(cat, ShouldEqual, scoring.LevelUnknown)
				So(cat.Points(), ShouldEqual, 10.0)
			})
		})

		Convey("When the requester has no level", func() {
			cat := scorer.Compare(nil, lvl(4.0), nil, nil)

			Convey("Then the category is unknown too", func() {
				So(cat, ShouldEqual, scoring.LevelUnknown)
			})
		})

		Convey("When the levels differ by 0.3", func() {
			cat := scorer.Compare(lvl(4.0), lvl(4.3), lvl(3.0), lvl(5.0))

			Convey("Then the match is close worth 20 points", func() {
				So(cat, ShouldEqual, scoring.LevelClose)
				So(cat.Points(), ShouldEqual, 20.0)
			})
		})

		Convey("When the levels differ by exactly the band width", func() {
			cat := scorer.Compare(lvl(4.0), lvl(5.0), lvl(3.0), lvl(5.0))

			Convey("Then the boundary still counts as close", func() {
				So(cat, ShouldEqual, scoring.LevelClose)
			})
		})

		Convey("When the candidate is outside the band but inside the accepted range", func() {
			cat := scorer.Compare(lvl(2.0), lvl(3.5), lvl(1.0), lvl(4.0))

			Convey("Then the match is playable worth 5 points", func() {
				So(cat, ShouldEqual, scoring.LevelPlayable)
				So(cat.Points(), ShouldEqual, 5.0)
			})
		})

		Convey("When the candidate is above the accepted range", func() {
			cat := scorer.Compare(lvl(2.0), lvl(6.0), lvl(1.0), lvl(4.0))

			Convey("Then the match is far and actively penalized", func() {
				So(cat, ShouldEqual, scoring.LevelFar)
				So(cat.Points(), ShouldEqual, -5.0)
			})
		})

		Convey("When the candidate is below the accepted range", func() {
			cat := scorer.Compare(lvl(6.0), lvl(2.0), lvl(4.0), lvl(7.0))

			Convey("Then the match is far", func() {
				So(cat, ShouldEqual, scoring.LevelFar)
			})
		})

		Convey("When the availability declares no acceptance range", func() {
			cat := scorer.Compare(lvl(2.0), lvl(6.5), nil, nil)

			Convey("Then a known but distant candidate is still playable", func() {
				So(cat, ShouldEqual, scoring.LevelPlayable)
			})
		})
	})

	Convey("Given a scorer with a widened close band", t, func() {
		scorer := scoring.NewLevelScorer(scoring.WithCloseLevelDelta(2.0))

		Convey("When the levels differ by 1.5", func() {
			cat := scorer.Compare(lvl(4.0), lvl(5.5), nil, nil)

			Convey("Then the match is close under the wider band", func() {
				So(cat, ShouldEqual, scoring.LevelClose)
			})
		})
	})
}
