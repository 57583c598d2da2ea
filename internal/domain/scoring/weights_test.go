package scoring_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	scoring "github.com/okian/deuce/internal/domain/scoring"
)

func TestWeights(t *testing.T) {
	Convey("Given the default weights", t, func() {
		w := scoring.DefaultWeights()

		Convey("Then every signal is weighted 1 and the set validates", func() {
			So(w.Overlap, ShouldEqual, 1.0)
			So(w.Social, ShouldEqual, 1.0)
			So(w.Level, ShouldEqual, 1.0)
			So(w.Location, ShouldEqual, 1.0)
			So(w.Surface, ShouldEqual, 1.0)
			So(w.Validate(), ShouldBeNil)
		})

		Convey("When combining the worked scenario", func() {
			// 60 min overlap, friends, close level, 5 km, no surface
			total := w.Combine(60, 50, 20, 11.25, 0)

			Convey("Then the total is the plain sum", func() {
				So(total, ShouldEqual, 141.25)
			})
		})
	})

	Convey("Given a weight set that mutes the overlap signal", t, func() {
		w := scoring.DefaultWeights()
		w.Overlap = 0

		Convey("Then zero weights validate and drop the signal", func() {
			So(w.Validate(), ShouldBeNil)
			So(w.Combine(60, 50, 20, 0, 0), ShouldEqual, 70.0)
		})
	})

	Convey("Given a negative weight", t, func() {
		w := scoring.DefaultWeights()
		w.Social = -1

		Convey("Then validation rejects the set", func() {
			err := w.Validate()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "social")
		})
	})
}
