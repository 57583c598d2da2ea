package scoring_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/deuce/internal/domain/model"
	scoring "github.com/okian/deuce/internal/domain/scoring"
)

func window(startHour, startMin, endHour, endMin int) model.Window {
	day := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	return model.Window{
		Start: day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute),
		End:   day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute),
	}
}

func TestOverlapCalculator(t *testing.T) {
	Convey("Given an overlap calculator with the default 60 minute gate", t, func() {
		calc := scoring.NewOverlapCalculator()

		Convey("When the windows share exactly 60 minutes", func() {
			// requester 10:00-12:00, candidate 11:00-13:00
			rng, minutes, eligible := calc.Overlap(window(10, 0, 12, 0), window(11, 0, 13, 0))

			Convey("Then the candidate exactly meets the gate", func() {
				So(eligible, ShouldBeTrue)
				So(minutes, ShouldEqual, 60)
				So(rng.Start, ShouldEqual, window(11, 0, 12, 0).Start)
				So(rng.End, ShouldEqual, window(11, 0, 12, 0).End)
			})
		})

		Convey("When the windows share 59 minutes", func() {
			_, minutes, eligible := calc.Overlap(window(10, 0, 11, 59), window(11, 0, 13, 0))

			Convey("Then the candidate is excluded, not scored", func() {
				So(eligible, ShouldBeFalse)
				So(minutes, ShouldEqual, 59)
			})
		})

		Convey("When the windows only touch at a boundary", func() {
			_, minutes, eligible := calc.Overlap(window(10, 0, 12, 0), window(12, 0, 14, 0))

			Convey("Then the overlap is zero and the candidate is excluded", func() {
				So(eligible, ShouldBeFalse)
				So(minutes, ShouldEqual, 0)
			})
		})

		Convey("When the windows do not overlap at all", func() {
			_, minutes, eligible := calc.Overlap(window(8, 0, 9, 0), window(12, 0, 14, 0))

			Convey("Then the reported minutes never go negative", func() {
				So(eligible, ShouldBeFalse)
				So(minutes, ShouldEqual, 0)
			})
		})

		Convey("When the windows are on different days", func() {
			a := window(10, 0, 12, 0)
			b := window(10, 0, 12, 0)
			b.Start = b.Start.AddDate(0, 0, 1)
			b.End = b.End.AddDate(0, 0, 1)

			_, minutes, eligible := calc.Overlap(a, b)

			Convey("Then the intersection is empty", func() {
				So(eligible, ShouldBeFalse)
				So(minutes, ShouldEqual, 0)
			})
		})

		Convey("When one window fully contains the other", func() {
			rng, minutes, eligible := calc.Overlap(window(9, 0, 18, 0), window(10, 30, 12, 0))

			Convey("Then the overlap is the inner window", func() {
				So(eligible, ShouldBeTrue)
				So(minutes, ShouldEqual, 90)
				So(rng.Minutes(), ShouldEqual, 90)
			})
		})
	})

	Convey("Given a calculator with a custom 30 minute gate", t, func() {
		calc := scoring.NewOverlapCalculator(scoring.WithMinOverlapMinutes(30))

		Convey("When the windows share 45 minutes", func() {
			_, minutes, eligible := calc.Overlap(window(10, 0, 10, 45), window(10, 0, 13, 0))

			Convey("Then the candidate passes the lowered gate", func() {
				So(eligible, ShouldBeTrue)
				So(minutes, ShouldEqual, 45)
			})
		})
	})
}
