package simulation_test

import (
	"context"
	"testing"

	"github.com/okian/decile/internal/simulation"
	"github.com/okian/decile/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestRunner(t *testing.T) {
	ctx := context.Background()

	Convey("Given a runner over a small roster", t, func() {
		r := simulation.NewRunner(
			simulation.WithRosterSize(200),
			simulation.WithReportingInterval(20),
			simulation.WithQueueSize(500),
			simulation.WithGeneratorWorkers(4),
		)

		Convey("When running the full simulation", func() {
			report, err := r.Run(ctx)

			Convey("Then it completes without error", func() {
				So(err, ShouldBeNil)
				So(report, ShouldNotBeNil)
			})

			Convey("And the report reflects the configured roster", func() {
				So(report.RosterSize, ShouldEqual, 200)
				So(report.TopSize, ShouldEqual, 20)
				// 10 periodic checkpoints, the last doubling as terminal.
				So(report.Checkpoints, ShouldEqual, 10)
			})
		})
	})

	Convey("Given an empty roster", t, func() {
		r := simulation.NewRunner(
			simulation.WithRosterSize(0),
			simulation.WithReportingInterval(10),
		)

		Convey("When running", func() {
			report, err := r.Run(ctx)

			Convey("Then everything is empty and nothing fails", func() {
				So(err, ShouldBeNil)
				So(report.RosterSize, ShouldEqual, 0)
				So(report.TopSize, ShouldEqual, 0)
				So(report.Checkpoints, ShouldEqual, 0)
			})
		})
	})

	Convey("Given a queue smaller than the roster", t, func() {
		r := simulation.NewRunner(
			simulation.WithRosterSize(100),
			simulation.WithQueueSize(50),
		)

		Convey("Then the run is rejected up front", func() {
			_, err := r.Run(ctx)
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given a roster not divisible by the interval", t, func() {
		r := simulation.NewRunner(
			simulation.WithRosterSize(105),
			simulation.WithReportingInterval(20),
			simulation.WithQueueSize(500),
		)

		Convey("When running", func() {
			report, err := r.Run(ctx)

			Convey("Then the terminal checkpoint is added off-interval", func() {
				So(err, ShouldBeNil)
				// 5 periodic checkpoints plus the terminal one at 105.
				So(report.Checkpoints, ShouldEqual, 6)
			})
		})
	})
}
