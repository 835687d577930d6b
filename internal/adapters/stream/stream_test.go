package stream_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/decile/internal/adapters/mq/queue"
	stream "github.com/okian/decile/internal/adapters/stream"
	model "github.com/okian/decile/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func players(levels ...uint64) []model.Player {
	out := make([]model.Player, len(levels))
	for i, lvl := range levels {
		out[i] = model.Player{ID: "s", Level: lvl}
	}
	return out
}

func TestSliceStream(t *testing.T) {
	ctx := context.Background()

	Convey("Given a stream over three players", t, func() {
		s := stream.NewSliceStream(players(10, 20, 30))

		Convey("Then remaining starts at the full count", func() {
			So(s.Remaining(), ShouldEqual, 3)
		})

		Convey("When pulling all players in order", func() {
			var got []uint64
			for s.Remaining() > 0 {
				p, err := s.Next(ctx)
				So(err, ShouldBeNil)
				got = append(got, p.Level)
			}

			Convey("Then players arrive in stream order", func() {
				So(got, ShouldResemble, []uint64{10, 20, 30})
			})

			Convey("And remaining hits zero", func() {
				So(s.Remaining(), ShouldEqual, 0)
			})

			Convey("And a further pull fails with exhaustion", func() {
				_, err := s.Next(ctx)
				So(errors.Is(err, stream.ErrExhausted), ShouldBeTrue)
			})
		})
	})

	Convey("Given an empty stream", t, func() {
		s := stream.NewSliceStream(nil)

		Convey("Then remaining is zero and pulls fail immediately", func() {
			So(s.Remaining(), ShouldEqual, 0)
			_, err := s.Next(ctx)
			So(errors.Is(err, stream.ErrExhausted), ShouldBeTrue)
		})
	})
}

func TestQueueStream(t *testing.T) {
	ctx := context.Background()

	Convey("Given a loaded, closed queue", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(10), queue.WithBufferSize(10))
		for _, p := range players(3, 1, 4, 1, 5) {
			So(q.Enqueue(ctx, p), ShouldBeTrue)
		}
		So(q.Close(), ShouldBeNil)

		Convey("When adapting it into a stream", func() {
			s := stream.NewQueueStream(ctx, q)

			Convey("Then remaining snapshots the queued count", func() {
				So(s.Remaining(), ShouldEqual, 5)
			})

			Convey("And draining yields the players in enqueue order", func() {
				var got []uint64
				for s.Remaining() > 0 {
					p, err := s.Next(ctx)
					So(err, ShouldBeNil)
					got = append(got, p.Level)
				}
				So(got, ShouldResemble, []uint64{3, 1, 4, 1, 5})

				Convey("And the exhausted stream rejects further pulls", func() {
					_, err := s.Next(ctx)
					So(errors.Is(err, stream.ErrExhausted), ShouldBeTrue)
				})
			})
		})
	})

	Convey("Given many freshly built streams over loaded queues", t, func() {
		// The drain goroutine starts as soon as the stream is built; the
		// snapshot must be taken before it can pull anything, or the
		// final player would silently fall out of consideration.
		Convey("Then the snapshot always equals the enqueued count", func() {
			for trial := 0; trial < 500; trial++ {
				q := queue.NewInMemoryQueue(queue.WithCapacity(8), queue.WithBufferSize(8))
				for _, p := range players(9, 8, 7, 6, 5) {
					So(q.Enqueue(ctx, p), ShouldBeTrue)
				}
				So(q.Close(), ShouldBeNil)

				s := stream.NewQueueStream(ctx, q)
				So(s.Remaining(), ShouldEqual, 5)

				pulled := 0
				for s.Remaining() > 0 {
					_, err := s.Next(ctx)
					So(err, ShouldBeNil)
					pulled++
				}
				So(pulled, ShouldEqual, 5)
			}
		})
	})

	Convey("Given a cancelled context mid-consumption", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(4), queue.WithBufferSize(4))
		So(q.Enqueue(context.Background(), model.Player{Level: 9}), ShouldBeTrue)
		So(q.Close(), ShouldBeNil)

		streamCtx, cancel := context.WithCancel(context.Background())
		s := stream.NewQueueStream(streamCtx, q)

		p, err := s.Next(streamCtx)
		So(err, ShouldBeNil)
		So(p.Level, ShouldEqual, 9)

		cancel()

		Convey("Then an empty snapshot still reports exhaustion", func() {
			_, err := s.Next(streamCtx)
			So(errors.Is(err, stream.ErrExhausted), ShouldBeTrue)
		})
	})
}
