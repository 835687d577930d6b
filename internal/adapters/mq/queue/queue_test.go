package queue_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okian/decile/internal/adapters/mq/queue"
	model "github.com/okian/decile/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryQueue(t *testing.T) {
	ctx := context.Background()

	Convey("Given a queue with small capacity", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(2), queue.WithBufferSize(2))

		Convey("When enqueueing within capacity", func() {
			ok := q.Enqueue(ctx, model.Player{ID: "a", Level: 1})

			Convey("Then the enqueue succeeds", func() {
				So(ok, ShouldBeTrue)
				So(q.Len(ctx), ShouldEqual, 1)
			})
		})

		Convey("When enqueueing beyond capacity", func() {
			So(q.Enqueue(ctx, model.Player{ID: "a", Level: 1}), ShouldBeTrue)
			So(q.Enqueue(ctx, model.Player{ID: "b", Level: 2}), ShouldBeTrue)
			ok := q.Enqueue(ctx, model.Player{ID: "c", Level: 3})

			Convey("Then the overflow enqueue is rejected", func() {
				So(ok, ShouldBeFalse)
				So(q.Len(ctx), ShouldEqual, 2)
			})
		})
	})

	Convey("Given a closed queue", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(4))
		So(q.Enqueue(ctx, model.Player{ID: "a", Level: 5}), ShouldBeTrue)
		So(q.Close(), ShouldBeNil)

		Convey("Then it reports closed", func() {
			So(q.IsClosed(), ShouldBeTrue)
		})

		Convey("And closing again reports the closed sentinel", func() {
			So(errors.Is(q.Close(), queue.ErrClosed), ShouldBeTrue)
		})

		Convey("And new enqueues are rejected", func() {
			So(q.Enqueue(ctx, model.Player{ID: "b", Level: 6}), ShouldBeFalse)
		})

		Convey("And queued players can still be drained", func() {
			select {
			case p, ok := <-q.Dequeue(ctx):
				So(ok, ShouldBeTrue)
				So(p.Level, ShouldEqual, 5)
			case <-time.After(time.Second):
				t.Fatal("dequeue timed out")
			}
		})
	})

	Convey("Given a producer and a consumer", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(100), queue.WithBufferSize(100))

		for i := 0; i < 10; i++ {
			So(q.Enqueue(ctx, model.Player{ID: "p", Level: uint64(i)}), ShouldBeTrue)
		}
		So(q.Close(), ShouldBeNil)

		Convey("When draining the dequeue channel", func() {
			var got []uint64
			for p := range q.Dequeue(ctx) {
				got = append(got, p.Level)
			}

			Convey("Then players arrive in FIFO order and the channel closes", func() {
				So(got, ShouldHaveLength, 10)
				for i, lvl := range got {
					So(lvl, ShouldEqual, uint64(i))
				}
			})
		})
	})
}
