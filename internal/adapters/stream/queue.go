package stream

import (
	"context"

	"github.com/okian/decile/internal/adapters/mq/queue"
	"github.com/okian/decile/internal/domain/model"
)

// QueueStream drains a fully-loaded, closed queue as a single-pass player
// stream. Remaining is snapshotted at construction, so the queue must hold
// its whole roster and be closed before the stream is built; players
// enqueued afterwards are not part of this pass.
type QueueStream struct {
	ch        <-chan model.Player
	remaining int
}

// NewQueueStream creates a stream that consumes q. The stream owns the
// dequeue side; no other consumer may pull from q while it is in use.
func NewQueueStream(ctx context.Context, q queue.Queue) *QueueStream {
	// Snapshot the count before starting the drain goroutine: Dequeue
	// begins pulling players off the queue immediately, and a receive
	// that lands before the snapshot would leave the last player
	// unaccounted for.
	remaining := q.Len(ctx)
	return &QueueStream{
		ch:        q.Dequeue(ctx),
		remaining: remaining,
	}
}

// Next receives the next queued player.
// Returns ErrExhausted once the snapshotted roster has been drained and
// the context error if the caller is cancelled mid-receive.
func (s *QueueStream) Next(ctx context.Context) (model.Player, error) {
	if s.remaining == 0 {
		return model.Player{}, ErrExhausted
	}

	select {
	case p, ok := <-s.ch:
		if !ok {
			return model.Player{}, ErrExhausted
		}
		s.remaining--
		return p, nil
	case <-ctx.Done():
		return model.Player{}, ctx.Err()
	}
}

// Remaining reports how many players of the snapshotted roster have not
// been pulled yet.
func (s *QueueStream) Remaining() int {
	return s.remaining
}
