// Package queue provides a bounded in-memory player queue. It is the
// loading dock for the online ranking engine: producers enqueue a roster,
// close the queue, and a stream adapter drains it exactly once.
package queue

import (
	"context"
	"sync"

	"github.com/okian/decile/internal/domain/model"
	"github.com/okian/decile/pkg/metrics"
)

// Default queue configuration constants.
const (
	defaultCapacity   = 100000
	defaultBufferSize = 100000
)

// Queue provides non-blocking enqueue and channel-based dequeue semantics.
type Queue interface {
	// Enqueue adds a player to the queue.
	// Returns false if the queue is full or closed.
	Enqueue(ctx context.Context, p model.Player) bool

	// Dequeue returns a channel that yields players as they become
	// available. The channel is closed once the queue is closed and
	// drained.
	Dequeue(ctx context.Context) <-chan model.Player

	// Len returns the current number of queued players.
	Len(ctx context.Context) int

	// Close stops new enqueues. Queued players can still be drained.
	// Reports ErrClosed if the queue was already closed.
	Close() error

	// IsClosed reports whether the queue has been closed.
	IsClosed() bool
}

// InMemoryQueue implements Queue using a buffered channel.
type InMemoryQueue struct {
	players    chan model.Player
	capacity   int
	bufferSize int

	mu     sync.RWMutex
	closed bool
}

// NewInMemoryQueue creates a new in-memory queue with configuration options.
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{
		capacity:   defaultCapacity,
		bufferSize: defaultBufferSize,
	}

	for _, opt := range opts {
		opt(q)
	}

	q.players = make(chan model.Player, q.bufferSize)

	metrics.UpdateQueueCapacity(q.capacity)
	metrics.UpdateQueueSize(0)

	return q
}

// Enqueue adds a player to the queue without blocking.
func (q *InMemoryQueue) Enqueue(ctx context.Context, p model.Player) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "closed")
		return false
	}

	if len(q.players) >= q.capacity {
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "capacity_exceeded")
		return false
	}

	select {
	case q.players <- p:
		metrics.RecordQueueEnqueue()
		metrics.UpdateQueueSize(len(q.players))
		return true
	case <-ctx.Done():
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "context_cancelled")
		return false
	default:
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "queue_full")
		return false
	}
}

// Dequeue returns a channel that yields queued players.
func (q *InMemoryQueue) Dequeue(ctx context.Context) <-chan model.Player {
	out := make(chan model.Player)
	go func() {
		defer close(out)
		for p := range q.players {
			select {
			case out <- p:
				metrics.RecordQueueDequeue()
				metrics.UpdateQueueSize(len(q.players))
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Len returns the current number of queued players.
func (q *InMemoryQueue) Len(_ context.Context) int {
	return len(q.players)
}

// Close stops new enqueues and lets consumers drain the remainder.
// Reports ErrClosed if the queue was already closed.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}

	close(q.players)
	q.closed = true

	return nil
}

// IsClosed reports whether the queue has been closed.
func (q *InMemoryQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
