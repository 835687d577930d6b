package rank

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/okian/decile/internal/domain/model"
)

// Stream is the pull-based, single-pass producer the online engine consumes.
// Exhaustion is a representable error from Next, not a panic; the engine
// only pulls while Remaining reports players left.
type Stream interface {
	// Next returns the next player and advances the stream position.
	// It fails once the stream is exhausted.
	Next(ctx context.Context) (model.Player, error)

	// Remaining reports how many players have not been pulled yet.
	Remaining() int
}

// RankIncoming consumes stream exactly once and keeps the (up to)
// reportingInterval highest-level players seen so far in a bounded min-heap.
//
// The buffer fills unordered until it reaches the interval, is heapified at
// that instant, and from then on each incoming player either replaces the
// current minimum or is discarded. Every time the processed count hits a
// positive multiple of the interval, the level required to stay in the
// retained set is recorded in Cutoffs; one final entry is always recorded at
// the terminal count when anything was processed at all.
//
// The stream is consumed destructively and must not be shared with another
// consumer.
func RankIncoming(ctx context.Context, stream Stream, reportingInterval int) (Result, error) {
	if reportingInterval < 1 {
		return Result{}, ErrInvalidInterval
	}

	start := time.Now()

	top := make([]model.Player, 0, reportingInterval)
	cutoffs := make(map[int]uint64)
	processed := 0

	for stream.Remaining() > 0 {
		p, err := stream.Next(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("pull player: %w", err)
		}
		processed++

		if len(top) < reportingInterval {
			top = append(top, p)
			if len(top) == reportingInterval {
				heapify(top, len(top), byLevelAsc)
			}
		} else if p.Level > top[0].Level {
			replaceMin(top, p)
		}

		if processed%reportingInterval == 0 {
			cutoffs[processed] = top[0].Level
		}
	}

	sort.Slice(top, func(i, j int) bool { return top[i].Level < top[j].Level })

	// The terminal snapshot is unconditional: even when the stream ended
	// off-interval, or was shorter than the interval and the buffer never
	// became a heap, the minimum retained level is captured. The sort
	// above makes top[0] that minimum either way.
	if len(top) > 0 {
		cutoffs[processed] = top[0].Level
	}

	return Result{
		Top:     top,
		Cutoffs: cutoffs,
		Elapsed: time.Since(start),
	}, nil
}
