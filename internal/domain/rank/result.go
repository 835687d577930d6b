// Package rank implements the top-K selection algorithms behind the
// leaderboard: an offline heap selector, an offline quickselect selector,
// and an online bounded-K engine that consumes a single-pass player stream.
package rank

import (
	"time"

	"github.com/okian/decile/internal/domain/model"
)

// TopFraction is the share of the roster the offline selectors return.
const TopFraction = 0.1

// Result is the common output of all three ranking algorithms.
// It is created once per call and never mutated afterwards.
type Result struct {
	// Top holds the selected players sorted ascending by level.
	Top []model.Player

	// Cutoffs maps a processed-player count to the minimum level that
	// qualified for the retained top-K at that point. Only the online
	// engine populates it; the offline selectors leave it empty.
	Cutoffs map[int]uint64

	// Elapsed is the wall time the algorithm took. Informational only;
	// no logic reads it back.
	Elapsed time.Duration
}

// topShare returns ⌊TopFraction·n⌋, the offline selection size.
func topShare(n int) int {
	return int(TopFraction * float64(n))
}
