package rank

import (
	"sort"
	"time"

	"github.com/okian/decile/internal/domain/model"
)

// HeapRank selects the top ⌊0.1·N⌋ players by level using in-place heap
// extraction.
//
// Ownership: the call takes exclusive mutable access to players and reorders
// the slice in place. Callers must treat the slice as consumed afterwards.
//
// The slice is heapified into a max-heap, then the maximum is extracted into
// the shrinking tail once per selected player. Each extraction lands the
// i-th largest at position N−i, so the final suffix of length k is already
// ascending by level; no separate sort is needed. Order among equal levels
// is whatever the extraction produces and is not guaranteed stable.
func HeapRank(players []model.Player) Result {
	start := time.Now()

	k := topShare(len(players))

	heapify(players, len(players), byLevelDesc)

	for i := 0; i < k; i++ {
		last := len(players) - 1 - i
		players[0], players[last] = players[last], players[0]
		siftDown(players, 0, last, byLevelDesc)
	}

	top := make([]model.Player, k)
	copy(top, players[len(players)-k:])

	return Result{
		Top:     top,
		Cutoffs: map[int]uint64{},
		Elapsed: time.Since(start),
	}
}

// QuickSelectRank selects the same top ⌊0.1·N⌋ players as HeapRank via
// partition-based selection followed by a localized sort of the selected
// suffix.
//
// Ownership: the call takes exclusive mutable access to players and reorders
// the slice in place. Callers must treat the slice as consumed afterwards.
//
// The pivot is always the last element of the active range, so adversarial
// input that is already sorted in either direction degrades the selection to
// O(N²). That weakness is inherited behavior and reproducible; it is
// documented rather than patched with pivot randomization.
func QuickSelectRank(players []model.Player) Result {
	start := time.Now()

	n := len(players)
	if n == 0 {
		// Empty roster short-circuits before any n-1 / n-k arithmetic.
		return Result{
			Top:     []model.Player{},
			Cutoffs: map[int]uint64{},
			Elapsed: time.Since(start),
		}
	}

	k := topShare(n)
	cutoff := n - k

	quickSelect(players, 0, n-1, cutoff)

	// The suffix [cutoff, n) now holds exactly the top k, unordered.
	suffix := players[cutoff:]
	sort.Slice(suffix, func(i, j int) bool {
		return suffix[i].Level < suffix[j].Level
	})

	top := make([]model.Player, k)
	copy(top, players[cutoff:])

	return Result{
		Top:     top,
		Cutoffs: map[int]uint64{},
		Elapsed: time.Since(start),
	}
}

// partition applies the Lomuto scheme with descending intent on
// players[low:high+1]: the last element is the pivot, every player with
// level >= the pivot's is swapped into a growing left block, and the pivot
// lands at the block boundary. Returns the pivot's final index.
func partition(players []model.Player, low, high int) int {
	pivot := players[high]
	i := low - 1

	for j := low; j < high; j++ {
		if players[j].Level >= pivot.Level {
			i++
			players[i], players[j] = players[j], players[i]
		}
	}

	players[i+1], players[high] = players[high], players[i+1]
	return i + 1
}

// quickSelect narrows [left, right] by repeated partitioning until a pivot
// lands exactly on cutoff, at which point everything at or beyond cutoff
// holds levels no greater than everything before it.
func quickSelect(players []model.Player, left, right, cutoff int) {
	for left <= right {
		pivotIndex := partition(players, left, right)

		switch {
		case pivotIndex == cutoff:
			return
		case pivotIndex > cutoff:
			right = pivotIndex - 1
		default:
			left = pivotIndex + 1
		}
	}
}

// SortDescending fully orders players by level, highest first, using the
// same partition primitive as QuickSelectRank. It is an auxiliary utility
// and not part of the selection path.
//
// Recursion is replaced with an explicit worklist so adversarial pre-sorted
// input cannot grow the stack; it still costs O(N²) time in that case, same
// as the selection itself.
func SortDescending(players []model.Player) {
	if len(players) < 2 {
		return
	}

	type span struct{ low, high int }
	work := []span{{0, len(players) - 1}}

	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]

		if s.low >= s.high {
			continue
		}

		p := partition(players, s.low, s.high)
		work = append(work, span{s.low, p - 1}, span{p + 1, s.high})
	}
}
