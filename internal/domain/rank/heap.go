package rank

import "github.com/okian/decile/internal/domain/model"

// lessFn decides which of two players should sit closer to the heap root.
// Both heap directions share the same sift-down; only the comparator
// changes.
type lessFn func(a, b model.Player) bool

// byLevelDesc roots the highest level (max-heap).
func byLevelDesc(a, b model.Player) bool { return a.Level > b.Level }

// byLevelAsc roots the lowest level (min-heap).
func byLevelAsc(a, b model.Player) bool { return a.Level < b.Level }

// siftDown restores the heap property for players[:size] starting at root,
// repeatedly swapping with the preferred child until the invariant holds or
// a leaf is reached.
func siftDown(players []model.Player, root, size int, less lessFn) {
	current := root
	for {
		left := 2*current + 1
		right := 2*current + 2
		best := current

		if left < size && less(players[left], players[best]) {
			best = left
		}
		if right < size && less(players[right], players[best]) {
			best = right
		}
		if best == current {
			return
		}

		players[current], players[best] = players[best], players[current]
		current = best
	}
}

// heapify arranges players[:size] into a heap in place, O(size).
func heapify(players []model.Player, size int, less lessFn) {
	for i := size/2 - 1; i >= 0; i-- {
		siftDown(players, i, size, less)
	}
}

// replaceMin overwrites the root of a min-heap with p and sifts it down.
// The heap size is unchanged.
func replaceMin(players []model.Player, p model.Player) {
	players[0] = p
	siftDown(players, 0, len(players), byLevelAsc)
}
