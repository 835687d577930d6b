package simulation

import (
	"fmt"
	"sort"

	"github.com/okian/decile/internal/domain/model"
	"github.com/okian/decile/internal/domain/rank"
)

// verify cross-checks the three ranking results against each other and
// against the invariants every algorithm must uphold.
func verify(heapRes, quickRes, onlineRes rank.Result, rosterSize, interval int) error {
	wantOffline := int(rank.TopFraction * float64(rosterSize))

	if got := len(heapRes.Top); got != wantOffline {
		return fmt.Errorf("heap selector returned %d players, want %d", got, wantOffline)
	}
	if got := len(quickRes.Top); got != wantOffline {
		return fmt.Errorf("quickselect returned %d players, want %d", got, wantOffline)
	}
	wantOnline := rosterSize
	if interval < wantOnline {
		wantOnline = interval
	}
	if got := len(onlineRes.Top); got != wantOnline {
		return fmt.Errorf("online engine retained %d players, want %d", got, wantOnline)
	}

	if len(heapRes.Cutoffs) != 0 || len(quickRes.Cutoffs) != 0 {
		return fmt.Errorf("offline selectors must not produce cutoffs")
	}

	for name, top := range map[string][]model.Player{
		algoHeap:        heapRes.Top,
		algoQuickSelect: quickRes.Top,
		algoOnline:      onlineRes.Top,
	} {
		if err := checkAscending(top); err != nil {
			return fmt.Errorf("%s selection: %w", name, err)
		}
	}

	if !sameLevels(heapRes.Top, quickRes.Top) {
		return fmt.Errorf("heap and quickselect disagree on the selected levels")
	}

	return checkCutoffs(onlineRes, rosterSize, interval)
}

// checkAscending verifies a selection is sorted ascending by level.
func checkAscending(top []model.Player) error {
	for i := 1; i < len(top); i++ {
		if top[i].Level < top[i-1].Level {
			return fmt.Errorf("levels out of order at position %d: %d after %d",
				i, top[i].Level, top[i-1].Level)
		}
	}
	return nil
}

// sameLevels compares the multisets of levels in two selections.
func sameLevels(a, b []model.Player) bool {
	if len(a) != len(b) {
		return false
	}

	as := make([]uint64, len(a))
	bs := make([]uint64, len(b))
	for i := range a {
		as[i] = a[i].Level
		bs[i] = b[i].Level
	}
	sort.Slice(as, func(i, j int) bool { return as[i] < as[j] })
	sort.Slice(bs, func(i, j int) bool { return bs[i] < bs[j] })

	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// checkCutoffs validates checkpoint placement: every key is a positive
// multiple of the interval or the terminal count, and the terminal
// checkpoint exists whenever anything was processed.
func checkCutoffs(res rank.Result, rosterSize, interval int) error {
	if rosterSize == 0 {
		if len(res.Cutoffs) != 0 {
			return fmt.Errorf("empty roster produced %d cutoffs", len(res.Cutoffs))
		}
		return nil
	}

	if _, ok := res.Cutoffs[rosterSize]; !ok {
		return fmt.Errorf("missing terminal cutoff at %d", rosterSize)
	}

	for processed := range res.Cutoffs {
		if processed == rosterSize {
			continue
		}
		if processed <= 0 || processed%interval != 0 || processed > rosterSize {
			return fmt.Errorf("unexpected cutoff checkpoint at %d", processed)
		}
	}

	return nil
}
