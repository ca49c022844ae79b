package worksheet

import (
	"sort"

	"github.com/nirajyt2022-source/edTech-sub001/internal/mastery"
	"github.com/nirajyt2022-source/edTech-sub001/internal/planner"
)

// assignFormatHints spreads the context's target format mix across the
// plan as per-slot format hints, so the adaptive mix shapes what the
// generator is asked for rather than only being observed after the
// fact. Largest-remainder rounding over the canonical format order,
// the same scheme recipe scaling uses. A missing or empty mix leaves
// the hints unset.
func assignFormatHints(plan []planner.SlotSpec, mix map[string]int) {
	total := len(plan)
	if total == 0 || len(mix) == 0 {
		return
	}

	weightSum := 0
	for _, f := range mastery.FormatOrder {
		weightSum += mix[f]
	}
	if weightSum == 0 {
		return
	}

	n := len(mastery.FormatOrder)
	counts := make([]int, n)
	remainders := make([]int, n)
	assigned := 0
	for i, f := range mastery.FormatOrder {
		scaled := total * mix[f]
		counts[i] = scaled / weightSum
		remainders[i] = scaled % weightSum
		assigned += counts[i]
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})
	for k := 0; assigned < total; k = (k + 1) % n {
		counts[order[k]]++
		assigned++
	}

	// Plans run easier roles first and the format order runs easier
	// formats first, so assigning in order pairs mcq-leaning formats
	// with recall-leaning slots.
	slot := 0
	for i, f := range mastery.FormatOrder {
		for c := 0; c < counts[i]; c++ {
			plan[slot].FormatHint = f
			slot++
		}
	}
}
