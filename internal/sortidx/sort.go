// Package sortidx produces the deterministic descending-elevation sweep
// order the rest of the core drives over. Tie-break: smaller flat index
// first, which fixes which of two simultaneously-activating neighbors
// wins a merge.
package sortidx

import "sort"

// Build returns a permutation order of [0, len(elev)) such that
// elev[order[k]] is non-increasing in k, with ties broken by ascending
// flat index. Complexity: O(N log N).
func Build(elev []int32) []int {
	n := len(elev)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	sort.Slice(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if elev[ia] != elev[ib] {
			return elev[ia] > elev[ib]
		}

		return ia < ib
	})

	return order
}
