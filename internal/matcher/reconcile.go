package matcher

import (
	"cmp"
	"slices"
)

// Reconcile orders positions from any number of patterns and drops those that
// overlap an earlier kept one. At a shared start the longer interval wins.
// The result reuses the backing array of positions and does not depend on
// the input order.
func Reconcile(positions [][2]int) [][2]int {
	if len(positions) < 2 {
		return positions
	}
	slices.SortFunc(positions, func(a, b [2]int) int {
		if c := cmp.Compare(a[0], b[0]); c != 0 {
			return c
		}
		return cmp.Compare(b[1], a[1])
	})

	out := positions[:0]
	cursor := 0
	for _, p := range positions {
		if p[0] >= cursor && p[1] > cursor {
			out = append(out, p)
			cursor = p[1]
		}
	}
	return out
}
