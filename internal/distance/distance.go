// Package distance compares two integer lists by rank.
package distance

import (
	"fmt"
	"slices"
)

// Calculate sorts copies of left and right and returns the sum of the absolute
// differences between elements of equal rank. The inputs are left untouched.
//
// The lists must have the same length; Calculate panics otherwise.
func Calculate(left, right []int64) int64 {
	if len(left) != len(right) {
		panic(fmt.Sprintf("distance: lists have different lengths (%d and %d)", len(left), len(right)))
	}

	l := slices.Clone(left)
	r := slices.Clone(right)
	slices.Sort(l)
	slices.Sort(r)

	var total int64
	for i := range l {
		total += abs(l[i] - r[i])
	}
	return total
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
