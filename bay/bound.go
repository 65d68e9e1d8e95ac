// SPDX-License-Identifier: MIT
// Package: bayreloc/bay
//
// bound.go - admissible lower bound on the number of relocations.

package bay

// LowerBound counts the blocks that sit above a smaller block in their stack.
// Each of them must be relocated at least once before the smaller block can be
// retrieved, so no solution needs fewer relocations.
//
// Complexity: O(N).
func (b Bay) LowerBound() int {
	lb := 0
	for _, s := range b {
		low := Infinity
		for _, v := range s {
			if v > low {
				lb++
				continue
			}
			low = v
		}
	}

	return lb
}
