// SPDX-License-Identifier: MIT
// Package: bayreloc/corridor
//
// roulette.go - roulette-wheel selection without replacement.
//
// Contract:
//   - scores is not mutated; a private copy is renormalized as stacks are drawn.
//   - Only indices with a positive score are selectable.
//   - draw must return values in [0,1); it is called once per selection.
//   - If rounding leaves the cumulative sum below the draw, the last
//     selectable index is taken, so every draw selects something.
//
// Complexity: O(width · m) time, O(m) space.

package corridor

// Roulette selects up to width indices from scores, returning them in the
// order they were drawn. Selection stops early once no selectable index is left.
// A width of zero or less selects nothing.
func Roulette(scores []float64, width int, draw func() float64) []int {
	if width <= 0 {
		return nil
	}
	var (
		m        = len(scores)
		s        = make([]float64, m)
		taken    = make([]bool, m)
		order    = make([]int, 0, width)
		i, last  int
		r, cum   float64
		selected int
	)
	copy(s, scores)

	for len(order) < width {
		// Locate the last selectable index; none left means we are done.
		last = -1
		for i = m - 1; i >= 0; i-- {
			if !taken[i] && s[i] > 0 {
				last = i
				break
			}
		}
		if last < 0 {
			break
		}

		r = draw()
		cum = 0
		selected = last
		for i = 0; i <= last; i++ {
			if taken[i] || s[i] <= 0 {
				continue
			}
			cum += s[i]
			if cum >= r {
				selected = i
				break
			}
		}

		taken[selected] = true
		order = append(order, selected)
		renormalize(s, taken, s[selected])
		s[selected] = 0
	}

	return order
}

// renormalize rescales the scores of untaken stacks by 1/(1-p) so they again
// sum to 1 after a stack of probability p has been removed.
func renormalize(s []float64, taken []bool, p float64) {
	rest := 1 - p
	if rest <= 0 {
		return
	}
	for i := range s {
		if !taken[i] {
			s[i] /= rest
		}
	}
}
