// SPDX-License-Identifier: MIT
// Package: bayreloc/corridor
//
// corridor.go - corridor selection for one relocation.

package corridor

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/bayreloc/bay"
)

// FullWidth disables the stochastic corridor: every eligible stack is a candidate.
const FullWidth = -1

// Source supplies uniform draws in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// ValidateWidth normalizes a configured corridor width for a bay of the given
// number of stacks. FullWidth and width == stacks both yield FullWidth; any
// other width must lie in [1, stacks-1].
func ValidateWidth(width, stacks int) (int, error) {
	if width == FullWidth || width == stacks {
		return FullWidth, nil
	}
	if width < 1 || width > stacks-1 {
		return 0, fmt.Errorf("width %d with %d stacks: %w", width, stacks, ErrBadWidth)
	}

	return width, nil
}

// Selector draws corridors of a fixed width under fixed height caps.
type Selector struct {
	// Width is the number of stacks per corridor, or FullWidth.
	Width int
	// Caps are the per-stack height caps.
	Caps bay.Caps
}

// Select returns the destination stacks for relocating the top block of src,
// in ascending index order. The source stack and stacks at their cap are never
// returned. rng is only consulted for partial corridors. A Width rejected by
// ValidateWidth for this bay yields ErrBadWidth.
func (s Selector) Select(b bay.Bay, src int, rng Source) ([]int, error) {
	width, err := ValidateWidth(s.Width, len(b))
	if err != nil {
		return nil, err
	}
	if width == FullWidth {
		out := make([]int, 0, len(b))
		for i := range b {
			if i != src && s.Caps.Eligible(b, i) {
				out = append(out, i)
			}
		}
		return out, nil
	}
	if rng == nil {
		return nil, ErrNilSource
	}

	scores := Scores(Classify(b, src, s.Caps))
	out := Roulette(scores, width, rng.Float64)
	sort.Ints(out)

	return out, nil
}
