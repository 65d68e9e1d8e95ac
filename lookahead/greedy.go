// SPDX-License-Identifier: MIT
// Package: bayreloc/lookahead
//
// greedy.go - greedy completion of a partial retrieval.
//
// Contract:
//   - b is never mutated; the completion runs on a clone.
//   - Path[0] is (a copy of) b; one snapshot follows every relocation and
//     every retrieval, so len(Path) == 1 + Moves + retrieved blocks.
//   - A block in [start, nels] missing from the bay is an instance contract
//     violation: bay.ErrItemNotFound is returned and the caller must abort.
//   - ErrNoDestination means every other stack is at its cap; the partial
//     state cannot be completed.
//
// Complexity: O(nels · (N + m·h)) time, O(nels · N) memory for the path.

package lookahead

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bayreloc/bay"
)

// ErrNoDestination indicates that a covering block has no eligible stack to go to.
var ErrNoDestination = errors.New("lookahead: no eligible destination stack")

// Result is the outcome of a greedy completion.
type Result struct {
	// Moves is the number of relocations performed (retrievals are free).
	Moves int
	// Path holds the bay snapshots from the input bay to the empty bay.
	Path []bay.Bay
}

// Complete retrieves blocks start..nels from a copy of b, relocating covering
// blocks with the rule of Destination, and returns the relocation count with
// the snapshot sequence.
func Complete(b bay.Bay, caps bay.Caps, nels, start int) (Result, error) {
	size := 1
	if nels >= start {
		size += nels - start + 1
	}
	var (
		state = b.Clone()
		res   = Result{Path: make([]bay.Bay, 0, size)}
	)
	res.Path = append(res.Path, state.Clone())

	for k := start; k <= nels; k++ {
		src, pos, err := state.Locate(k)
		if err != nil {
			return Result{}, fmt.Errorf("lookahead: %w", err)
		}

		// Clear every block above k, one relocation at a time.
		for state.Above(src, pos) > 0 {
			el, _ := state.Top(src)
			dst, derr := Destination(state, caps, src, el)
			if derr != nil {
				return Result{}, derr
			}
			if err = state.Relocate(src, dst, caps); err != nil {
				return Result{}, fmt.Errorf("lookahead: %w", err)
			}
			res.Moves++
			res.Path = append(res.Path, state.Clone())
		}

		if err = state.Retrieve(k); err != nil {
			return Result{}, fmt.Errorf("lookahead: %w", err)
		}
		res.Path = append(res.Path, state.Clone())
	}

	return res, nil
}

// Destination picks the stack that receives block el, currently on top of src.
// Only stacks other than src that lie below their cap are considered.
//
//  1. An empty stack wins; among several, the highest index is taken.
//  2. Otherwise the stack with the smallest minimum greater than el
//     (lowest index on ties).
//  3. Otherwise the stack with the largest minimum (lowest index on ties).
//
// ErrNoDestination is returned if no stack is eligible.
func Destination(b bay.Bay, caps bay.Caps, src, el int) (int, error) {
	var (
		empty       = -1
		closest     = -1
		closestMin  = bay.Infinity
		largest     = -1
		largestMin  = -1
		i, m        int
		hasEligible bool
	)
	for i = range b {
		if i == src || !caps.Eligible(b, i) {
			continue
		}
		hasEligible = true
		if b.IsEmpty(i) {
			empty = i
			continue
		}
		m = b.Min(i)
		if m > el && m < closestMin {
			closest, closestMin = i, m
		}
		if m > largestMin {
			largest, largestMin = i, m
		}
	}

	switch {
	case !hasEligible:
		return -1, fmt.Errorf("block %d on stack %d: %w", el, src, ErrNoDestination)
	case empty >= 0:
		return empty, nil
	case closest >= 0:
		return closest, nil
	default:
		return largest, nil
	}
}
