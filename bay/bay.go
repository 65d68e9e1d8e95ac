// SPDX-License-Identifier: MIT
// Package: bayreloc/bay
//
// bay.go - the Bay value and its primitive queries and moves.
//
// Contract:
//   - Stacks are listed bottom→top; the last element is the top.
//   - Queries never mutate; Relocate/Retrieve mutate in place and validate first,
//     so a failed call leaves the bay untouched.
//   - Index errors are returned as sentinels, never panics.
//
// Complexity:
//   - Locate / Validate: O(N) over all blocks.
//   - Min: O(h) over one stack.
//   - Relocate / Retrieve (after Locate): O(1) amortized.

package bay

import (
	"fmt"
	"math"
	"strings"
)

// Infinity is the minimum reported for an empty stack.
const Infinity = math.MaxInt

// Bay is the nested-stack state of a bay. b[i] holds stack i, bottom to top.
type Bay [][]int

// Move is a relocation of the top block of stack From onto stack To.
type Move struct {
	From int
	To   int
}

// String renders the move as "From->To".
func (m Move) String() string { return fmt.Sprintf("%d->%d", m.From, m.To) }

// Clone returns a deep copy of b. Every stack gets its own backing array, so
// pushes on the copy never alias the original.
func (b Bay) Clone() Bay {
	c := make(Bay, len(b))
	for i, s := range b {
		cs := make([]int, len(s), len(s)+1)
		copy(cs, s)
		c[i] = cs
	}

	return c
}

// Stacks returns the number of stacks.
func (b Bay) Stacks() int { return len(b) }

// Height returns the number of blocks in stack i (0 for an invalid index).
func (b Bay) Height(i int) int {
	if i < 0 || i >= len(b) {
		return 0
	}

	return len(b[i])
}

// IsEmpty reports whether stack i holds no blocks.
func (b Bay) IsEmpty(i int) bool { return b.Height(i) == 0 }

// Top returns the block on top of stack i; ok is false for an empty stack.
func (b Bay) Top(i int) (item int, ok bool) {
	if b.IsEmpty(i) {
		return 0, false
	}

	return b[i][len(b[i])-1], true
}

// Min returns the smallest identifier in stack i, or Infinity if the stack is
// empty (or the index is invalid).
func (b Bay) Min(i int) int {
	m := Infinity
	if i < 0 || i >= len(b) {
		return m
	}
	for _, v := range b[i] {
		if v < m {
			m = v
		}
	}

	return m
}

// Locate returns the stack and position (0 = bottom) of item.
// ErrItemNotFound is returned if the item is not in the bay.
func (b Bay) Locate(item int) (stack, pos int, err error) {
	for i, s := range b {
		for j, v := range s {
			if v == item {
				return i, j, nil
			}
		}
	}

	return -1, -1, fmt.Errorf("item %d: %w", item, ErrItemNotFound)
}

// Above returns how many blocks sit on top of position pos in stack.
func (b Bay) Above(stack, pos int) int {
	h := b.Height(stack)
	if pos < 0 || pos >= h {
		return 0
	}

	return h - pos - 1
}

// Items returns the total number of blocks in the bay.
func (b Bay) Items() int {
	n := 0
	for _, s := range b {
		n += len(s)
	}

	return n
}

// Empty reports whether no block is left in the bay.
func (b Bay) Empty() bool { return b.Items() == 0 }

// Relocate moves the top block of stack from onto stack to. The destination
// must lie below its cap; a nil caps disables the height check.
func (b Bay) Relocate(from, to int, caps Caps) error {
	if from < 0 || from >= len(b) || to < 0 || to >= len(b) {
		return fmt.Errorf("relocate %d->%d: %w", from, to, ErrStackIndex)
	}
	if from == to {
		return fmt.Errorf("relocate %d->%d: %w", from, to, ErrSameStack)
	}
	if len(b[from]) == 0 {
		return fmt.Errorf("relocate %d->%d: %w", from, to, ErrEmptyStack)
	}
	if caps != nil && len(b[to]) >= caps.Cap(to) {
		return fmt.Errorf("relocate %d->%d: %w", from, to, ErrStackFull)
	}

	top := len(b[from]) - 1
	b[to] = append(b[to], b[from][top])
	b[from] = b[from][:top]

	return nil
}

// Retrieve removes item from the bay. The item must be on top of its stack.
func (b Bay) Retrieve(item int) error {
	stack, pos, err := b.Locate(item)
	if err != nil {
		return err
	}
	if b.Above(stack, pos) != 0 {
		return fmt.Errorf("retrieve %d: %w", item, ErrNotOnTop)
	}
	b[stack] = b[stack][:pos]

	return nil
}

// Validate checks conservation for a bay that still holds every block:
// each identifier in [1, nels] appears exactly once and nothing else does.
func (b Bay) Validate(nels int) error {
	if nels < 0 {
		return fmt.Errorf("nels %d: %w", nels, ErrItemOutOfRange)
	}
	// Checked before sizing seen: nels never allocates more than the bay holds.
	if n := b.Items(); n < nels {
		return fmt.Errorf("bay holds %d blocks, want %d: %w", n, nels, ErrItemNotFound)
	}
	seen := make([]bool, nels+1)
	count := 0
	for i, s := range b {
		for _, v := range s {
			if v < 1 || v > nels {
				return fmt.Errorf("stack %d: item %d not in [1,%d]: %w", i, v, nels, ErrItemOutOfRange)
			}
			if seen[v] {
				return fmt.Errorf("stack %d: item %d: %w", i, v, ErrDuplicateItem)
			}
			seen[v] = true
			count++
		}
	}
	if count != nels {
		for v := 1; v <= nels; v++ {
			if !seen[v] {
				return fmt.Errorf("item %d: %w", v, ErrItemNotFound)
			}
		}
	}

	return nil
}

// Equal reports whether a and b hold the same stacks in the same order.
func Equal(a, b Bay) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}

	return true
}

// String renders the bay one stack per line, bottom block first.
func (b Bay) String() string {
	var sb strings.Builder
	for i, s := range b {
		fmt.Fprintf(&sb, "stack %3d |", i)
		for _, v := range s {
			fmt.Fprintf(&sb, "%4d", v)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
