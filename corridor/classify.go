// SPDX-License-Identifier: MIT
// Package: bayreloc/corridor
//
// classify.go - deadlock-risk classification of destination stacks.

package corridor

import "github.com/katalvlaran/bayreloc/bay"

// Class is the deadlock-risk class of a candidate destination stack.
type Class int

const (
	// Ineligible marks the source stack and stacks at their height cap.
	Ineligible Class = iota
	// Empty marks an empty stack (type I).
	Empty
	// Safe marks a stack whose minimum is greater than the relocated block (type II).
	Safe
	// Risky marks a stack whose minimum is not greater than the relocated block (type III).
	Risky
)

// String returns a short label for the class.
func (c Class) String() string {
	switch c {
	case Empty:
		return "empty"
	case Safe:
		return "safe"
	case Risky:
		return "risky"
	default:
		return "ineligible"
	}
}

// Classification is the per-stack class assignment for one relocation.
type Classification struct {
	// Block is the block to relocate (top of the source stack).
	Block int
	// Classes[i] is the class of stack i.
	Classes []Class
	// Mins[i] is the minimum of stack i (bay.Infinity when empty).
	Mins []int
	// SumSafe is Σ min over Safe stacks.
	SumSafe int
	// SumRisky is Σ min over Risky stacks.
	SumRisky int
	// Empties counts Empty stacks.
	Empties int
}

// Eligible returns how many stacks can receive the block.
func (c Classification) Eligible() int {
	n := 0
	for _, cl := range c.Classes {
		if cl != Ineligible {
			n++
		}
	}

	return n
}

// Classify assigns a class to every stack of b for relocating the top block of src.
// Stacks at or above their cap, and src itself, are Ineligible.
func Classify(b bay.Bay, src int, caps bay.Caps) Classification {
	var (
		m = len(b)
		c = Classification{
			Classes: make([]Class, m),
			Mins:    make([]int, m),
		}
	)
	c.Block, _ = b.Top(src)

	for i := 0; i < m; i++ {
		c.Mins[i] = b.Min(i)
		if i == src || !caps.Eligible(b, i) {
			c.Classes[i] = Ineligible
			continue
		}
		switch {
		case c.Mins[i] == bay.Infinity:
			c.Classes[i] = Empty
			c.Empties++
		case c.Mins[i] > c.Block:
			c.Classes[i] = Safe
			c.SumSafe += c.Mins[i]
		default:
			c.Classes[i] = Risky
			c.SumRisky += c.Mins[i]
		}
	}

	return c
}
