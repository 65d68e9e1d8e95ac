// SPDX-License-Identifier: MIT
// Package: bayreloc/bay
//
// caps.go - per-stack height caps (the "vertical corridor").
//
// Two policies exist:
//   - ConstantCap: cap[i] = height for every stack.
//   - VariableCap: cap[i] = len(initial[i]) + height, i.e. a fixed number of
//     free slots on top of what the stack held when the bay was loaded.
//
// Caps are computed once per run and never change during the search.

package bay

import "fmt"

// CapMode selects how the height parameter is interpreted.
type CapMode int

const (
	// ConstantCap uses the height parameter as the maximum height of every stack.
	ConstantCap CapMode = iota
	// VariableCap uses the height parameter as the number of free slots
	// allowed above each stack's initial height.
	VariableCap
)

// String returns the short label of the mode ("C" or "NC", as in run banners).
func (m CapMode) String() string {
	switch m {
	case ConstantCap:
		return "C"
	case VariableCap:
		return "NC"
	default:
		return fmt.Sprintf("CapMode(%d)", int(m))
	}
}

// ParseCapMode maps "constant"/"variable" (or "c"/"nc", "1"/"0") to a CapMode.
func ParseCapMode(s string) (CapMode, error) {
	switch s {
	case "constant", "c", "C", "1":
		return ConstantCap, nil
	case "variable", "nc", "NC", "0":
		return VariableCap, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrBadCapMode)
}

// Caps holds the height cap of every stack.
type Caps []int

// NewCaps builds the caps of initial under mode with the given height parameter.
// In ConstantCap mode every initial stack must already fit below the cap.
func NewCaps(mode CapMode, height int, initial Bay) (Caps, error) {
	if height <= 0 {
		return nil, fmt.Errorf("height %d: %w", height, ErrBadHeight)
	}

	caps := make(Caps, len(initial))
	switch mode {
	case ConstantCap:
		for i := range initial {
			if len(initial[i]) > height {
				return nil, fmt.Errorf("stack %d holds %d > %d: %w", i, len(initial[i]), height, ErrBadHeight)
			}
			caps[i] = height
		}
	case VariableCap:
		for i := range initial {
			caps[i] = len(initial[i]) + height
		}
	default:
		return nil, fmt.Errorf("%v: %w", mode, ErrBadCapMode)
	}

	return caps, nil
}

// Cap returns the cap of stack i (0 for an invalid index).
func (c Caps) Cap(i int) int {
	if i < 0 || i >= len(c) {
		return 0
	}

	return c[i]
}

// Eligible reports whether stack i of b can receive one more block.
func (c Caps) Eligible(b Bay, i int) bool {
	return i >= 0 && i < len(b) && len(b[i]) < c.Cap(i)
}
