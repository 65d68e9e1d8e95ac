// SPDX-License-Identifier: MIT
// Package bay models a bay of stacked blocks for the Block Relocation Problem.
//
// A Bay is an ordered set of stacks; each stack lists block identifiers from
// bottom to top, so the top of stack i is b[i][len(b[i])-1]. Blocks carry their
// retrieval priority as their identifier: block 1 leaves the bay first, then
// block 2, and so on up to nels.
//
// The package offers the primitive queries used by every search layer:
//
//   - Locate   - find the (stack, position) of a block.
//   - Min      - smallest identifier in a stack (Infinity when empty).
//   - Relocate - move a top block onto another stack, honoring height caps.
//   - Retrieve - remove the next block once it sits on top of its stack.
//
// Height caps are modeled by Caps, built from a CapMode:
//
//   - ConstantCap: every stack is capped at the same height.
//   - VariableCap: stack i is capped at its initial height plus a fixed slack.
//
// LowerBound returns the classic admissible bound on the number of
// relocations: every block that sits above a smaller block must move at least
// once.
//
// All mutating methods act on the receiver in place. Search code works on
// copies obtained via Clone and never touches the loaded bay.
package bay
