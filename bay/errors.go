// SPDX-License-Identifier: MIT
// Package bay: sentinel error set.
// Algorithms return these sentinels (optionally wrapped with %w); callers match
// them with errors.Is.

package bay

import "errors"

var (
	// ErrItemNotFound indicates a block that must be present is missing from the bay.
	// During search this is an instance contract violation and aborts the run.
	ErrItemNotFound = errors.New("bay: item not found")

	// ErrStackIndex indicates a stack index outside [0, len(bay)).
	ErrStackIndex = errors.New("bay: stack index out of range")

	// ErrEmptyStack indicates a relocation from a stack with no blocks.
	ErrEmptyStack = errors.New("bay: source stack is empty")

	// ErrStackFull indicates a relocation onto a stack already at its height cap.
	ErrStackFull = errors.New("bay: destination stack is at its height cap")

	// ErrSameStack indicates a relocation whose source and destination coincide.
	ErrSameStack = errors.New("bay: source and destination stacks coincide")

	// ErrNotOnTop indicates a retrieval of a block that is still covered.
	ErrNotOnTop = errors.New("bay: item is not on top of its stack")

	// ErrDuplicateItem indicates a block identifier occurring more than once.
	ErrDuplicateItem = errors.New("bay: duplicate item")

	// ErrItemOutOfRange indicates a block identifier outside [1, nels].
	ErrItemOutOfRange = errors.New("bay: item identifier out of range")

	// ErrBadHeight indicates a non-positive height parameter, or a constant cap
	// that the initial bay already exceeds.
	ErrBadHeight = errors.New("bay: invalid height parameter")

	// ErrBadCapMode indicates an unknown CapMode value.
	ErrBadCapMode = errors.New("bay: unknown cap mode")
)
