// Package search - neighborhood evaluation of one relocation.
//
// For every stack of the corridor the move is simulated and the rest of the
// retrieval is completed greedily from the current target block. The cheapest
// completion decides the committed move; any completion that beats the
// incumbent becomes the new incumbent on the spot, even if it is not the
// cheapest of this neighborhood.

package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bayreloc/bay"
	"github.com/katalvlaran/bayreloc/lookahead"
)

// evaluate returns the destination for the top block of src, where item is
// the block being uncovered, cum the relocations already committed in this
// trajectory and committed their snapshots. lookahead.ErrNoDestination (wrapped)
// means no corridor stack admits a feasible completion.
func (w *walker) evaluate(state bay.Bay, src, item, cum int, committed []bay.Bay) (int, error) {
	e := w.engine
	dests, err := e.selector.Select(state, src, w.rng)
	if err != nil {
		return -1, fmt.Errorf("search: corridor: %w", err)
	}

	var (
		best     = -1
		bestCost = math.MaxInt
	)
	for _, dst := range dests {
		sim := state.Clone()
		if err = sim.Relocate(src, dst, e.caps); err != nil {
			return -1, fmt.Errorf("search: simulate: %w", err)
		}

		res, cerr := lookahead.Complete(sim, e.caps, e.nels, item)
		if errors.Is(cerr, lookahead.ErrNoDestination) {
			continue
		}
		if cerr != nil {
			return -1, cerr
		}

		if res.Moves < bestCost {
			best, bestCost = dst, res.Moves
		}

		// The simulated relocation itself counts once.
		tail := res.Path
		e.offer(cum+1+res.Moves, w.id, w.index, func() []bay.Bay {
			return joinPath(e.bay, committed, tail)
		})
	}

	if best < 0 {
		return -1, fmt.Errorf("search: item %d: %w", item, lookahead.ErrNoDestination)
	}

	return best, nil
}

// joinPath concatenates the initial bay, the committed snapshots and a
// completion path (whose head is the bay right after the evaluated move).
func joinPath(initial bay.Bay, committed, tail []bay.Bay) []bay.Bay {
	out := make([]bay.Bay, 0, 1+len(committed)+len(tail))
	out = append(out, initial.Clone())
	out = append(out, committed...)
	return append(out, tail...)
}
