// Package search - one randomized trajectory from the loaded bay to the empty bay.
//
// State machine:
//
//	Idle → Building ─┬→ Completed  (bay emptied)
//	                 ├→ Fathomed   (committed cost reached the incumbent)
//	                 └→ DeadEnd    (a covering block had nowhere to go)
//
// The committed path is private to the trajectory and dropped on fathoming.

package search

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/bayreloc/bay"
	"github.com/katalvlaran/bayreloc/lookahead"
)

// walker builds trajectories for one worker. It is not safe for concurrent use.
type walker struct {
	engine *Engine
	rng    *rand.Rand
	id     int
	index  int64 // 1-based index of the trajectory in progress
}

// trajectory runs a single trajectory and reports how it ended together with
// the relocations committed so far. A non-nil error is fatal for the run.
func (w *walker) trajectory() (Outcome, int, error) {
	var (
		e         = w.engine
		state     = e.bay.Clone()
		committed = make([]bay.Bay, 0, 2*e.nels)
		cum       int
	)

	for item := 1; item <= e.nels; item++ {
		src, pos, err := state.Locate(item)
		if err != nil {
			return Completed, cum, fmt.Errorf("search: trajectory: %w", err)
		}

		for blockers := state.Above(src, pos); blockers > 0; blockers-- {
			dst, eerr := w.evaluate(state, src, item, cum, committed)
			if errors.Is(eerr, lookahead.ErrNoDestination) {
				return DeadEnd, cum, nil
			}
			if eerr != nil {
				return Completed, cum, eerr
			}

			cum++
			if cum >= e.inc.Moves() {
				return Fathomed, cum, nil
			}

			if err = state.Relocate(src, dst, e.caps); err != nil {
				return Completed, cum, fmt.Errorf("search: commit: %w", err)
			}
			committed = append(committed, state.Clone())
		}

		if err = state.Retrieve(item); err != nil {
			return Completed, cum, fmt.Errorf("search: trajectory: %w", err)
		}
		committed = append(committed, state.Clone())
	}

	// Every relocation of a completed trajectory was already offered through
	// its last evaluation; only the relocation-free bay needs an explicit offer.
	if cum == 0 {
		e.offer(0, w.id, w.index, func() []bay.Bay {
			return joinPath(e.bay, committed, nil)
		})
	}

	return Completed, cum, nil
}

// run executes one trajectory and records its outcome.
func (w *walker) run(index int64) error {
	w.index = index
	began := time.Now()
	outcome, relocations, err := w.trajectory()
	if err != nil {
		return err
	}

	e := w.engine
	switch outcome {
	case Completed:
		e.completed.Add(1)
	case Fathomed:
		e.fathomed.Add(1)
	case DeadEnd:
		e.deadEnds.Add(1)
	}
	e.observer.OnTrajectory(TrajectoryReport{
		Worker:      w.id,
		Index:       index,
		Outcome:     outcome,
		Relocations: relocations,
		Duration:    time.Since(began),
	})

	return nil
}
