// Package search - Engine: the run context of the corridor method.
//
// The Engine owns everything a run needs: the loaded bay (never mutated),
// caps, corridor selector, incumbent, counters, the clock origin and the
// observer. Trajectory workers hold a pointer to it plus their own RNG.

package search

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/bayreloc/bay"
	"github.com/katalvlaran/bayreloc/corridor"
)

// Engine holds the configuration and shared state of one search run.
type Engine struct {
	// Configuration / policy
	opts       Options
	bay        bay.Bay
	nels       int
	caps       bay.Caps
	selector   corridor.Selector
	lowerBound int
	observer   Observer

	// Shared run state
	inc          *Incumbent
	start        time.Time
	trajectories atomic.Int64
	completed    atomic.Int64
	fathomed     atomic.Int64
	deadEnds     atomic.Int64
}

// NewEngine validates the instance and the options and prepares a run.
// b must hold every block 1..nels exactly once; it is copied.
func NewEngine(b bay.Bay, nels int, opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(b) == 0 {
		return nil, ErrNoStacks
	}
	if nels < 0 {
		return nil, fmt.Errorf("nels %d: %w", nels, ErrBadItemCount)
	}
	if o.TimeLimit <= 0 {
		return nil, fmt.Errorf("time limit %v: %w", o.TimeLimit, ErrBadTimeLimit)
	}
	if o.Workers < 1 {
		return nil, fmt.Errorf("workers %d: %w", o.Workers, ErrBadWorkers)
	}
	if o.MaxTrajectories < 0 {
		return nil, fmt.Errorf("max trajectories %d: %w", o.MaxTrajectories, ErrBadBudget)
	}
	if err := b.Validate(nels); err != nil {
		return nil, fmt.Errorf("search: instance: %w", err)
	}

	caps, err := bay.NewCaps(o.CapMode, o.Height, b)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	width, err := corridor.ValidateWidth(o.Width, len(b))
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	o.Width = width
	if o.Seed == 0 {
		o.Seed = defaultRNGSeed
	}

	e := &Engine{
		opts:       o,
		bay:        b.Clone(),
		nels:       nels,
		caps:       caps,
		selector:   corridor.Selector{Width: width, Caps: caps},
		lowerBound: b.LowerBound(),
		observer:   o.Observer,
		inc:        NewIncumbent(),
		start:      time.Now(),
	}
	if e.observer == nil {
		e.observer = NopObserver{}
	}

	return e, nil
}

// Options returns the effective options (normalized width and seed).
func (e *Engine) Options() Options { return e.opts }

// Caps returns the per-stack height caps of the run.
func (e *Engine) Caps() bay.Caps { return e.caps }

// LowerBound returns the admissible lower bound of the initial bay.
func (e *Engine) LowerBound() int { return e.lowerBound }

// Incumbent exposes the shared incumbent for read access during or after Solve.
func (e *Engine) Incumbent() *Incumbent { return e.inc }

// elapsed returns the time since Solve started.
func (e *Engine) elapsed() time.Duration { return time.Since(e.start) }

// offer submits a candidate plan of `moves` relocations and notifies the
// observer on improvement.
func (e *Engine) offer(moves, worker int, index int64, build func() []bay.Bay) bool {
	at := e.elapsed()
	if !e.inc.Offer(moves, at, build) {
		return false
	}
	e.observer.OnImprove(Improvement{Moves: moves, Elapsed: at, Worker: worker, Trajectory: index})

	return true
}

// Result assembles the externally visible outcome from the current state.
func (e *Engine) Result() Result {
	moves, found, at, path := e.inc.Snapshot()
	return Result{
		Moves:        moves,
		Found:        found,
		TimeToBest:   at,
		Elapsed:      e.elapsed(),
		LowerBound:   e.lowerBound,
		Trajectories: e.trajectories.Load(),
		Completed:    e.completed.Load(),
		Fathomed:     e.fathomed.Load(),
		DeadEnds:     e.deadEnds.Load(),
		Seed:         e.opts.Seed,
		BestPath:     path,
	}
}
