// Package search - the anytime trajectory loop.
//
// Solve repeats trajectories until a stopping condition holds. Conditions are
// checked only between trajectories:
//   - the wall-clock time limit has elapsed;
//   - ctx is cancelled;
//   - MaxTrajectories trajectories have been started (when > 0);
//   - StopAtLowerBound is set and the incumbent equals the lower bound.
//
// With Workers>1 each worker runs its own loop on a private RNG stream; the
// first fatal error cancels the others through the errgroup context.

package search

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bayreloc/bay"
)

// Solve runs the search and returns the best plan found. Cancelling ctx ends
// the search early without error; the incumbent so far is returned. A non-nil
// error means the instance contract was violated during the search.
func (e *Engine) Solve(ctx context.Context) (Result, error) {
	e.start = time.Now()
	deadline := e.start.Add(e.opts.TimeLimit)
	base := rngFromSeed(e.opts.Seed)

	if e.opts.Workers == 1 {
		w := &walker{engine: e, rng: base}
		if err := e.loop(ctx, w, deadline); err != nil {
			return e.Result(), err
		}
		return e.Result(), nil
	}

	// Derive every stream before starting workers so the set is reproducible.
	walkers := make([]*walker, e.opts.Workers)
	for i := range walkers {
		walkers[i] = &walker{engine: e, rng: deriveRNG(base, uint64(i)), id: i}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, w := range walkers {
		w := w
		g.Go(func() error {
			return e.loop(gctx, w, deadline)
		})
	}
	err := g.Wait()

	return e.Result(), err
}

// Solve is a convenience wrapper: NewEngine followed by Engine.Solve.
func Solve(ctx context.Context, b bay.Bay, nels int, opts ...Option) (Result, error) {
	e, err := NewEngine(b, nels, opts...)
	if err != nil {
		return Result{}, err
	}
	return e.Solve(ctx)
}

// loop runs trajectories for one worker until a stopping condition holds.
func (e *Engine) loop(ctx context.Context, w *walker, deadline time.Time) error {
	for {
		if e.stop(ctx, deadline) {
			return nil
		}
		index := e.trajectories.Add(1)
		if limit := int64(e.opts.MaxTrajectories); limit > 0 && index > limit {
			e.trajectories.Add(-1)
			return nil
		}
		if err := w.run(index); err != nil {
			return err
		}
	}
}

// stop reports whether no further trajectory should start.
func (e *Engine) stop(ctx context.Context, deadline time.Time) bool {
	if ctx.Err() != nil {
		return true
	}
	if !time.Now().Before(deadline) {
		return true
	}
	if e.opts.StopAtLowerBound && e.inc.Moves() <= e.lowerBound {
		return true
	}
	return false
}
