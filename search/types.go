// Package search defines options, results and sentinel errors for the
// corridor-method search.
//
// Options:
//
//	– TimeLimit:        wall-clock budget of Solve (must be > 0).
//	– Width:            corridor width; corridor.FullWidth (-1) or the stack count
//	                    disables the stochastic corridor.
//	– CapMode, Height:  height caps; see bay.NewCaps.
//	– Seed:             RNG seed; 0 selects a fixed default seed.
//	– Workers:          concurrent trajectory loops sharing one incumbent.
//	– MaxTrajectories:  stop after this many trajectories (0 = unlimited).
//	– StopAtLowerBound: stop once the incumbent equals bay.LowerBound.
//	– Observer:         receives improvements and trajectory outcomes.
//
// Errors (sentinel):
//
//	– ErrNoStacks      if the bay has no stacks.
//	– ErrBadItemCount  if nels is negative.
//	– ErrBadTimeLimit  if TimeLimit <= 0.
//	– ErrBadWorkers    if Workers < 1.
//	– ErrBadBudget     if MaxTrajectories < 0.
//	plus wrapped bay.ErrBadHeight / bay.ErrBadCapMode / corridor.ErrBadWidth
//	and the bay.Validate sentinels for a corrupted instance.
package search

import (
	"errors"
	"time"

	"github.com/katalvlaran/bayreloc/bay"
	"github.com/katalvlaran/bayreloc/corridor"
)

// Sentinel errors returned by NewEngine.
var (
	// ErrNoStacks indicates an empty bay (zero stacks).
	ErrNoStacks = errors.New("search: bay has no stacks")

	// ErrBadItemCount indicates a negative number of blocks.
	ErrBadItemCount = errors.New("search: item count must be non-negative")

	// ErrBadTimeLimit indicates a non-positive time limit.
	ErrBadTimeLimit = errors.New("search: TimeLimit must be positive")

	// ErrBadWorkers indicates fewer than one worker.
	ErrBadWorkers = errors.New("search: Workers must be at least 1")

	// ErrBadBudget indicates a negative trajectory budget.
	ErrBadBudget = errors.New("search: MaxTrajectories must be non-negative")
)

// Defaults mirror the classic command-line defaults of the method.
const (
	// DefaultTimeLimit is the wall-clock budget when none is configured.
	DefaultTimeLimit = 60 * time.Second
	// DefaultWidth disables the stochastic corridor.
	DefaultWidth = corridor.FullWidth
	// DefaultWorkers runs a single, reproducible trajectory loop.
	DefaultWorkers = 1
)

// Options configures an Engine.
type Options struct {
	TimeLimit        time.Duration // Wall-clock budget of Solve
	Width            int           // Corridor width or corridor.FullWidth
	CapMode          bay.CapMode   // Interpretation of Height
	Height           int           // Constant cap or per-stack slack
	Seed             int64         // RNG seed (0 ⇒ fixed default)
	Workers          int           // Concurrent trajectory loops
	MaxTrajectories  int           // Trajectory budget (0 ⇒ unlimited)
	StopAtLowerBound bool          // Stop when the lower bound is reached
	Observer         Observer      // Progress callbacks (nil ⇒ none)
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns the defaults: 60s, full-width corridor, constant
// caps, seed 0, one worker, no trajectory budget. Height has no default and
// must be set.
func DefaultOptions() Options {
	return Options{
		TimeLimit: DefaultTimeLimit,
		Width:     DefaultWidth,
		CapMode:   bay.ConstantCap,
		Workers:   DefaultWorkers,
	}
}

// WithTimeLimit sets the wall-clock budget.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithWidth sets the corridor width (corridor.FullWidth for all stacks).
func WithWidth(width int) Option {
	return func(o *Options) { o.Width = width }
}

// WithConstantCap caps every stack at height.
func WithConstantCap(height int) Option {
	return func(o *Options) {
		o.CapMode = bay.ConstantCap
		o.Height = height
	}
}

// WithVariableCap allows slack free slots above each stack's initial height.
func WithVariableCap(slack int) Option {
	return func(o *Options) {
		o.CapMode = bay.VariableCap
		o.Height = slack
	}
}

// WithSeed sets the RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers sets the number of concurrent trajectory loops.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithMaxTrajectories stops the search after n trajectories (0 = unlimited).
func WithMaxTrajectories(n int) Option {
	return func(o *Options) { o.MaxTrajectories = n }
}

// WithStopAtLowerBound stops the search as soon as the incumbent is proven optimal
// by the bay's lower bound.
func WithStopAtLowerBound() Option {
	return func(o *Options) { o.StopAtLowerBound = true }
}

// WithObserver installs an Observer. With Workers>1 it is called concurrently.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// Outcome is the terminal state of one trajectory.
type Outcome int

const (
	// Completed trajectories emptied the bay.
	Completed Outcome = iota
	// Fathomed trajectories were abandoned once their cost reached the incumbent.
	Fathomed
	// DeadEnd trajectories hit a relocation with no eligible destination.
	DeadEnd
)

// String returns the label used in logs and metrics.
func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case Fathomed:
		return "fathomed"
	case DeadEnd:
		return "dead_end"
	default:
		return "unknown"
	}
}

// Result is the externally visible outcome of Solve.
type Result struct {
	// Moves is the best relocation count found (math.MaxInt when !Found).
	Moves int
	// Found reports whether any complete plan was found.
	Found bool
	// TimeToBest is the elapsed time at which Moves was reached.
	TimeToBest time.Duration
	// Elapsed is the total search time.
	Elapsed time.Duration
	// LowerBound is bay.LowerBound of the initial bay.
	LowerBound int
	// Trajectories counts the trajectories run, split by outcome below.
	Trajectories int64
	Completed    int64
	Fathomed     int64
	DeadEnds     int64
	// Seed is the seed actually used.
	Seed int64
	// BestPath holds one snapshot per operation, from the initial bay to the empty bay.
	BestPath []bay.Bay
}

// Optimal reports whether the best plan provably meets the lower bound.
func (r Result) Optimal() bool { return r.Found && r.Moves == r.LowerBound }
