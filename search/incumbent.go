package search

import (
	"math"
	"sync"
	"time"

	"github.com/katalvlaran/bayreloc/bay"
)

// Incumbent is the best plan found so far. Its move count and path change
// together, under one lock, and only on strict improvement.
type Incumbent struct {
	mu    sync.Mutex
	moves int
	found bool
	at    time.Duration
	path  []bay.Bay
}

// NewIncumbent returns an incumbent holding no plan (math.MaxInt moves).
func NewIncumbent() *Incumbent {
	return &Incumbent{moves: math.MaxInt}
}

// Moves returns the current best relocation count.
func (in *Incumbent) Moves() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.moves
}

// Offer replaces the incumbent if moves is strictly better. build is called
// only on improvement, inside the critical section, to produce the plan path.
// Negative counts are rejected.
func (in *Incumbent) Offer(moves int, at time.Duration, build func() []bay.Bay) bool {
	if moves < 0 {
		return false
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	if moves >= in.moves {
		return false
	}
	in.moves = moves
	in.found = true
	in.at = at
	if build != nil {
		in.path = build()
	}
	return true
}

// Snapshot returns a consistent copy of the incumbent state. The path slice is
// shared; snapshots inside it are never mutated after being recorded.
func (in *Incumbent) Snapshot() (moves int, found bool, at time.Duration, path []bay.Bay) {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.moves, in.found, in.at, in.path
}
