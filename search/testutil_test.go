// Package search_test provides helpers shared across the search tests.
package search_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayreloc/bay"
	"github.com/katalvlaran/bayreloc/search"
)

const (
	// seedDet is the fixed seed used by reproducibility tests.
	seedDet = int64(42)

	// timeLong is a budget that never expires inside a test; runs are bounded
	// by MaxTrajectories instead.
	timeLong = time.Hour
)

// randomBay returns a full bay of m stacks with h tiers holding 1..m*h.
func randomBay(seed int64, m, h int) bay.Bay {
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(m * h)
	b := make(bay.Bay, m)
	for i := 0; i < m; i++ {
		for j := 0; j < h; j++ {
			b[i] = append(b[i], perm[i*h+j]+1)
		}
	}
	return b
}

// requirePlan checks that path is a legal plan of exactly `moves` relocations:
// it starts at initial, ends empty, every step is one relocation or one
// retrieval of the next block, no stack exceeds its cap and no block is lost.
func requirePlan(t *testing.T, initial bay.Bay, caps bay.Caps, nels, moves int, path []bay.Bay) {
	t.Helper()
	require.NotEmpty(t, path)
	require.True(t, bay.Equal(initial, path[0]), "path must start at the initial bay")
	require.True(t, path[len(path)-1].Empty(), "path must end with an empty bay")

	var (
		relocations int
		next        = 1
	)
	for step := 1; step < len(path); step++ {
		prev, cur := path[step-1], path[step]
		for i := range cur {
			require.LessOrEqual(t, cur.Height(i), caps.Cap(i), "step %d: stack %d over cap", step, i)
		}
		switch cur.Items() {
		case prev.Items():
			relocations++
			requireSingleRelocation(t, step, prev, cur)
		case prev.Items() - 1:
			c := prev.Clone()
			require.NoError(t, c.Retrieve(next), "step %d: block %d not retrievable", step, next)
			require.True(t, bay.Equal(c, cur), "step %d: retrieval of %d does not match", step, next)
			next++
		default:
			t.Fatalf("step %d: block count jumped from %d to %d", step, prev.Items(), cur.Items())
		}
		require.Equal(t, nels, cur.Items()+next-1, "step %d: conservation broken", step)
	}
	require.Equal(t, nels+1, next, "every block must be retrieved in order")
	require.Equal(t, moves, relocations)
}

// requireSingleRelocation checks that cur follows from prev by one top-to-top move.
func requireSingleRelocation(t *testing.T, step int, prev, cur bay.Bay) {
	t.Helper()
	from, to := -1, -1
	for i := range prev {
		switch cur.Height(i) - prev.Height(i) {
		case 0:
		case -1:
			from = i
		case 1:
			to = i
		default:
			t.Fatalf("step %d: stack %d changed by more than one block", step, i)
		}
	}
	require.True(t, from >= 0 && to >= 0, "step %d: not a relocation", step)
	c := prev.Clone()
	require.NoError(t, c.Relocate(from, to, nil))
	require.True(t, bay.Equal(c, cur), "step %d: relocation %d->%d does not match", step, from, to)
}

// recorder is an Observer collecting every event.
type recorder struct {
	improvements []int
	outcomes     map[string]int
}

func newRecorder() *recorder { return &recorder{outcomes: map[string]int{}} }

func (r *recorder) OnImprove(imp search.Improvement) {
	r.improvements = append(r.improvements, imp.Moves)
}

func (r *recorder) OnTrajectory(rep search.TrajectoryReport) {
	r.outcomes[rep.Outcome.String()]++
}
