// Package search runs the stochastic corridor method for the Block Relocation
// Problem: an anytime search that repeatedly builds randomized retrieval
// trajectories and keeps the best complete relocation plan found.
//
// One trajectory walks the blocks 1..nels on a copy of the bay. Whenever the
// next block is covered, each covering block is relocated in turn:
//
//  1. corridor.Selector draws the candidate destination stacks;
//  2. every candidate move is simulated and completed with lookahead.Complete;
//  3. the candidate with the cheapest completion is committed (first on ties).
//
// Every simulated completion that beats the incumbent replaces it at once,
// together with its full snapshot path: initial bay, committed snapshots,
// then the completion's snapshots. A trajectory whose committed relocations
// already reach the incumbent is fathomed and a fresh one starts.
//
// The loop stops between trajectories once the time limit has elapsed, the
// context is cancelled, an optional trajectory budget is spent, or (opt-in)
// the incumbent meets the bay's lower bound. A trajectory in progress always
// runs to completion or fathoming, so the limit may be overrun slightly.
//
// All run state lives in an Engine; nothing is package-global. With Workers>1
// several trajectory loops share one Incumbent, whose value and path are
// updated together under a single lock.
//
// Determinism: with Workers==1 and a fixed Seed (0 selects a fixed default)
// the sequence of trajectories is reproducible; only the wall-clock stopping
// point varies. Use WithMaxTrajectories for fully reproducible runs.
//
// Errors: configuration problems are reported by NewEngine before any search
// starts. A block missing from the bay during the search is an instance
// contract violation and aborts Solve with an error wrapping bay.ErrItemNotFound.
package search
