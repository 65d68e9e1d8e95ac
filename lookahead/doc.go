// Package lookahead implements the deterministic greedy completion used to
// score candidate relocations.
//
// Complete retrieves the blocks start, start+1, …, nels from a private copy of
// a bay. Whenever the next block is covered, the covering block is relocated
// with a fixed priority rule (see Destination):
//
//  1. an empty stack, if any is available;
//  2. otherwise the stack whose minimum is the smallest value still greater
//     than the relocated block, which creates no new blocking;
//  3. otherwise the stack with the largest minimum, which keeps the new
//     blocking as mild as possible.
//
// The completion never backtracks and uses no randomness, so two calls with
// the same inputs return the same move count and the same snapshot sequence.
// It is an estimator for the search layer, not a final plan.
package lookahead
