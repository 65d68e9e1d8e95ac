// SPDX-License-Identifier: MIT
// Package corridor builds the stochastic "corridor" of destination stacks
// considered for a single relocation.
//
// Given the block el on top of the source stack, every other stack that lies
// below its height cap falls into exactly one class:
//
//   - Empty (type I): no blocks; placing el there never blocks anything.
//   - Safe  (type II): min(stack) > el; el blocks nothing that leaves earlier.
//   - Risky (type III): min(stack) < el; placing el there creates a blocking.
//
// Raw scores favor, inside each class, the stacks whose minimum makes the
// placement least harmful:
//
//	s_I   = 1 / |I|
//	s_II  = (Σ_{II} min) / min(i)      normalized to sum 1 over class II
//	s_III = min(i) / (Σ_{III} min)
//
// Each class is then scaled by a weight looked up from a fixed table keyed by
// which classes are present, so the final scores form a probability
// distribution over the eligible stacks.
//
// Roulette draws stacks without replacement from that distribution until the
// configured width is reached. It is a pure function of the scores and of the
// random draws, so tests can feed a fixed draw sequence.
//
// A width of FullWidth (or the number of stacks) disables the stochastic part:
// every eligible stack except the source is in the corridor.
package corridor
