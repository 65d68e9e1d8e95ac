// SPDX-License-Identifier: MIT
// Package: bayreloc/corridor
//
// weights.go - class weights, looked up by which classes are present.

package corridor

// Weights are the probability masses given to the Empty, Safe and Risky classes.
type Weights struct {
	Empty float64
	Safe  float64
	Risky float64
}

// presence records which classes have at least one eligible stack.
type presence struct {
	safe  bool
	risky bool
	empty bool
}

// weightTable maps class presence to class weights. Every present class gets
// a positive weight and the weights of present classes sum to 1.
var weightTable = map[presence]Weights{
	{safe: true, risky: true, empty: true}:    {Empty: 0.25, Safe: 0.5, Risky: 0.25},
	{safe: true, risky: true, empty: false}:   {Empty: 0, Safe: 2.0 / 3.0, Risky: 1.0 / 3.0},
	{safe: true, risky: false, empty: true}:   {Empty: 1.0 / 3.0, Safe: 2.0 / 3.0, Risky: 0},
	{safe: true, risky: false, empty: false}:  {Empty: 0, Safe: 1, Risky: 0},
	{safe: false, risky: true, empty: true}:   {Empty: 0.5, Safe: 0, Risky: 0.5},
	{safe: false, risky: true, empty: false}:  {Empty: 0, Safe: 0, Risky: 1},
	{safe: false, risky: false, empty: true}:  {Empty: 1, Safe: 0, Risky: 0},
	{safe: false, risky: false, empty: false}: {},
}

// WeightsFor returns the class weights for the classes present in c.
func WeightsFor(c Classification) Weights {
	return weightTable[presence{
		safe:  c.SumSafe > 0,
		risky: c.SumRisky > 0,
		empty: c.Empties > 0,
	}]
}

// Scores returns the selection probability of every stack. Ineligible stacks
// score 0; when at least one stack is eligible the scores sum to 1.
func Scores(c Classification) []float64 {
	var (
		m        = len(c.Classes)
		scores   = make([]float64, m)
		w        = WeightsFor(c)
		safeNorm float64
		i        int
	)

	// Raw scores per class; each class is guarded against an empty denominator.
	for i = 0; i < m; i++ {
		switch c.Classes[i] {
		case Empty:
			if c.Empties > 0 {
				scores[i] = 1 / float64(c.Empties)
			}
		case Safe:
			scores[i] = float64(c.SumSafe) / float64(c.Mins[i])
			safeNorm += scores[i]
		case Risky:
			if c.SumRisky > 0 {
				scores[i] = float64(c.Mins[i]) / float64(c.SumRisky)
			}
		}
	}

	for i = 0; i < m; i++ {
		switch c.Classes[i] {
		case Empty:
			scores[i] *= w.Empty
		case Safe:
			if safeNorm > 0 {
				scores[i] /= safeNorm
			}
			scores[i] *= w.Safe
		case Risky:
			scores[i] *= w.Risky
		}
	}

	return scores
}
