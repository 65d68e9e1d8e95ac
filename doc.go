// Package bayreloc empties container bays in retrieval order with few
// relocations.
//
// A bay is a row of stacks; blocks are numbered by retrieval priority and
// only the top block of a stack can be touched. Retrieving block k may first
// require relocating the blocks above it. bayreloc searches for short
// relocation plans with a randomized corridor method:
//
//	bay/        - the bay state, height caps and the admissible lower bound
//	lookahead/  - deterministic greedy completion of a partial retrieval
//	corridor/   - stack classification, scoring and roulette selection
//	search/     - neighborhood evaluation, trajectories, incumbent and Solve
//	instance/   - text and JSON instance I/O, random bay generator
//	report/     - result line, path dump, relocation list, JSON summary
//	metrics/    - Prometheus counters for trajectories and improvements
//	config/     - flags, environment and config-file settings
//
// Quick example:
//
//	stack 0 |   1   2        block 2 covers block 1
//	stack 1 |
//
// needs exactly one relocation (2 onto stack 1) before both blocks can be
// retrieved.
//
//	res, err := search.Solve(ctx, bay.Bay{{1, 2}, {}}, 2, search.WithConstantCap(2))
//
// The bayreloc command solves instance files from the shell; bayreloc-lambda
// serves the same search behind an AWS Lambda function URL.
package bayreloc
