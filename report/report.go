// Package report formats search results: the fixed-width result line, the
// best-path dump, the relocation list and a JSON summary.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/bayreloc/bay"
	"github.com/katalvlaran/bayreloc/instance"
	"github.com/katalvlaran/bayreloc/search"
)

// ErrNotAdjacent indicates two consecutive snapshots that are not one
// relocation or one retrieval apart.
var ErrNotAdjacent = errors.New("report: snapshots are not one operation apart")

// ResultLine renders one row of the results log: instance name, stacks,
// height parameter, blocks, relocations, corridor width and seconds to best.
func ResultLine(name string, stacks, height, items, moves, width int, toBest time.Duration) string {
	return fmt.Sprintf("%12s%4d%4d%4d%12d%8d%6.3g", name, stacks, height, items, moves, width, toBest.Seconds())
}

// WritePath dumps every snapshot of path, separated by blank lines.
func WritePath(w io.Writer, path []bay.Bay) error {
	for i, b := range path {
		if _, err := fmt.Fprintf(w, "step %d\n%s\n", i, b); err != nil {
			return err
		}
	}
	return nil
}

// Moves replays path and returns its relocations in order; retrievals are
// skipped.
func Moves(path []bay.Bay) ([]bay.Move, error) {
	var out []bay.Move
	for step := 1; step < len(path); step++ {
		prev, cur := path[step-1], path[step]
		if len(prev) != len(cur) {
			return nil, fmt.Errorf("step %d: stack count changed: %w", step, ErrNotAdjacent)
		}

		from, to := -1, -1
		for i := range cur {
			switch cur.Height(i) - prev.Height(i) {
			case 0:
				continue
			case -1:
				if from >= 0 {
					return nil, fmt.Errorf("step %d: two stacks shrank: %w", step, ErrNotAdjacent)
				}
				from = i
			case 1:
				if to >= 0 {
					return nil, fmt.Errorf("step %d: two stacks grew: %w", step, ErrNotAdjacent)
				}
				to = i
			default:
				return nil, fmt.Errorf("step %d: stack %d changed by %d: %w",
					step, i, cur.Height(i)-prev.Height(i), ErrNotAdjacent)
			}
		}
		if from < 0 {
			return nil, fmt.Errorf("step %d: nothing moved: %w", step, ErrNotAdjacent)
		}

		want := prev.Clone()
		if to < 0 {
			top, _ := prev.Top(from)
			if err := want.Retrieve(top); err != nil {
				return nil, fmt.Errorf("step %d: %v: %w", step, err, ErrNotAdjacent)
			}
		} else if err := want.Relocate(from, to, nil); err != nil {
			return nil, fmt.Errorf("step %d: %v: %w", step, err, ErrNotAdjacent)
		}
		if !bay.Equal(want, cur) {
			return nil, fmt.Errorf("step %d: contents differ: %w", step, ErrNotAdjacent)
		}
		if to >= 0 {
			out = append(out, bay.Move{From: from, To: to})
		}
	}
	return out, nil
}

// Summary is the JSON document describing one solved instance.
type Summary struct {
	Name         string    `json:"name"`
	Stacks       int       `json:"stacks"`
	Items        int       `json:"items"`
	CapMode      string    `json:"cap_mode"`
	Height       int       `json:"height"`
	Width        int       `json:"width"`
	Seed         int64     `json:"seed"`
	Found        bool      `json:"found"`
	Moves        int       `json:"moves"`
	LowerBound   int       `json:"lower_bound"`
	Optimal      bool      `json:"optimal"`
	TimeToBest   float64   `json:"time_to_best_s"`
	Elapsed      float64   `json:"elapsed_s"`
	Trajectories int64     `json:"trajectories"`
	Completed    int64     `json:"completed"`
	Fathomed     int64     `json:"fathomed"`
	DeadEnds     int64     `json:"dead_ends"`
	Relocations  []string  `json:"relocations,omitempty"`
	Path         []bay.Bay `json:"path,omitempty"`
}

// NewSummary builds the summary of res, obtained on in with opts. The
// relocation list is always filled when a plan exists; the full path only
// when withPath is set.
func NewSummary(in instance.Instance, opts search.Options, res search.Result, withPath bool) (Summary, error) {
	s := Summary{
		Name:         in.Name,
		Stacks:       in.Stacks(),
		Items:        in.Items,
		CapMode:      opts.CapMode.String(),
		Height:       opts.Height,
		Width:        opts.Width,
		Seed:         res.Seed,
		Found:        res.Found,
		LowerBound:   res.LowerBound,
		Optimal:      res.Optimal(),
		TimeToBest:   res.TimeToBest.Seconds(),
		Elapsed:      res.Elapsed.Seconds(),
		Trajectories: res.Trajectories,
		Completed:    res.Completed,
		Fathomed:     res.Fathomed,
		DeadEnds:     res.DeadEnds,
	}
	if !res.Found {
		s.Moves = -1
		return s, nil
	}

	s.Moves = res.Moves
	moves, err := Moves(res.BestPath)
	if err != nil {
		return Summary{}, err
	}
	s.Relocations = make([]string, len(moves))
	for i, m := range moves {
		s.Relocations[i] = m.String()
	}
	if withPath {
		s.Path = res.BestPath
	}
	return s, nil
}

// WriteJSON encodes s as indented JSON followed by a newline.
func (s Summary) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
