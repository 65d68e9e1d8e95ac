package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bayreloc/config"
	"github.com/katalvlaran/bayreloc/instance"
	"github.com/katalvlaran/bayreloc/metrics"
	"github.com/katalvlaran/bayreloc/report"
	"github.com/katalvlaran/bayreloc/search"
)

func newSolveCmd() *cobra.Command {
	var (
		files      []string
		configFile string
		jobs       int
	)

	cmd := &cobra.Command{
		Use:   "solve [instance files...]",
		Short: "Solve one or more bay instances",
		Long: `Solve reads each instance (text format, or JSON for .json files),
runs the corridor search until the time limit and prints one result line per
instance. Several instances are solved concurrently with --jobs.

    $ bayreloc solve -n 5 -d 3 -t 30s data/bay3x4.dat`,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := append(append([]string(nil), files...), args...)
			if len(all) == 0 {
				return errors.New("no instance file given")
			}
			if jobs < 1 {
				return errors.Errorf("--jobs must be at least 1, got %d", jobs)
			}

			cfg, err := config.Load(cmd.Flags(), configFile)
			if err != nil {
				return err
			}
			debug, _ := cmd.Flags().GetBool("debug")
			closer, err := setupLogging(cfg.Log, debug)
			if err != nil {
				return err
			}
			defer closer.Close()

			if cfg.Seed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			log.WithField("seed", cfg.Seed).Debug("search seed")

			r := &runner{cfg: cfg, out: cmd.OutOrStdout(), rec: metrics.NewRecorder(), many: len(all) > 1}
			return r.solveAll(cmd.Context(), all, jobs)
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.Flags().StringSliceVarP(&files, "file", "f", nil, "instance file (repeatable)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	cmd.Flags().IntVar(&jobs, "jobs", 1, "instances solved concurrently")

	return cmd
}

// runner solves a batch of instances with one configuration.
type runner struct {
	cfg  *config.Config
	out  io.Writer
	rec  *metrics.Recorder
	many bool

	mu sync.Mutex // guards out and the result file
}

func (r *runner) solveAll(ctx context.Context, files []string, jobs int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, f := range files {
		f := f
		g.Go(func() error {
			return r.solveFile(gctx, f)
		})
	}
	err := g.Wait()

	if r.cfg.MetricsFile != "" {
		if merr := r.rec.WriteTextfile(r.cfg.MetricsFile); merr != nil {
			log.WithError(merr).Error("writing metrics")
			if err == nil {
				err = merr
			}
		}
	}
	return err
}

func (r *runner) solveFile(ctx context.Context, file string) error {
	in, err := instance.ReadFile(file)
	if err != nil {
		return err
	}

	opts, err := r.cfg.SearchOptions()
	if err != nil {
		return err
	}
	opts = append(opts, search.WithObserver(search.Observers{
		newLogObserver(in.Name),
		r.rec.Observer(in.Name),
	}))

	e, err := search.NewEngine(in.Bay, in.Items, opts...)
	if err != nil {
		return errors.WithMessage(err, in.Name)
	}
	o := e.Options()
	log.WithFields(log.Fields{
		"instance":   in.Name,
		"blocks":     in.Items,
		"stacks":     in.Stacks(),
		"cap_mode":   o.CapMode,
		"height":     o.Height,
		"width":      o.Width,
		"time_limit": o.TimeLimit,
		"seed":       o.Seed,
		"lower":      e.LowerBound(),
	}).Info("solving")

	res, err := e.Solve(ctx)
	if err != nil {
		return errors.WithMessage(err, in.Name)
	}

	entry := log.WithFields(log.Fields{
		"instance":     in.Name,
		"trajectories": res.Trajectories,
		"fathomed":     res.Fathomed,
		"dead_ends":    res.DeadEnds,
		"elapsed":      res.Elapsed,
	})
	if !res.Found {
		entry.Warn("no feasible plan found")
	} else {
		entry.Infof("solution found with %d moves", res.Moves)
	}

	if r.cfg.PathFile != "" && res.Found {
		if err := r.writePath(in.Name, res); err != nil {
			return err
		}
	}
	return r.emit(in, o, res)
}

// emit prints the result and appends it to the result file.
func (r *runner) emit(in instance.Instance, o search.Options, res search.Result) error {
	moves := res.Moves
	if !res.Found {
		moves = -1
	}
	line := report.ResultLine(in.Name, in.Stacks(), o.Height, in.Items, moves, o.Width, res.TimeToBest)

	var summary report.Summary
	if r.cfg.JSON {
		var err error
		if summary, err = report.NewSummary(in, o, res, false); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cfg.JSON {
		if err := summary.WriteJSON(r.out); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintln(r.out, line); err != nil {
		return err
	}

	if r.cfg.ResultFile == "" {
		return nil
	}
	f, err := os.OpenFile(r.cfg.ResultFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(err, "open result file")
	}
	if _, err = fmt.Fprintln(f, line); err != nil {
		f.Close()
		return errors.Wrap(err, "append result")
	}
	return errors.Wrap(f.Close(), "close result file")
}

// writePath dumps the best path. With several instances each gets its own
// file, suffixed with the instance name.
func (r *runner) writePath(name string, res search.Result) error {
	path := r.cfg.PathFile
	if r.many {
		path = path + "." + filepath.Base(name)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create path file")
	}
	if err = report.WritePath(f, res.BestPath); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrap(f.Close(), "close path file")
}
