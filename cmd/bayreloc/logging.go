package main

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/bayreloc/config"
	"github.com/katalvlaran/bayreloc/search"
)

// setupLogging applies the configured level and, when a log file is set,
// tees the log into a size-rotated file. The returned closer releases it.
func setupLogging(cfg config.LogConfig, debug bool) (io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if debug && level < log.DebugLevel {
		level = log.DebugLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if cfg.File == "" {
		log.SetOutput(os.Stderr)
		return io.NopCloser(nil), nil
	}
	rotated := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
	log.SetOutput(io.MultiWriter(os.Stderr, rotated))
	return rotated, nil
}

// logObserver reports search progress through logrus.
type logObserver struct {
	entry *log.Entry
}

func newLogObserver(instance string) logObserver {
	return logObserver{entry: log.WithField("instance", instance)}
}

func (o logObserver) OnImprove(imp search.Improvement) {
	o.entry.WithFields(log.Fields{
		"worker":     imp.Worker,
		"trajectory": imp.Trajectory,
	}).Infof("after %8.3g seconds z = %d", imp.Elapsed.Seconds(), imp.Moves)
}

func (o logObserver) OnTrajectory(rep search.TrajectoryReport) {
	o.entry.WithFields(log.Fields{
		"worker":      rep.Worker,
		"trajectory":  rep.Index,
		"outcome":     rep.Outcome,
		"relocations": rep.Relocations,
		"duration":    rep.Duration,
	}).Trace("trajectory finished")
}
