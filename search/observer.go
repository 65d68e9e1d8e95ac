package search

import "time"

// Improvement describes a strict improvement of the incumbent.
type Improvement struct {
	Moves      int           // New best relocation count
	Elapsed    time.Duration // Time since Solve started
	Worker     int           // Worker that found it
	Trajectory int64         // 1-based index of the trajectory being built
}

// TrajectoryReport describes a finished trajectory.
type TrajectoryReport struct {
	Worker      int
	Index       int64
	Outcome     Outcome
	Relocations int // Committed relocations when the trajectory ended
	Duration    time.Duration
}

// Observer receives search progress. Implementations must be safe for
// concurrent use when the engine runs more than one worker.
type Observer interface {
	OnImprove(Improvement)
	OnTrajectory(TrajectoryReport)
}

// Observers fans events out to several observers, in order.
type Observers []Observer

// OnImprove forwards the improvement to every observer.
func (obs Observers) OnImprove(imp Improvement) {
	for _, o := range obs {
		if o != nil {
			o.OnImprove(imp)
		}
	}
}

// OnTrajectory forwards the report to every observer.
func (obs Observers) OnTrajectory(rep TrajectoryReport) {
	for _, o := range obs {
		if o != nil {
			o.OnTrajectory(rep)
		}
	}
}

// NopObserver ignores every event.
type NopObserver struct{}

// OnImprove does nothing.
func (NopObserver) OnImprove(Improvement) {}

// OnTrajectory does nothing.
func (NopObserver) OnTrajectory(TrajectoryReport) {}
