// Package metrics exports search progress as Prometheus metrics.
//
// A Recorder owns a private registry, so several recorders (one per test or
// per process) never collide. Observer binds the recorder to one instance
// name and plugs into search.WithObserver. Batch runs write the registry to a
// node-exporter textfile with WriteTextfile.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/katalvlaran/bayreloc/search"
)

const namespace = "bayreloc"

// Recorder holds the search metrics and their registry.
type Recorder struct {
	registry *prometheus.Registry

	Trajectories *prometheus.CounterVec   // by instance and outcome
	Improvements *prometheus.CounterVec   // incumbent updates by instance
	BestMoves    *prometheus.GaugeVec     // current incumbent by instance
	Relocations  *prometheus.HistogramVec // committed relocations per trajectory
}

// NewRecorder creates a Recorder with every metric registered.
func NewRecorder() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}

	r.Trajectories = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trajectories_total",
		Help:      "Trajectories run, by terminal outcome.",
	}, []string{"instance", "outcome"})

	r.Improvements = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "incumbent_updates_total",
		Help:      "Strict improvements of the best plan.",
	}, []string{"instance"})

	r.BestMoves = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "incumbent_moves",
		Help:      "Relocations of the best plan found so far.",
	}, []string{"instance"})

	r.Relocations = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "trajectory_relocations",
		Help:      "Relocations committed by a trajectory before it ended.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"instance"})

	r.registry.MustRegister(r.Trajectories, r.Improvements, r.BestMoves, r.Relocations)
	return r
}

// Registry exposes the private registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Gather collects the current metric families.
func (r *Recorder) Gather() ([]*dto.MetricFamily, error) { return r.registry.Gather() }

// WriteTextfile writes the registry in the text exposition format to path,
// atomically, for the node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

// Observer returns a search.Observer that records events under instance.
// It is safe for concurrent use.
func (r *Recorder) Observer(instance string) search.Observer {
	return observer{r: r, instance: instance}
}

type observer struct {
	r        *Recorder
	instance string
}

func (o observer) OnImprove(imp search.Improvement) {
	o.r.Improvements.WithLabelValues(o.instance).Inc()
	o.r.BestMoves.WithLabelValues(o.instance).Set(float64(imp.Moves))
}

func (o observer) OnTrajectory(rep search.TrajectoryReport) {
	o.r.Trajectories.WithLabelValues(o.instance, rep.Outcome.String()).Inc()
	o.r.Relocations.WithLabelValues(o.instance).Observe(float64(rep.Relocations))
}
