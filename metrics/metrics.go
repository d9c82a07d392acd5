// Package metrics exports Prometheus collectors for search activity: live
// expansion counters fed by search hooks, plus per-solve outcome, duration
// and solution length.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/pourpath/search"
)

const namespace = "pourpath"

// Recorder owns the collectors. All methods are safe for concurrent use, so a
// single Recorder can serve every worker of a batch.
type Recorder struct {
	expanded  *prometheus.CounterVec
	generated *prometheus.CounterVec
	solves    *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	moves     prometheus.Histogram
}

// NewRecorder registers the collectors on reg. Registering twice on the same
// registry panics, as with promauto.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		expanded: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "expanded_total",
			Help:      "Nodes expanded, by search mode.",
		}, []string{"mode"}),
		generated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "generated_total",
			Help:      "Child nodes pushed onto the frontier, by search mode.",
		}, []string{"mode"}),
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Completed solve calls, by search mode and outcome.",
		}, []string{"mode", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of solve calls, by search mode.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"mode"}),
		moves: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solution_moves",
			Help:      "Number of moves in found solutions.",
			Buckets:   prometheus.LinearBuckets(0, 10, 12),
		}),
	}
}

// SearchOptions returns hooks that count expansions and generated children
// under the given mode label. Pass them to search.Solve (or through
// watersort.WithSearchOptions).
func (r *Recorder) SearchOptions(mode search.Mode) []search.Option {
	expanded := r.expanded.WithLabelValues(mode.String())
	generated := r.generated.WithLabelValues(mode.String())

	return []search.Option{
		search.WithOnExpand(func(search.NodeInfo) error {
			expanded.Inc()
			return nil
		}),
		search.WithOnEnqueue(func(search.NodeInfo) {
			generated.Inc()
		}),
	}
}

// ObserveSolve records one finished solve call. moves is only observed when
// err is nil.
func (r *Recorder) ObserveSolve(mode search.Mode, err error, elapsed time.Duration, moves int) {
	outcome := search.OutcomeOf(err)
	r.solves.WithLabelValues(mode.String(), string(outcome)).Inc()
	r.duration.WithLabelValues(mode.String()).Observe(elapsed.Seconds())
	if outcome == search.OutcomeSolved {
		r.moves.Observe(float64(moves))
	}
}
