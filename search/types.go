// Package search defines modes, tunable options, hooks, results and sentinel
// errors for best-first search over an abstract Problem.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors returned by Solve.
var (
	// ErrNoSolution indicates the frontier was exhausted without reaching a goal.
	// It is an expected outcome, not a defect.
	ErrNoSolution = errors.New("search: no solution")

	// ErrTimeout indicates the search was abandoned because an expansion limit
	// was reached or the context was cancelled. It is distinct from ErrNoSolution:
	// the space was not proven exhausted.
	ErrTimeout = errors.New("search: limit exceeded")

	// ErrNilProblem indicates that a nil Problem was passed to Solve.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNegativeCost indicates the problem reported a negative step cost.
	ErrNegativeCost = errors.New("search: negative step cost")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Mode selects how the frontier priority is computed.
type Mode int

const (
	// AStar orders by g + h. Cost-optimal only with an admissible heuristic.
	AStar Mode = iota

	// Greedy orders by h alone, ignoring accumulated cost. Fast, not optimal.
	Greedy

	// UniformCost orders by g alone (Dijkstra over the implicit state graph).
	// Always cost-optimal; ignores the heuristic.
	UniformCost
)

// String returns the lower-case mode name used in logs and metric labels.
func (m Mode) String() string {
	switch m {
	case AStar:
		return "astar"
	case Greedy:
		return "greedy"
	case UniformCost:
		return "uniform_cost"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// priority computes the frontier key for a node with accumulated cost g and
// heuristic estimate h.
func (m Mode) priority(g, h float64) float64 {
	switch m {
	case Greedy:
		return h
	case UniformCost:
		return g
	default:
		return g + h
	}
}

// NodeInfo describes a search node to hooks without exposing its state type.
type NodeInfo struct {
	Depth     int     // number of actions from the initial state
	Cost      float64 // accumulated path cost g
	Heuristic float64 // heuristic estimate h
	Priority  float64 // frontier key under the active Mode
}

// Option configures Solve via functional arguments.
// If an Option is invalid (e.g. negative limit), it is recorded internally
// and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks that customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per loop iteration.
	Ctx context.Context

	// Mode selects AStar, Greedy or UniformCost.
	Mode Mode

	// GraphSearch enables the visited set. Disable only for acyclic spaces
	// or together with a limit.
	GraphSearch bool

	// MaxExpansions, if > 0, abandons the search with ErrTimeout after this
	// many expansions. 0 means no limit.
	MaxExpansions int

	// Logger receives debug records at start, goal and exhaustion.
	Logger *slog.Logger

	// OnEnqueue is called for every child pushed onto the frontier.
	OnEnqueue func(NodeInfo)

	// OnExpand is called before a node's successors are generated.
	// Returning an error aborts the search and propagates that error.
	OnExpand func(NodeInfo) error

	// OnGoal is called once when the goal node is popped.
	OnGoal func(NodeInfo)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - AStar, graph search on
//   - no expansion limit
//   - a logger that discards everything
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Mode:          AStar,
		GraphSearch:   true,
		MaxExpansions: 0,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnEnqueue:     func(NodeInfo) {},
		OnExpand:      func(NodeInfo) error { return nil },
		OnGoal:        func(NodeInfo) {},
	}
}

// WithMode selects the frontier ordering.
func WithMode(m Mode) Option {
	return func(o *Options) {
		switch m {
		case AStar, Greedy, UniformCost:
			o.Mode = m
		default:
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
		}
	}
}

// WithTreeSearch disables duplicate-state elimination.
func WithTreeSearch() Option {
	return func(o *Options) {
		o.GraphSearch = false
	}
}

// WithContext sets a custom context for cancellation and deadlines.
// Cancellation surfaces as an error wrapping both ErrTimeout and ctx.Err().
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the number of expanded nodes.
//
//	n > 0: limit to n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxExpansions = n
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnEnqueue registers a callback run for every enqueued child.
func WithOnEnqueue(fn func(NodeInfo)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnExpand registers a callback run before expansion; returning an error
// from it stops the search.
func WithOnExpand(fn func(NodeInfo) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnGoal registers a callback run when the goal is reached.
func WithOnGoal(fn func(NodeInfo)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGoal = fn
		}
	}
}

// Stats counts the work done by one Solve call.
type Stats struct {
	Expanded    int // nodes whose successors were generated
	Generated   int // children pushed onto the frontier
	Discarded   int // popped or generated nodes dropped as already expanded
	MaxFrontier int // peak frontier size
}

// Step is one move on a solution path: the action taken and the state it produced.
type Step[S any, A any] struct {
	Action A
	State  S
}

// Result holds the outcome of a search:
//   - Found: whether a goal was reached.
//   - Steps: actions and resulting states from the initial state to the goal,
//     oldest first; the initial state contributes no step.
//   - Cost: accumulated path cost of the goal.
//   - Stats: work counters, populated even when Solve returns an error.
type Result[S any, A any] struct {
	Mode    Mode
	Initial S
	Found   bool
	Steps   []Step[S, A]
	Cost    float64
	Stats   Stats
}

// Actions returns the action sequence, oldest first. Empty (not nil) when the
// initial state is already a goal.
func (r *Result[S, A]) Actions() []A {
	out := make([]A, len(r.Steps))
	for i, st := range r.Steps {
		out[i] = st.Action
	}

	return out
}

// Final returns the last state on the path, or Initial when there are no steps.
func (r *Result[S, A]) Final() S {
	if len(r.Steps) == 0 {
		return r.Initial
	}

	return r.Steps[len(r.Steps)-1].State
}

// Outcome classifies the error returned by Solve for logs, metrics and traces.
type Outcome string

const (
	OutcomeSolved     Outcome = "solved"
	OutcomeNoSolution Outcome = "no_solution"
	OutcomeTimeout    Outcome = "timeout"
	OutcomeError      Outcome = "error"
)

// OutcomeOf maps a Solve error to its Outcome. A nil error means solved.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSolved
	case errors.Is(err, ErrNoSolution):
		return OutcomeNoSolution
	case errors.Is(err, ErrTimeout):
		return OutcomeTimeout
	default:
		return OutcomeError
	}
}
