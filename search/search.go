// Package search implements best-first search (A*, greedy, uniform-cost) with
// duplicate-state elimination over any Problem.
//
// Notes on implementation choices:
//
//   - The goal test runs when a node is popped, not when it is generated.
//   - Duplicates are eliminated lazily: a state may be pushed several times and
//     every copy after the first expansion is discarded when popped. Children
//     whose state is already expanded are not pushed at all.
//   - Equal priorities are served in insertion order, so runs are reproducible.
//   - Limits (context, MaxExpansions) are checked once per loop iteration.
package search

import (
	"container/heap"
	"fmt"
)

// Solve runs a best-first search over p and returns the path to the first goal
// popped from the frontier.
//
// Returns:
//
//   - res: never nil once options and problem are valid. res.Stats is filled
//     in on every outcome; res.Steps only when res.Found.
//   - err: ErrNilProblem, ErrOptionViolation, ErrNegativeCost, ErrNoSolution,
//     an error wrapping ErrTimeout, or a wrapped OnExpand hook error.
//
// Options customization:
//
//   - WithMode(m): AStar (default), Greedy or UniformCost.
//   - WithTreeSearch(): disable the visited set.
//   - WithMaxExpansions(n), WithContext(ctx): abandon with ErrTimeout.
//   - WithLogger(l), WithOnEnqueue, WithOnExpand, WithOnGoal: observability.
//
// Complexity (N = states expanded, b = branching factor):
//
//   - Time:  O(N·b·log(N·b)) heap operations plus problem callbacks.
//   - Space: O(N·b) for the frontier and O(N) for the visited set.
func Solve[S Hashable[S], A any](p Problem[S, A], opts ...Option) (*Result[S, A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}

	// 1) Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Prepare the runner; it owns every piece of mutable state for this call.
	r := &runner[S, A]{
		problem: p,
		opts:    o,
		res: &Result[S, A]{
			Mode:    o.Mode,
			Initial: p.Initial(),
		},
	}
	if o.GraphSearch {
		r.visited = newVisitedSet[S]()
	}

	// 3) Seed the frontier with the root and run the main loop.
	r.init()
	goal, err := r.loop()
	if err != nil {
		o.Logger.Debug("search: stopped",
			"mode", o.Mode.String(),
			"error", err,
			"expanded", r.res.Stats.Expanded,
			"generated", r.res.Stats.Generated)

		return r.res, err
	}

	// 4) Reconstruct the path.
	r.res.Found = true
	r.res.Steps = goal.path()
	r.res.Cost = goal.g
	o.Logger.Debug("search: goal reached",
		"mode", o.Mode.String(),
		"depth", goal.depth,
		"cost", goal.g,
		"expanded", r.res.Stats.Expanded,
		"generated", r.res.Stats.Generated)

	return r.res, nil
}

// runner holds the mutable state for a single Solve execution.
type runner[S Hashable[S], A any] struct {
	problem  Problem[S, A]
	opts     Options
	frontier frontier[S, A]
	visited  *visitedSet[S] // nil in tree-search mode
	seq      uint64
	res      *Result[S, A]
}

// init pushes the root node (g = 0) onto an empty heap.
func (r *runner[S, A]) init() {
	r.frontier = make(frontier[S, A], 0, 64)
	heap.Init(&r.frontier)

	root := &node[S, A]{state: r.res.Initial}
	r.push(root, r.problem.Heuristic(root.state))

	r.opts.Logger.Debug("search: start",
		"mode", r.opts.Mode.String(),
		"graph_search", r.opts.GraphSearch,
		"max_expansions", r.opts.MaxExpansions)
}

// loop pops nodes until a goal is found, the frontier is exhausted, or a
// limit is hit.
func (r *runner[S, A]) loop() (*node[S, A], error) {
	ctx := r.opts.Ctx
	for r.frontier.Len() > 0 {
		// cancellation check (once per loop)
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
		default:
		}

		e := heap.Pop(&r.frontier).(*entry[S, A])
		n := e.node

		// 1) Goal test on pop.
		if r.problem.IsGoal(n.state) {
			r.opts.OnGoal(r.info(n, e.priority))

			return n, nil
		}

		// 2) Drop states that were already expanded through another path.
		if r.visited != nil && !r.visited.add(n.state) {
			r.res.Stats.Discarded++
			continue
		}

		// 3) Respect the expansion budget before doing any more work.
		if r.opts.MaxExpansions > 0 && r.res.Stats.Expanded >= r.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: expansion limit %d reached", ErrTimeout, r.opts.MaxExpansions)
		}

		if err := r.expand(n, e.priority); err != nil {
			return nil, err
		}
	}

	return nil, ErrNoSolution
}

// expand generates every successor of n and pushes it with a mode-specific key.
func (r *runner[S, A]) expand(n *node[S, A], priority float64) error {
	r.res.Stats.Expanded++
	if err := r.opts.OnExpand(r.info(n, priority)); err != nil {
		return fmt.Errorf("search: OnExpand error at depth %d: %w", n.depth, err)
	}

	for _, a := range r.problem.Actions(n.state) {
		next := r.problem.Result(n.state, a)

		// A child already expanded would be discarded on pop anyway.
		if r.visited != nil && r.visited.contains(next) {
			r.res.Stats.Discarded++
			continue
		}

		c := r.problem.Cost(n.state, a, next)
		if c < 0 {
			return fmt.Errorf("%w: %v at depth %d costs %g", ErrNegativeCost, a, n.depth, c)
		}

		child := &node[S, A]{
			state:  next,
			action: a,
			parent: n,
			g:      n.g + c,
			depth:  n.depth + 1,
		}
		h := r.problem.Heuristic(next)
		key := r.push(child, h)
		r.res.Stats.Generated++
		r.opts.OnEnqueue(NodeInfo{Depth: child.depth, Cost: child.g, Heuristic: h, Priority: key})
	}

	return nil
}

// push enqueues n with the key derived from its cost and heuristic h and
// returns that key.
func (r *runner[S, A]) push(n *node[S, A], h float64) float64 {
	key := r.opts.Mode.priority(n.g, h)
	heap.Push(&r.frontier, &entry[S, A]{priority: key, seq: r.seq, node: n})
	r.seq++
	if l := r.frontier.Len(); l > r.res.Stats.MaxFrontier {
		r.res.Stats.MaxFrontier = l
	}

	return key
}

// info builds the hook payload for n.
func (r *runner[S, A]) info(n *node[S, A], priority float64) NodeInfo {
	return NodeInfo{
		Depth:     n.depth,
		Cost:      n.g,
		Heuristic: r.problem.Heuristic(n.state),
		Priority:  priority,
	}
}
