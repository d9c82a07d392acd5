// Package search provides a generic best-first search engine over any
// problem that can enumerate actions, apply them, test for a goal, price a
// step and estimate the remaining cost.
//
// What
//
//   - Problem[S, A]: Initial, Actions, Result, IsGoal, Cost, Heuristic.
//   - Hashable[S]: Hash + Equal, required of states for duplicate elimination.
//   - Solve: pops the node with the smallest key, goal-tests it, skips it if
//     its state was already expanded, otherwise expands every action.
//   - Modes:
//   - AStar:       key = g + h
//   - Greedy:      key = h
//   - UniformCost: key = g
//   - Result: Steps (action + resulting state) oldest first, Cost, Stats.
//
// Optimality
//
//	AStar is cost-optimal only when the heuristic is admissible (never
//	overestimates). Greedy is never guaranteed optimal. UniformCost is always
//	optimal for non-negative costs. Solve does not check admissibility.
//
// Determinism
//
//	Equal keys are served in insertion order (FIFO), and children are pushed in
//	the order Problem.Actions returns them. Given a deterministic Problem, every
//	call produces the same path and the same Stats.
//
// Outcomes
//
//   - Found:            res.Found == true, err == nil.
//   - Exhausted:        ErrNoSolution (expected outcome, not a failure).
//   - Abandoned:        error wrapping ErrTimeout (MaxExpansions or context).
//   - Invalid input:    ErrNilProblem, ErrOptionViolation, ErrNegativeCost.
//
// Concurrency
//
//	A call owns its frontier and visited set; independent calls may run in
//	parallel. Hooks run on the calling goroutine and must not block.
//
// Usage
//
//	res, err := search.Solve[State, Move](problem,
//	    search.WithMode(search.Greedy),
//	    search.WithMaxExpansions(1_000_000),
//	    search.WithContext(ctx),
//	    search.WithLogger(logger),
//	)
//	switch {
//	case errors.Is(err, search.ErrNoSolution):
//	case errors.Is(err, search.ErrTimeout):
//	case err != nil:
//	default:
//	    moves := res.Actions()
//	}
package search
