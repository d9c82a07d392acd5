package search

// Hashable is the constraint a state type must satisfy for duplicate
// elimination: a fingerprint for bucketing plus exact equality to resolve
// collisions.
type Hashable[S any] interface {
	Hash() uint64
	Equal(other S) bool
}

// Problem is the abstract search problem consumed by Solve. Implementations
// must be deterministic: the same state always yields the same actions in the
// same order, and Result never mutates its input state.
type Problem[S any, A any] interface {
	// Initial returns the start state.
	Initial() S

	// Actions enumerates every action applicable in s.
	Actions(s S) []A

	// Result returns the state reached by applying a to s.
	Result(s S, a A) S

	// IsGoal reports whether s is a goal state.
	IsGoal(s S) bool

	// Cost returns the non-negative cost of moving from s to next via a.
	Cost(s S, a A, next S) float64

	// Heuristic estimates the remaining cost from s to a goal.
	Heuristic(s S) float64
}
