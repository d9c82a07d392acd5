// Package watersort plugs the water-sort puzzle into package search.
//
// Rules
//
//   - A move (i, j) pours bottle i into bottle j (1-based).
//   - It is legal when i is non-empty and not already solved, j has room, and
//     j is empty or shows the same top color.
//   - The whole contiguous run of i's top color moves, as far as j's free
//     space allows.
//   - Every move costs 1.
//   - The goal is reached when each non-empty bottle is single-colored and no
//     color appears in two bottles.
//
// Difficulty
//
//	Play(ctx, bottles, hard) runs A* for ordinary puzzles and greedy
//	best-first for hard ones. The heuristic (number of incomplete bottles) is
//	not admissible, so neither mode promises the shortest move list; A* just
//	tends to get closer. Use Solve with search.UniformCost when the minimum
//	is required and the puzzle is small.
//
// Outcomes
//
//   - moves, nil           solved (empty when the input is already solved)
//   - []Move{}, nil        proven unsolvable
//   - nil, ErrInvalidConfiguration (from package bottle)
//   - nil, search.ErrTimeout       limit or context hit first
//
// Tracing
//
//	Every Solve opens a "watersort.Solve" span on the global OpenTelemetry
//	tracer provider (or WithTracerProvider) carrying mode, bottles, outcome,
//	expanded, generated and moves attributes.
package watersort
