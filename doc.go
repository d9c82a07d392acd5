// Package pourpath solves water-sort puzzles: bottles of stacked colored
// liquid that must be poured until every color sits alone in its own bottle.
//
// 🚀 What is inside?
//
//	A small stack of packages that build on one another:
//		• bottle     immutable, hashable bottle configurations and the pour rule
//		• search     generic best-first search (A*, greedy, uniform cost)
//		• watersort  the puzzle as a search problem, Play and Replay
//		• metrics    Prometheus collectors fed by search hooks
//		• puzzlefile YAML puzzle files with validation
//
// and a command, cmd/pourpath, that solves whole files in parallel.
//
// ✨ Highlights
//
//   - Deterministic: identical input yields identical moves in every mode
//   - Hooks (OnEnqueue, OnExpand, OnGoal) and context cancellation
//   - Expansion limits reported as search.ErrTimeout, never as "no solution"
//
// Quick example:
//
//	[red blue] [red] []
//	    (1, 3) → [red] [red] [blue]
//	    (1, 2) → [] [red red] [blue]
//
//	moves, err := watersort.Play(ctx, [][]string{
//		{"red", "blue"}, {"red"}, {},
//	}, false)
//	// moves: [(1, 3) (1, 2)]
//
// See the package docs of bottle, search and watersort for the full contracts.
package pourpath
