// Package watersort implements the water-sort puzzle as a search.Problem and
// exposes the (configuration, difficulty) → moves contract on top of it.
package watersort

import (
	"fmt"

	"github.com/katalvlaran/pourpath/bottle"
	"github.com/katalvlaran/pourpath/search"
)

// Move pours from bottle From into bottle To. Indices are 1-based.
type Move struct {
	From, To int
}

// String renders the move as "(from, to)".
func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.From, m.To)
}

// Problem is the water-sort puzzle rooted at one initial configuration.
// It implements search.Problem[bottle.Config, Move].
type Problem struct {
	initial bottle.Config
}

var _ search.Problem[bottle.Config, Move] = (*Problem)(nil)

// NewProblem returns the puzzle that starts at cfg.
func NewProblem(cfg bottle.Config) *Problem {
	return &Problem{initial: cfg}
}

// Initial returns the starting configuration.
func (p *Problem) Initial() bottle.Config { return p.initial }

// Actions enumerates every legal move in source-major, destination-minor
// order. Solved bottles are never sources.
func (p *Problem) Actions(s bottle.Config) []Move {
	var moves []Move
	for i := 0; i < s.Len(); i++ {
		if s.IsSolved(i) {
			continue
		}
		for j := 0; j < s.Len(); j++ {
			if s.CanPour(i, j) {
				moves = append(moves, Move{From: i + 1, To: j + 1})
			}
		}
	}

	return moves
}

// Result pours m.From into m.To. The input configuration is left untouched.
func (p *Problem) Result(s bottle.Config, m Move) bottle.Config {
	next, _ := s.Pour(m.From-1, m.To-1)

	return next
}

// IsGoal reports whether s is solved; see IsGoal.
func (p *Problem) IsGoal(s bottle.Config) bool { return IsGoal(s) }

// Cost is 1 for every move.
func (p *Problem) Cost(bottle.Config, Move, bottle.Config) float64 { return 1 }

// Heuristic returns the number of incomplete bottles; see Heuristic.
func (p *Problem) Heuristic(s bottle.Config) float64 { return float64(Heuristic(s)) }

// IsGoal reports whether every non-empty bottle holds a single color and no
// color occupies two bottles. Empty bottles are ignored wherever they sit.
func IsGoal(s bottle.Config) bool {
	seen := make(map[bottle.Color]bool, s.Len())
	for i := 0; i < s.Len(); i++ {
		if s.IsEmpty(i) {
			continue
		}
		if !s.IsUniform(i) {
			return false
		}
		top, _ := s.Top(i)
		if seen[top] {
			return false
		}
		seen[top] = true
	}

	return true
}

// Heuristic counts non-empty bottles that are not full and single-colored.
//
// It is not admissible: one pour can complete two bottles at once, so A*
// with this estimate may return a longer-than-minimal move list.
func Heuristic(s bottle.Config) int {
	n := 0
	for i := 0; i < s.Len(); i++ {
		if !s.IsEmpty(i) && !s.IsSolved(i) {
			n++
		}
	}

	return n
}
