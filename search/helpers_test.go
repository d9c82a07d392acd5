package search_test

import "math"

// point is a position on an unbounded integer line.
type point int

func (p point) Hash() uint64 { return uint64(p) }
func (p point) Equal(other point) bool { return p == other }

// lineProblem walks from start to goal using the given step sizes, each at
// unit cost. With only positive steps and goal < start the space is infinite
// and the goal unreachable.
type lineProblem struct {
	start, goal point
	steps       []int
}

func (l lineProblem) Initial() point { return l.start }

func (l lineProblem) Actions(point) []int { return l.steps }

func (l lineProblem) Result(p point, step int) point { return p + point(step) }

func (l lineProblem) IsGoal(p point) bool { return p == l.goal }

func (l lineProblem) Cost(point, int, point) float64 { return 1 }

// Heuristic is admissible when the largest step is 2.
func (l lineProblem) Heuristic(p point) float64 {
	return math.Abs(float64(l.goal-p)) / 2
}

// vertex is a named state whose Hash is constant, so every state lands in
// one visited bucket and only Equal tells them apart.
type vertex string

func (v vertex) Hash() uint64 { return 42 }
func (v vertex) Equal(other vertex) bool { return v == other }

// arc is a weighted directed edge; it doubles as the action type.
type arc struct {
	to   vertex
	cost float64
}

// graphProblem searches an explicit weighted digraph.
type graphProblem struct {
	start vertex
	goals map[vertex]bool
	arcs  map[vertex][]arc
	h     map[vertex]float64
}

func (g graphProblem) Initial() vertex { return g.start }

func (g graphProblem) Actions(v vertex) []arc { return g.arcs[v] }

func (g graphProblem) Result(_ vertex, a arc) vertex { return a.to }

func (g graphProblem) IsGoal(v vertex) bool { return g.goals[v] }

func (g graphProblem) Cost(_ vertex, a arc, _ vertex) float64 { return a.cost }

func (g graphProblem) Heuristic(v vertex) float64 { return g.h[v] }

// detourGraph builds a graph where the greedy choice is expensive:
//
//	S ─1─► A ─10─► G
//	│
//	2
//	▼
//	B ─2─► C ─2─► G
//
// The heuristic is admissible: h(S)=0, h(A)=1, h(B)=4, h(C)=2, h(G)=0.
// Greedy follows A (cost 11); A* and uniform-cost find S→B→C→G (cost 6).
func detourGraph() graphProblem {
	return graphProblem{
		start: "S",
		goals: map[vertex]bool{"G": true},
		arcs: map[vertex][]arc{
			"S": {{to: "A", cost: 1}, {to: "B", cost: 2}},
			"A": {{to: "G", cost: 10}},
			"B": {{to: "C", cost: 2}},
			"C": {{to: "G", cost: 2}},
		},
		h: map[vertex]float64{"S": 0, "A": 1, "B": 4, "C": 2, "G": 0},
	}
}

// vertices extracts the visited vertex names from a list of arcs.
func vertices(arcs []arc) []vertex {
	out := make([]vertex, len(arcs))
	for i, a := range arcs {
		out[i] = a.to
	}

	return out
}
