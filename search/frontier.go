package search

// node is one vertex of the search tree. Each node has exactly one parent,
// so the nodes of a search form a tree, never a graph.
type node[S any, A any] struct {
	state  S
	action A           // action that produced state; zero for the root
	parent *node[S, A] // nil for the root
	g      float64     // accumulated cost from the root
	depth  int         // number of actions from the root
}

// path walks parent links from n to the root and returns the steps in
// root→n order. The root contributes no step.
func (n *node[S, A]) path() []Step[S, A] {
	// build reversed path
	steps := make([]Step[S, A], 0, n.depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		steps = append(steps, Step[S, A]{Action: cur.action, State: cur.state})
	}
	// reverse to get root → n
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return steps
}

// entry pairs a node with its frontier key and an insertion sequence number.
type entry[S any, A any] struct {
	priority float64
	seq      uint64
	node     *node[S, A]
}

// frontier is a min-heap of *entry ordered by priority, ties broken by seq
// ascending (FIFO among equal keys). Duplicate states may sit in the heap at
// once; the stale copies are dropped when popped (lazy deletion).
type frontier[S any, A any] []*entry[S, A]

// Len returns the number of entries in the heap.
func (f frontier[S, A]) Len() int { return len(f) }

// Less orders by priority, then by insertion order.
func (f frontier[S, A]) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two entries in the heap.
func (f frontier[S, A]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new entry; called by heap.Push.
func (f *frontier[S, A]) Push(x any) { *f = append(*f, x.(*entry[S, A])) }

// Pop removes and returns the last entry; called by heap.Pop.
func (f *frontier[S, A]) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return item
}
