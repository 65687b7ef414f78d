package graph

import (
	"container/heap"
	"math"
)

// ShortestPath computes the lowest-cost path from source to target.
//
// It returns a nil Path and a nil error when target cannot be reached. When
// source equals target the Path has no steps and a zero total. Each Step's
// Cost is Weight(From, To); Total is the distance computed for target.
//
// Preconditions:
//  1. source and target must be in [0, Order()) (ErrVertexOutOfRange).
func (g *Graph) ShortestPath(source, target int, opts ...Option) (*Path, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := g.checkVertex(source); err != nil {
		return nil, err
	}
	if err := g.checkVertex(target); err != nil {
		return nil, err
	}

	r := newRunner(g, cfg, source, target)
	switch cfg.Policy {
	case FirstEnqueueWins:
		r.runFirstEnqueue()
	default:
		r.runFinalizeOnPop()
	}
	return r.path(), nil
}

// runner holds the mutable state for a single query.
type runner struct {
	g       *Graph
	options Options
	source  int
	target  int
	dist    []float64
	prev    []int
	reached []bool // dist holds a real distance
	claimed []bool // finalized, or enqueued under FirstEnqueueWins
	pq      *itemPQ
}

func newRunner(g *Graph, cfg Options, source, target int) *runner {
	n := g.Order()
	r := &runner{
		g:       g,
		options: cfg,
		source:  source,
		target:  target,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		reached: make([]bool, n),
		claimed: make([]bool, n),
		pq:      newItemPQ(byDistanceThenVertex),
	}
	for v := range r.dist {
		r.dist[v] = infinity
		r.prev[v] = -1
	}
	r.dist[source] = 0
	r.prev[source] = source
	r.reached[source] = true
	heap.Push(r.pq, item{v: source, dist: 0})
	return r
}

// runFinalizeOnPop is lazy decrease-key Dijkstra: duplicates are pushed and
// ignored when popped after the vertex has been finalized.
func (r *runner) runFinalizeOnPop() {
	for r.pq.Len() > 0 {
		it := heap.Pop(r.pq).(item)
		u := it.v
		if r.claimed[u] || it.dist > r.dist[u] {
			continue
		}
		if it.dist > r.options.MaxDistance {
			break
		}
		r.claimed[u] = true
		if u == r.target {
			return
		}
		for _, e := range r.g.adj[u] {
			v := e.To
			if r.claimed[v] || math.IsInf(e.Weight, 1) {
				continue
			}
			nd := r.dist[u] + e.Weight
			if nd > r.options.MaxDistance || nd >= r.dist[v] {
				continue
			}
			r.dist[v] = nd
			r.prev[v] = u
			r.reached[v] = true
			heap.Push(r.pq, item{v: v, dist: nd})
		}
	}
}

// runFirstEnqueue claims a vertex the first time it is pushed. A cheaper route
// found after that is ignored.
func (r *runner) runFirstEnqueue() {
	r.claimed[r.source] = true
	for r.pq.Len() > 0 {
		it := heap.Pop(r.pq).(item)
		u := it.v
		if it.dist > r.options.MaxDistance {
			break
		}
		for _, e := range r.g.adj[u] {
			v := e.To
			if r.claimed[v] || math.IsInf(e.Weight, 1) {
				continue
			}
			nd := r.dist[u] + e.Weight
			if nd > r.options.MaxDistance {
				continue
			}
			if nd < r.dist[v] {
				r.dist[v] = nd
				r.prev[v] = u
				r.reached[v] = true
			}
			r.claimed[v] = true
			heap.Push(r.pq, item{v: v, dist: r.dist[v]})
		}
	}
}

// path walks predecessors back from target. Returns nil when target was never
// reached.
func (r *runner) path() *Path {
	if !r.reached[r.target] {
		return nil
	}
	var rev []int
	for v := r.target; v != r.source; v = r.prev[v] {
		rev = append(rev, v)
	}
	rev = append(rev, r.source)

	p := &Path{Total: r.dist[r.target], Steps: make([]Step, 0, len(rev)-1)}
	for i := len(rev) - 1; i > 0; i-- {
		from, to := rev[i], rev[i-1]
		p.Steps = append(p.Steps, Step{From: from, To: to, Cost: r.g.Weight(from, to)})
	}
	return p
}

// item is a (vertex, tentative distance) pair in the priority queue.
type item struct {
	v    int
	dist float64
}

// byDistanceThenVertex orders items by distance, lower vertex id first on ties.
func byDistanceThenVertex(a, b item) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.v < b.v
}

// itemPQ is a binary min-heap of items under a caller supplied ordering.
type itemPQ struct {
	items []item
	less  func(a, b item) bool
}

func newItemPQ(less func(a, b item) bool) *itemPQ {
	return &itemPQ{less: less}
}

func (pq *itemPQ) Len() int           { return len(pq.items) }
func (pq *itemPQ) Less(i, j int) bool { return pq.less(pq.items[i], pq.items[j]) }
func (pq *itemPQ) Swap(i, j int)      { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *itemPQ) Push(x interface{}) { pq.items = append(pq.items, x.(item)) }

func (pq *itemPQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	it := old[n-1]
	pq.items = old[:n-1]
	return it
}
