package graph

import (
	"fmt"
	"math"
)

// Graph is a directed weighted graph with adjacency lists indexed by vertex.
type Graph struct {
	adj   [][]Edge
	edges int
}

// New creates a graph with n vertices and no edges.
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVertexCount, n)
	}
	return &Graph{adj: make([][]Edge, n)}, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// Size returns the number of edges.
func (g *Graph) Size() int { return g.edges }

func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, v, len(g.adj))
	}
	return nil
}

// AddEdge appends the directed edge from -> to. An infinite weight is accepted
// and makes the edge impassable.
func (g *Graph) AddEdge(from, to int, weight float64) error {
	if err := g.checkVertex(from); err != nil {
		return err
	}
	if err := g.checkVertex(to); err != nil {
		return err
	}
	if weight < 0 || math.IsNaN(weight) {
		return fmt.Errorf("%w: edge %d→%d weight=%v", ErrNegativeWeight, from, to, weight)
	}
	g.adj[from] = append(g.adj[from], Edge{From: from, To: to, Weight: weight})
	g.edges++
	return nil
}

// Edges returns the outgoing edges of v in insertion order. The slice must not
// be modified. Out-of-range vertices have no edges.
func (g *Graph) Edges(v int) []Edge {
	if v < 0 || v >= len(g.adj) {
		return nil
	}
	return g.adj[v]
}

// Weight returns the weight of the first stored edge from -> to, or +Inf
// when there is none. It scans the adjacency list of from.
func (g *Graph) Weight(from, to int) float64 {
	for _, e := range g.Edges(from) {
		if e.To == to {
			return e.Weight
		}
	}
	return infinity
}
