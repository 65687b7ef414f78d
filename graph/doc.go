// Package graph provides a directed weighted graph over dense integer vertex
// identifiers and a priority-queue form of Dijkstra's shortest-path algorithm.
//
// Vertices are the integers [0, n) fixed when the graph is created. Edges are
// appended to the adjacency list of their source vertex; parallel edges are
// allowed and Weight reports the first one stored.
//
// Relaxation policies:
//
//   - FinalizeOnPop (default): textbook lazy decrease-key Dijkstra. A vertex may
//     be pushed several times; its distance is final once it is popped and
//     stale heap entries are skipped.
//   - FirstEnqueueWins: a vertex is claimed the first time it is pushed and is
//     never relaxed again. This reproduces the behavior of older tooling built
//     on this network format and is not optimal on every topology.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holds at most E entries under lazy decrease-key.
//
// Errors (sentinel):
//
//   - ErrInvalidVertexCount if New is given a negative vertex count.
//   - ErrVertexOutOfRange   if a vertex id falls outside [0, n).
//   - ErrNegativeWeight     if an edge weight is negative or NaN.
//
// Example usage:
//
//	g, _ := graph.New(3)
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 1)
//	_ = g.AddEdge(0, 2, 5)
//
//	p, err := g.ShortestPath(0, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if p == nil {
//	    fmt.Println("no path")
//	}
//	fmt.Println(p.Total) // 2
//
// A Graph must not be mutated while a query runs. Once built it may be queried
// from several goroutines.
package graph
