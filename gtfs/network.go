package gtfs

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/stop-router/graph"
)

// CostRules turns feed rows into edge weights
type CostRules struct {
	Hop                  float64 // consecutive stops of one trip
	Transfer             float64 // transfer_type 0
	TimedTransferDivisor float64 // transfer_type 2: min_transfer_time / divisor
}

// DefaultCostRules returns hop 1, transfer 2, divisor 100
func DefaultCostRules() CostRules {
	return CostRules{Hop: 1, Transfer: 2, TimedTransferDivisor: 100}
}

// Exclusions removes parts of the schedule before the network is built,
// typically from realtime data
type Exclusions interface {
	// StopClosed reports a stop that must not appear in any edge
	StopClosed(stopID string) bool
	// StopTimeSkipped reports a scheduled call that will not happen
	StopTimeSkipped(tripID, stopID string) bool
}

// Network is the routing graph built from a feed. Vertex i is StopIDs[i].
type Network struct {
	Graph   *graph.Graph
	StopIDs []string
	vertex  map[string]int
}

// Vertex returns the vertex of stopID
func (n *Network) Vertex(stopID string) (int, bool) {
	v, ok := n.vertex[stopID]
	return v, ok
}

// StopID returns the stop_id of vertex v or ""
func (n *Network) StopID(v int) string {
	if v < 0 || v >= len(n.StopIDs) {
		return ""
	}
	return n.StopIDs[v]
}

// BuildNetwork creates one vertex per stop in stops.txt order and derives
// edges from stop_times.txt and transfers.txt. Rows referencing unknown
// stops are skipped. ex may be nil.
func (f *Feed) BuildNetwork(rules CostRules, ex Exclusions) (*Network, error) {
	if rules.TimedTransferDivisor <= 0 {
		return nil, fmt.Errorf("gtfs: timed transfer divisor must be positive, got %v", rules.TimedTransferDivisor)
	}
	g, err := graph.New(len(f.Stops))
	if err != nil {
		return nil, err
	}
	nw := &Network{
		Graph:   g,
		StopIDs: make([]string, len(f.Stops)),
		vertex:  make(map[string]int, len(f.Stops)),
	}
	for i, s := range f.Stops {
		nw.StopIDs[i] = s.ID
		if _, dup := nw.vertex[s.ID]; !dup {
			nw.vertex[s.ID] = i
		}
	}

	closed := func(stopID string) bool { return ex != nil && ex.StopClosed(stopID) }
	unknown, excluded := 0, 0
	addEdge := func(from, to string, w float64) error {
		if closed(from) || closed(to) {
			excluded++
			return nil
		}
		u, ok1 := nw.vertex[from]
		v, ok2 := nw.vertex[to]
		if !ok1 || !ok2 {
			unknown++
			return nil
		}
		return g.AddEdge(u, v, w)
	}

	for _, trip := range f.tripOrder {
		prev := ""
		for _, r := range f.tripRows[trip] {
			st := f.StopTimes[r]
			if ex != nil && ex.StopTimeSkipped(trip, st.StopID) {
				excluded++
				continue
			}
			if prev != "" {
				if err := addEdge(prev, st.StopID, rules.Hop); err != nil {
					return nil, fmt.Errorf("trip %s: %w", trip, err)
				}
			}
			prev = st.StopID
		}
	}

	for _, t := range f.Transfers {
		var w float64
		switch {
		case t.Type == TransferRecommended:
			w = rules.Transfer
		case t.Type == TransferMinTime && t.MinTransferTime >= 0:
			w = float64(t.MinTransferTime) / rules.TimedTransferDivisor
		default:
			continue
		}
		if err := addEdge(t.FromStopID, t.ToStopID, w); err != nil {
			return nil, fmt.Errorf("transfer %s→%s: %w", t.FromStopID, t.ToStopID, err)
		}
	}

	log.Info().
		Int("vertices", g.Order()).
		Int("edges", g.Size()).
		Int("unknown_stop_refs", unknown).
		Int("excluded", excluded).
		Msg("routing network built")
	return nw, nil
}
