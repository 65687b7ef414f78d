package gtfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/stop-router/graph"
)

type stubExclusions struct {
	closed  map[string]bool
	skipped map[[2]string]bool
}

func (s stubExclusions) StopClosed(stopID string) bool { return s.closed[stopID] }

func (s stubExclusions) StopTimeSkipped(tripID, stopID string) bool {
	return s.skipped[[2]string{tripID, stopID}]
}

func weights(nw *Network, from, to string) []float64 {
	u, _ := nw.Vertex(from)
	v, _ := nw.Vertex(to)
	var out []float64
	for _, e := range nw.Graph.Edges(u) {
		if e.To == v {
			out = append(out, e.Weight)
		}
	}
	return out
}

func TestBuildNetwork(t *testing.T) {
	nw, err := fixtureFeed(t).BuildNetwork(DefaultCostRules(), nil)
	require.NoError(t, err)

	assert.Equal(t, 5, nw.Graph.Order())
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, nw.StopIDs)

	v, ok := nw.Vertex("C")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, "C", nw.StopID(v))
	assert.Equal(t, "", nw.StopID(99))
	_, ok = nw.Vertex("X")
	assert.False(t, ok)

	// hops
	assert.Equal(t, []float64{1}, weights(nw, "A", "B"))
	assert.Equal(t, []float64{1, 1}, weights(nw, "B", "C"), "one edge per trip")
	assert.Equal(t, []float64{1}, weights(nw, "D", "A"))
	// transfers
	assert.Equal(t, []float64{2}, weights(nw, "C", "D"))
	assert.Equal(t, []float64{3}, weights(nw, "B", "D"))
	assert.Empty(t, weights(nw, "A", "E"), "transfer_type 3 is ignored")
	assert.Empty(t, weights(nw, "D", "C"), "timed transfer without min_transfer_time is ignored")

	assert.Equal(t, 6, nw.Graph.Size())
}

func TestBuildNetwork_ShortestPath(t *testing.T) {
	nw, err := fixtureFeed(t).BuildNetwork(DefaultCostRules(), nil)
	require.NoError(t, err)

	a, _ := nw.Vertex("A")
	d, _ := nw.Vertex("D")
	p, err := nw.Graph.ShortestPath(a, d)
	require.NoError(t, err)
	require.NotNil(t, p)
	// A->B->D ties with A->B->C->D at 4; the route found first is kept
	assert.Equal(t, 4.0, p.Total)
	assert.Equal(t, []int{0, 1, 3}, p.Vertices())

	e, _ := nw.Vertex("E")
	p, err = nw.Graph.ShortestPath(a, e)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestBuildNetwork_CustomCosts(t *testing.T) {
	nw, err := fixtureFeed(t).BuildNetwork(CostRules{Hop: 2, Transfer: 5, TimedTransferDivisor: 60}, nil)
	require.NoError(t, err)

	assert.Equal(t, []float64{2}, weights(nw, "A", "B"))
	assert.Equal(t, []float64{5}, weights(nw, "C", "D"))
	assert.Equal(t, []float64{5}, weights(nw, "B", "D"))

	_, err = fixtureFeed(t).BuildNetwork(CostRules{Hop: 1, Transfer: 2}, nil)
	assert.Error(t, err)
}

func TestBuildNetwork_Exclusions(t *testing.T) {
	f := fixtureFeed(t)

	t.Run("closed stop", func(t *testing.T) {
		nw, err := f.BuildNetwork(DefaultCostRules(), stubExclusions{closed: map[string]bool{"C": true}})
		require.NoError(t, err)

		assert.Equal(t, 5, nw.Graph.Order(), "closed stops keep their vertex")
		assert.Empty(t, weights(nw, "B", "C"))
		assert.Empty(t, weights(nw, "C", "D"))
		assert.Equal(t, 3, nw.Graph.Size())
	})

	t.Run("skipped stop time", func(t *testing.T) {
		nw, err := f.BuildNetwork(DefaultCostRules(), stubExclusions{
			skipped: map[[2]string]bool{{"10", "B"}: true},
		})
		require.NoError(t, err)

		// trip 10 runs A->C directly, trip 2 still serves B->C
		assert.Equal(t, []float64{1}, weights(nw, "A", "C"))
		assert.Empty(t, weights(nw, "A", "B"))
		assert.Equal(t, []float64{1}, weights(nw, "B", "C"))
	})
}

func TestBuildNetwork_EmptyFeed(t *testing.T) {
	nw, err := (&Feed{}).BuildNetwork(DefaultCostRules(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, nw.Graph.Order())

	_, err = nw.Graph.ShortestPath(0, 0)
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)
}
