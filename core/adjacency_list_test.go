package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/spantree/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSquare returns the 4-cycle 0-1-2-3-0 with weights 1,2,3,4.
func buildSquare(t *testing.T) *core.AdjacencyList {
	t.Helper()
	g, err := core.NewAdjacencyList(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(2, 3, 3))
	require.NoError(t, g.AddEdge(3, 0, 4))

	return g
}

func TestNewAdjacencyList_Empty(t *testing.T) {
	_, err := core.NewAdjacencyList(0)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)

	_, err = core.NewAdjacencyList(-3)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
}

func TestAddEdge_MirrorsAndKeepsOrder(t *testing.T) {
	g := buildSquare(t)
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 4, g.EdgeCount())

	// Vertex 0 saw 0-1 first and 3-0 second.
	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{To: 1, Weight: 1}, {To: 3, Weight: 4}}, nbrs)

	nbrs, err = g.Neighbors(3)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{To: 2, Weight: 3}, {To: 0, Weight: 4}}, nbrs)

	assert.NoError(t, g.Validate())
}

func TestAddEdge_Rejects(t *testing.T) {
	g, err := core.NewAdjacencyList(2)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge(0, 2, 1), core.ErrInvalidVertex)
	assert.ErrorIs(t, g.AddEdge(-1, 0, 1), core.ErrInvalidVertex)
	assert.ErrorIs(t, g.AddEdge(0, 1, -0.5), core.ErrNegativeWeight)
	assert.ErrorIs(t, g.AddEdge(0, 1, math.NaN()), core.ErrInvalidWeight)
	assert.ErrorIs(t, g.AddEdge(0, 1, math.Inf(1)), core.ErrInvalidWeight)

	// Nothing was inserted by the failed calls.
	assert.Zero(t, g.EdgeCount())
}

func TestAddEdge_SelfLoopStoredOnce(t *testing.T) {
	g, err := core.NewAdjacencyList(1)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 0, 7))

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Len(t, nbrs, 1)
	assert.Equal(t, []core.Edge{{From: 0, To: 0, Weight: 7}}, g.Edges())
	assert.NoError(t, g.Validate())
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := buildSquare(t)

	nbrs, err := g.Neighbors(1)
	require.NoError(t, err)
	nbrs[0].Weight = 100

	again, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, again[0].Weight)

	_, err = g.Neighbors(9)
	assert.ErrorIs(t, err, core.ErrInvalidVertex)
}

func TestRange_StopsEarly(t *testing.T) {
	g, err := core.NewAdjacencyList(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(0, 3, 1))

	var seen []int
	g.Range(0, func(nb core.Neighbor) bool {
		seen = append(seen, nb.To)
		return nb.To != 2
	})
	assert.Equal(t, []int{1, 2}, seen)
}

func TestEdges_SortedOncePerEdge(t *testing.T) {
	g := buildSquare(t)

	want := []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 3, Weight: 4},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 3},
	}
	assert.Equal(t, want, g.Edges())
	assert.Equal(t, 10.0, core.TotalWeight(g.Edges()))
}

func TestClone_IsIndependent(t *testing.T) {
	g := buildSquare(t)
	cp := g.Clone()
	require.NoError(t, cp.AddEdge(0, 2, 9))

	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 5, cp.EdgeCount())
}

func TestFromMap_Dense(t *testing.T) {
	g, err := core.FromMap(map[int][]core.Neighbor{
		0: {{To: 1, Weight: 2}},
		1: {{To: 0, Weight: 2}, {To: 2, Weight: 3}},
		2: {{To: 1, Weight: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestFromMap_SparseKeys(t *testing.T) {
	// Keys 0 and 5 do not form the range 0..1.
	_, err := core.FromMap(map[int][]core.Neighbor{
		0: {{To: 5, Weight: 1}},
		5: {{To: 0, Weight: 1}},
	})
	assert.ErrorIs(t, err, core.ErrInvalidVertex)
}

func TestFromMap_Empty(t *testing.T) {
	_, err := core.FromMap(nil)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)

	_, err = core.FromSlices(nil)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
}

func TestFromSlices_CopiesInput(t *testing.T) {
	in := [][]core.Neighbor{
		{{To: 1, Weight: 1}},
		{{To: 0, Weight: 1}},
	}
	g, err := core.FromSlices(in)
	require.NoError(t, err)

	in[0][0].Weight = 42
	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, nbrs[0].Weight)
}
