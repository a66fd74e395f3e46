package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
)

func TestNewGraph_Validation(t *testing.T) {
	_, err := core.NewGraph(-1)
	assert.ErrorIs(t, err, core.ErrBadVertexCount)

	_, err = core.NewGraph(3, core.WithMaxVertices(-2))
	assert.ErrorIs(t, err, core.ErrBadCapacity)

	_, err = core.NewGraph(5, core.WithMaxVertices(4))
	assert.ErrorIs(t, err, core.ErrCapacityExceeded)

	g, err := core.NewGraph(4, core.WithMaxVertices(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.MaxVertices())
}

func TestAddVertex(t *testing.T) {
	g := mustGraph(t, 2)
	g.AddEdge(0, 1, 1)

	id, err := g.AddVertex()
	require.NoError(t, err)
	assert.Equal(t, 2, id)
	assert.Equal(t, 3, g.VertexCount())
	assert.Zero(t, g.OutDegree(2))
	assert.Empty(t, heads(g, 2))
	// existing ids untouched
	assert.Equal(t, []int{1}, heads(g, 0))
}

func TestAddVertex_Capacity(t *testing.T) {
	g := mustGraph(t, 1, core.WithMaxVertices(2))
	_, err := g.AddVertex()
	require.NoError(t, err)

	id, err := g.AddVertex()
	assert.True(t, errors.Is(err, core.ErrCapacityExceeded))
	assert.Equal(t, core.None, id)
	assert.Equal(t, 2, g.VertexCount())
}

func TestAddEdge_PrependsAndAccumulates(t *testing.T) {
	g := mustGraph(t, 3)
	require.True(t, g.AddEdge(0, 1, 1))
	require.True(t, g.AddEdge(0, 2, 2))
	require.True(t, g.AddEdge(0, 1, 3)) // parallel

	assert.Equal(t, []int{1, 2, 1}, heads(g, 0))
	assert.Equal(t, 3, g.EdgeCount())

	var ws []float64
	for _, w := range g.Neighbors(0) {
		ws = append(ws, w)
	}
	assert.Equal(t, []float64{3, 2, 1}, ws)
}

func TestAddEdge_InvalidEndpointsAreNoOps(t *testing.T) {
	g := mustGraph(t, 2)
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}} {
		assert.False(t, g.AddEdge(c[0], c[1], 1), "AddEdge(%d,%d)", c[0], c[1])
		assert.False(t, g.AddUndirectedEdge(c[0], c[1], 1))
	}
	assert.Zero(t, g.EdgeCount())
}

func TestAddEdge_NegativeWeightAccepted(t *testing.T) {
	g := mustGraph(t, 2)
	assert.True(t, g.AddEdge(0, 1, -4))
	for v, w := range g.Neighbors(0) {
		assert.Equal(t, 1, v)
		assert.Equal(t, -4.0, w)
	}
}

func TestUndirectedEdge_DirectionsAreIndependent(t *testing.T) {
	g := mustGraph(t, 2)
	require.True(t, g.AddUndirectedEdge(0, 1, 7))
	assert.Equal(t, 2, g.EdgeCount())

	require.True(t, g.RemoveEdge(0, 1))
	assert.False(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 0))
	assert.Equal(t, []core.Edge{{From: 1, To: 0, Weight: 7}}, g.Edges())
}

func TestRemoveEdge_FirstMatchOnly(t *testing.T) {
	g := mustGraph(t, 2)
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 1, 2)

	require.True(t, g.RemoveEdge(0, 1))
	// newest record (w=2) is first in list order and goes first
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 1}}, g.Edges())

	require.True(t, g.RemoveEdge(0, 1))
	assert.False(t, g.RemoveEdge(0, 1))
	assert.False(t, g.RemoveEdge(0, 9))
	assert.False(t, g.RemoveEdge(-1, 0))
}

func TestRemoveVertex_Renumbering(t *testing.T) {
	// 0→1, 0→3, 1→2, 2→3, 3→0, 3→1
	g := mustGraph(t, 4)
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 3, 2)
	g.AddEdge(1, 2, 3)
	g.AddEdge(2, 3, 4)
	g.AddEdge(3, 0, 5)
	g.AddEdge(3, 1, 6)

	require.True(t, g.RemoveVertex(1))
	assert.Equal(t, 3, g.VertexCount())

	// old 2 → new 1, old 3 → new 2
	want := []core.Edge{
		{From: 0, To: 2, Weight: 2},
		{From: 1, To: 2, Weight: 4},
		{From: 2, To: 0, Weight: 5},
	}
	assert.Equal(t, want, g.Edges())
	assert.Equal(t, 3, g.EdgeCount())

	for _, e := range g.Edges() {
		assert.True(t, g.HasVertex(e.From))
		assert.True(t, g.HasVertex(e.To))
	}
}

func TestRemoveVertex_OnlyFirstParallelRecordPruned(t *testing.T) {
	g := mustGraph(t, 3)
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 1, 2)
	g.AddEdge(0, 2, 9)

	require.True(t, g.RemoveVertex(1))
	// list order was [2(9), 1(2), 1(1)]; 1(2) is pruned, 1(1) survives and now
	// names the vertex that took over index 1 (the old vertex 2).
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 9},
		{From: 0, To: 1, Weight: 1},
	}, g.Edges())
}

func TestRemoveVertex_LastVertexDropsLeftovers(t *testing.T) {
	g := mustGraph(t, 2)
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 1, 2)

	require.True(t, g.RemoveVertex(1))
	assert.Equal(t, 1, g.VertexCount())
	assert.Empty(t, g.Edges())
	assert.Zero(t, g.EdgeCount())

	// several tails, each with parallel records to the last vertex
	g = mustGraph(t, 4)
	for u := 0; u < 3; u++ {
		g.AddEdge(u, 3, 1)
		g.AddEdge(u, 3, 2)
		g.AddEdge(u, 3, 3)
	}
	g.AddEdge(0, 1, 5)

	require.True(t, g.RemoveVertex(3))
	for _, e := range g.Edges() {
		assert.True(t, g.HasVertex(e.To), "dangling head in %v", e)
	}
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 5}}, g.Edges())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestRemoveVertex_Invalid(t *testing.T) {
	g := mustGraph(t, 2)
	g.AddEdge(0, 1, 1)
	assert.False(t, g.RemoveVertex(-1))
	assert.False(t, g.RemoveVertex(2))
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestRemoveVertex_SelfLoopAndUndirected(t *testing.T) {
	g := mustGraph(t, 3)
	g.AddEdge(1, 1, 1)
	g.AddUndirectedEdge(0, 1, 2)
	g.AddUndirectedEdge(1, 2, 3)

	require.True(t, g.RemoveVertex(1))
	assert.Equal(t, 2, g.VertexCount())
	assert.Empty(t, g.Edges())
}

func TestNeighbors_RestartableAndEarlyStop(t *testing.T) {
	g := mustGraph(t, 4)
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 2, 1)
	g.AddEdge(0, 3, 1)

	seq := g.Neighbors(0)
	var first []int
	for v := range seq {
		first = append(first, v)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []int{3, 2}, first)

	var all []int
	for v := range seq {
		all = append(all, v)
	}
	assert.Equal(t, []int{3, 2, 1}, all)

	assert.Empty(t, heads(g, 42))
}

func TestCloneAndClear(t *testing.T) {
	g := mustGraph(t, 3, core.WithMaxVertices(10))
	g.AddUndirectedEdge(0, 1, 1)
	g.AddEdge(1, 2, 2)

	c := g.Clone()
	assert.Equal(t, g.Edges(), c.Edges())
	assert.Equal(t, 10, c.MaxVertices())

	c.RemoveVertex(0)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())

	g.Clear()
	assert.Zero(t, g.EdgeCount())
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 1, c.EdgeCount())
}

func TestString(t *testing.T) {
	g := mustGraph(t, 3)
	g.AddEdge(0, 1, 2)
	g.AddEdge(0, 2, 0.5)
	g.AddEdge(2, 0, 1)

	want := "0 -> (2, w=0.5)(1, w=2)\n1 ->\n2 -> (0, w=1)\n"
	assert.Equal(t, want, g.String())
}
