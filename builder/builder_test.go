package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
)

func TestTopologies_Counts(t *testing.T) {
	cases := []struct {
		name     string
		con      builder.Constructor
		vertices int
		edges    int // undirected pairs
	}{
		{"path", builder.Path(5), 5, 4},
		{"cycle", builder.Cycle(5), 5, 5},
		{"star", builder.Star(5), 5, 4},
		{"complete", builder.Complete(5), 5, 10},
		{"grid", builder.Grid(3, 4), 12, 17},
		{"dense", builder.RandomSparse(6, 1), 6, 15},
		{"empty", builder.RandomSparse(6, 0), 6, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, 2*tc.edges, g.EdgeCount())
		})
	}
}

func TestDirected(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithDirected()}, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge(2, 0))
	assert.False(t, g.HasEdge(0, 2))

	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithDirected()}, builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, 12, g.EdgeCount())
}

func TestComposeIsDisjointUnion(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(2), builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(4, 2))
	assert.False(t, g.HasEdge(1, 2))
}

func TestErrors(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Cycle(2))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, nil, builder.Grid(0, 3))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(4, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(4, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph([]core.GraphOption{core.WithMaxVertices(3)}, nil, builder.Path(4))
	require.ErrorIs(t, err, core.ErrCapacityExceeded)
}

func TestSeedDeterminism(t *testing.T) {
	build := func() []core.Edge {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
			builder.RandomSparse(30, 0.2))
		require.NoError(t, err)
		return g.Edges()
	}
	assert.Equal(t, build(), build())
}

func TestWeightFns(t *testing.T) {
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(3, 4)(nil))
	assert.Equal(t, 3.0, builder.IntWeightFn(3, 8)(nil))

	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
	assert.Panics(t, func() { builder.IntWeightFn(-1, 1) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

// On unit weights Dijkstra distances equal BFS depths.
func TestGridUnitWeightsMatchBFS(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(6, 7))
	require.NoError(t, err)

	dr, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	br, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	for v := 0; v < g.VertexCount(); v++ {
		assert.Equal(t, float64(br.Depth[v]), dr.Dist[v], "vertex %d", v)
	}
	// Manhattan distance to the far corner.
	assert.Equal(t, 11.0, dr.Dist[g.VertexCount()-1])
}
