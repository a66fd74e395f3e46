package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
	"github.com/katalvlaran/wgraph/matrix"
)

func TestAdjacency(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	g.AddEdge(0, 1, 4)
	g.AddEdge(0, 1, 2) // parallel, lighter
	g.AddEdge(1, 2, 7)
	g.AddEdge(2, 2, 1) // self-loop

	a, err := matrix.Adjacency(g)
	require.NoError(t, err)
	assert.Equal(t, []float64{
		0, 2, 0,
		0, 0, 7,
		0, 0, 0,
	}, a.RawMatrix().Data)
}

func TestAdjacency_Degenerate(t *testing.T) {
	_, err := matrix.Adjacency(nil)
	require.ErrorIs(t, err, matrix.ErrNilGraph)

	g, err := core.NewGraph(0)
	require.NoError(t, err)
	a, err := matrix.Adjacency(g)
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestDistancesMatchDijkstra(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithSeed(3),
		builder.WithDirected(),
		builder.WithWeightFn(builder.IntWeightFn(1, 20)),
	}, builder.RandomSparse(25, 0.15))
	require.NoError(t, err)

	d, err := matrix.Distances(g)
	require.NoError(t, err)

	for s := 0; s < g.VertexCount(); s++ {
		res, err := dijkstra.Dijkstra(g, s)
		require.NoError(t, err)
		assert.Equal(t, res.Dist, mat.Row(nil, s, d), "source %d", s)
	}
}

func TestDistances_NegativeEdgeAndCycle(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	g.AddEdge(0, 1, 5)
	g.AddEdge(1, 2, -2)

	d, err := matrix.Distances(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, d.At(0, 2))
	assert.True(t, math.IsInf(d.At(2, 0), 1))

	g.AddEdge(2, 1, 1)
	_, err = matrix.Distances(g)
	require.ErrorIs(t, err, matrix.ErrNegativeCycle)
}

func TestFloydWarshall_NonSquare(t *testing.T) {
	err := matrix.FloydWarshall(mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
