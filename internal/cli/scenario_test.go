package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/host"
)

func TestParseScenario(t *testing.T) {
	sc, err := parseScenario([]byte(`
vertices: 2
steps:
  - op: add_undirected_edge
    u: 0
    v: 1
    w: 0.25
  - {op: prim}
`))
	require.NoError(t, err)
	assert.Equal(t, 2, sc.Vertices)
	require.Len(t, sc.Steps, 2)
	assert.Equal(t, Step{Op: opAddUndirectedEdge, U: 0, V: 1, W: 0.25}, sc.Steps[0])
	assert.Equal(t, "add_undirected_edge(0, 1, 0.25)", sc.Steps[0].String())
	assert.Equal(t, "prim", sc.Steps[1].String())
}

func TestParseScenario_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown op": "vertices: 1\nsteps:\n  - {op: topo}\n",
		"negative":   "vertices: -2\n",
		"not yaml":   "vertices: [1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseScenario([]byte(body))
			require.ErrorIs(t, err, ErrBadScenario)
		})
	}
}

func TestRunner_AllOps(t *testing.T) {
	var out bytes.Buffer
	reg := host.NewRegistry()
	ctx := withLogger(context.Background(), log.New(&bytes.Buffer{}))
	r := newRunner(ctx, reg, &out)

	sc := &Scenario{Vertices: 3, Steps: []Step{
		{Op: opAddUndirectedEdge, U: 0, V: 1, W: 1},
		{Op: opAddUndirectedEdge, U: 1, V: 2, W: 2},
		{Op: opAddNode},
		{Op: opAddEdge, U: 2, V: 3, W: 4},
		{Op: opRemoveEdge, U: 2, V: 3},
		{Op: opRemoveNode, U: 3},
		{Op: opBFS, Start: 0},
		{Op: opDFS, Start: 2},
		{Op: opDijkstra, Start: 0},
		{Op: opPrim},
		{Op: opPrint},
		{Op: opDistances},
	}}
	require.NoError(t, r.run(ctx, "all", sc))

	text := out.String()
	assert.Contains(t, text, "bfs(0) [0 1 2]")
	assert.Contains(t, text, "dfs(2) [2 1 0]")
	assert.Contains(t, text, "dist=3")
	assert.Contains(t, text, "prim total=3")
	assert.Contains(t, text, "1 -> (2, w=2)(0, w=1)")
	assert.Contains(t, text, "     0      1      3")
	assert.Contains(t, text, "12 steps, 3 vertices")

	// The scenario's graph is released afterwards.
	assert.Zero(t, reg.Len())
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reg := host.NewRegistry()
	r := newRunner(ctx, reg, &bytes.Buffer{})
	err := r.run(ctx, "cancelled", demoScenario(false))
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, reg.Len())
}

func TestDemoScenario(t *testing.T) {
	undirected := demoScenario(false)
	directed := demoScenario(true)

	assert.Equal(t, 6, undirected.Vertices)
	assert.Len(t, undirected.Steps, len(sampleEdges)+6)
	assert.Len(t, directed.Steps, len(sampleEdges)+5)
	assert.Equal(t, opAddEdge, directed.Steps[0].Op)
	assert.Equal(t, opPrim, undirected.Steps[len(undirected.Steps)-1].Op)
}
