package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
)

// mustGraph builds a graph with n vertices or fails the test.
func mustGraph(t testing.TB, n int, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, opts...)
	require.NoError(t, err)

	return g
}

// heads collects u's neighbor ids in list order.
func heads(g *core.Graph, u int) []int {
	var out []int
	for v := range g.Neighbors(u) {
		out = append(out, v)
	}

	return out
}
