package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dfs"
)

func ExampleDFS() {
	g, _ := core.NewGraph(5)
	g.AddUndirectedEdge(0, 1, 1)
	g.AddUndirectedEdge(0, 2, 1)
	g.AddUndirectedEdge(1, 3, 1)
	g.AddUndirectedEdge(2, 4, 1)

	res, _ := dfs.DFS(g, 0)
	fmt.Println(res.Order)

	// Output:
	// [0 1 3 2 4]
}
