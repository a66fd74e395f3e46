package prim_test

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/prim"
)

// ExamplePrim builds the MST of the sample road graph.
func ExamplePrim() {
	g, _ := core.NewGraph(6)
	g.AddUndirectedEdge(0, 1, 5)
	g.AddUndirectedEdge(1, 2, 3)
	g.AddUndirectedEdge(0, 3, 2)
	g.AddUndirectedEdge(1, 4, 1)
	g.AddUndirectedEdge(2, 5, 4)
	g.AddUndirectedEdge(3, 4, 6)
	g.AddUndirectedEdge(4, 5, 2)

	res, err := prim.Prim(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range res.Edges {
		fmt.Printf("%d -- %d  weight=%g\n", e.From, e.To, e.Weight)
	}
	fmt.Println("total:", res.Total)

	// Output:
	// 0 -- 1  weight=5
	// 1 -- 2  weight=3
	// 0 -- 3  weight=2
	// 1 -- 4  weight=1
	// 4 -- 5  weight=2
	// total: 13
}
