package bfs_test

import (
	"testing"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/core"
)

func BenchmarkBFS_Grid(b *testing.B) {
	const side = 64
	g, _ := core.NewGraph(side * side)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			u := r*side + c
			if c+1 < side {
				g.AddUndirectedEdge(u, u+1, 1)
			}
			if r+1 < side {
				g.AddUndirectedEdge(u, u+side, 1)
			}
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.BFS(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
