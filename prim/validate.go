package prim

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/core"
)

// checkSymmetric verifies that every record u→v (weight w) is matched by as
// many v→u records of weight w as there are u→v records of weight w.
// NaN weights are rejected first with ErrBadWeight: NaN never equals itself,
// so such records would escape the count.
func checkSymmetric(g *core.Graph) error {
	edges := g.Edges()
	count := make(map[core.Edge]int, len(edges))
	for _, e := range edges {
		if math.IsNaN(e.Weight) {
			return fmt.Errorf("%w: edge %d→%d", ErrBadWeight, e.From, e.To)
		}
		count[e]++
	}
	for _, e := range edges {
		rev := core.Edge{From: e.To, To: e.From, Weight: e.Weight}
		if count[e] != count[rev] {
			return fmt.Errorf("%w: %d→%d weight=%g has no matching reverse edge",
				ErrNotUndirected, e.From, e.To, e.Weight)
		}
	}

	return nil
}
