// Package prim provides an implementation of Prim's Minimum Spanning Tree (MST)
// algorithm over an undirected core.Graph.
//
// The tree grows from a root vertex. Every vertex is loaded into an indirect
// min-heap (package ipq) keyed by the lightest known edge into the tree; when
// a lighter edge is found the key is lowered in place and DecreaseKey restores
// order. Growth stops once the lightest remaining key is +Inf, so vertices in
// other components are left out.
//
// Complexity: O((V + E) log V) time, O(V + E) memory (the symmetry check
// counts records).
package prim

import (
	"math"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/ipq"
)

// Prim computes the MST of the component containing the root vertex.
//
// Error Conditions:
//   - ErrOptionViolation : invalid option.
//   - ErrBadWeight       : some record has a NaN weight.
//   - ErrNotUndirected   : a record has no reverse twin of equal weight.
//
// A nil graph, an empty graph or a root outside [0, V) yields an empty Result.
func Prim(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if g == nil || !g.HasVertex(cfg.Root) {
		return &Result{Root: cfg.Root}, nil
	}
	if err := checkSymmetric(g); err != nil {
		return nil, err
	}

	n := g.VertexCount()
	key := make([]float64, n)
	parent := make([]int, n)
	for v := 0; v < n; v++ {
		key[v] = math.Inf(1)
		parent[v] = core.None
	}
	key[cfg.Root] = 0
	pq := ipq.New(key)

	for {
		u, ok := pq.ExtractMin()
		if !ok || math.IsInf(key[u], 1) {
			break
		}
		for v, w := range g.Neighbors(u) {
			if pq.Contains(v) && w < key[v] {
				key[v] = w
				parent[v] = u
				pq.DecreaseKey(v)
			}
		}
	}

	res := &Result{Root: cfg.Root, Parent: parent, Key: key}
	for v := 0; v < n; v++ {
		if v == cfg.Root || parent[v] == core.None {
			continue
		}
		res.Edges = append(res.Edges, Edge{From: parent[v], To: v, Weight: key[v]})
		res.Total += key[v]
	}

	return res, nil
}
