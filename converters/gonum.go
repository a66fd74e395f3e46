package converters

import (
	"errors"
	"math"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/wgraph/core"
)

// ErrNilGraph is returned when a nil graph is passed to a converter.
var ErrNilGraph = errors.New("converters: graph is nil")

// lightest returns, per ordered pair (u, v) with u != v, the smallest weight
// among g's records u→v.
func lightest(g *core.Graph) map[[2]int]float64 {
	out := make(map[[2]int]float64, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		k := [2]int{e.From, e.To}
		if w, ok := out[k]; !ok || e.Weight < w {
			out[k] = e.Weight
		}
	}

	return out
}

// ToGonumDirected exports g as a gonum weighted directed graph with node IDs
// equal to vertex ids. Absent edges weigh +Inf, self weight is 0.
func ToGonumDirected(g *core.Graph) (*simple.WeightedDirectedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	out := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for v := 0; v < g.VertexCount(); v++ {
		out.AddNode(simple.Node(v))
	}
	for k, w := range lightest(g) {
		out.SetWeightedEdge(out.NewWeightedEdge(simple.Node(k[0]), simple.Node(k[1]), w))
	}

	return out, nil
}

// ToGonumUndirected exports g as a gonum weighted undirected graph. Each
// unordered pair keeps the lightest record in either direction.
func ToGonumUndirected(g *core.Graph) (*simple.WeightedUndirectedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for v := 0; v < g.VertexCount(); v++ {
		out.AddNode(simple.Node(v))
	}
	pairs := make(map[[2]int]float64)
	for k, w := range lightest(g) {
		if k[0] > k[1] {
			k = [2]int{k[1], k[0]}
		}
		if cur, ok := pairs[k]; !ok || w < cur {
			pairs[k] = w
		}
	}
	for k, w := range pairs {
		out.SetWeightedEdge(out.NewWeightedEdge(simple.Node(k[0]), simple.Node(k[1]), w))
	}

	return out, nil
}

// FromGonum imports src into a new core.Graph. Node IDs are sorted and mapped
// to dense vertex ids; ids[v] is the gonum ID of vertex v. Every u→v reported
// by src.From(u) becomes one record, so an undirected source yields a
// symmetric store suitable for prim.Prim.
//
// Records are added in ascending (u, v) order.
func FromGonum(src graph.Weighted, opts ...core.GraphOption) (*core.Graph, []int64, error) {
	if src == nil {
		return nil, nil, ErrNilGraph
	}
	nodes := graph.NodesOf(src.Nodes())
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	slices.Sort(ids)
	index := make(map[int64]int, len(ids))
	for v, id := range ids {
		index[id] = v
	}

	g, err := core.NewGraph(len(ids), opts...)
	if err != nil {
		return nil, nil, err
	}
	for u, uid := range ids {
		succ := graph.NodesOf(src.From(uid))
		vids := make([]int64, len(succ))
		for i, n := range succ {
			vids[i] = n.ID()
		}
		slices.Sort(vids)
		for _, vid := range vids {
			w, ok := src.Weight(uid, vid)
			if !ok {
				continue
			}
			g.AddEdge(u, index[vid], w)
		}
	}

	return g, ids, nil
}
