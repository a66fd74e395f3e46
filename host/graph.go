package host

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dfs"
	"github.com/katalvlaran/wgraph/dijkstra"
	"github.com/katalvlaran/wgraph/matrix"
	"github.com/katalvlaran/wgraph/prim"
)

// MSTEdge is one minimum spanning tree edge as returned by GraphPrim.
type MSTEdge struct {
	From   int32
	To     int32
	Weight float64
}

// GraphAddNode appends a vertex. Returns core.ErrCapacityExceeded at the bound.
func (r *Registry) GraphAddNode(h Handle) error {
	return r.with(h, "add_node", func(g *core.Graph) (bool, error) {
		_, err := g.AddVertex()
		return err == nil, err
	})
}

// GraphRemoveNode removes vertex u and renumbers the vertices above it.
func (r *Registry) GraphRemoveNode(h Handle, u int) error {
	return r.with(h, "remove_node", func(g *core.Graph) (bool, error) {
		return g.RemoveVertex(u), nil
	})
}

// GraphAddEdge adds the directed edge u→v.
func (r *Registry) GraphAddEdge(h Handle, u, v int, w float64) error {
	return r.with(h, "add_edge", func(g *core.Graph) (bool, error) {
		return g.AddEdge(u, v, w), nil
	})
}

// GraphAddUndirectedEdge adds u→v and v→u.
func (r *Registry) GraphAddUndirectedEdge(h Handle, u, v int, w float64) error {
	return r.with(h, "add_undirected_edge", func(g *core.Graph) (bool, error) {
		return g.AddUndirectedEdge(u, v, w), nil
	})
}

// GraphRemoveEdge removes the first u→v record.
func (r *Registry) GraphRemoveEdge(h Handle, u, v int) error {
	return r.with(h, "remove_edge", func(g *core.Graph) (bool, error) {
		return g.RemoveEdge(u, v), nil
	})
}

// GraphVertexCount returns V.
func (r *Registry) GraphVertexCount(h Handle) (int, error) {
	var n int
	err := r.with(h, "vertex_count", func(g *core.Graph) (bool, error) {
		n = g.VertexCount()
		return true, nil
	})

	return n, err
}

// GraphBFS returns the breadth-first visit order from start. An invalid
// start yields an empty sequence.
func (r *Registry) GraphBFS(h Handle, start int) ([]int32, error) {
	var order []int32
	err := r.with(h, "bfs", func(g *core.Graph) (bool, error) {
		defer r.timed("bfs", time.Now())
		res, err := bfs.BFS(g, start)
		if err != nil {
			return false, err
		}
		order = toInt32(res.Order)
		return len(order) > 0, nil
	})

	return order, err
}

// GraphDFS returns the depth-first visit order from start. An invalid
// start yields an empty sequence.
func (r *Registry) GraphDFS(h Handle, start int) ([]int32, error) {
	var order []int32
	err := r.with(h, "dfs", func(g *core.Graph) (bool, error) {
		defer r.timed("dfs", time.Now())
		res, err := dfs.DFS(g, start)
		if err != nil {
			return false, err
		}
		order = toInt32(res.Order)
		return len(order) > 0, nil
	})

	return order, err
}

// GraphDijkstra returns per-vertex distances (+Inf if unreachable) and
// parents (-1 for none) from start. An invalid start yields empty slices.
func (r *Registry) GraphDijkstra(h Handle, start int) ([]float64, []int32, error) {
	var (
		dist   []float64
		parent []int32
	)
	err := r.with(h, "dijkstra", func(g *core.Graph) (bool, error) {
		defer r.timed("dijkstra", time.Now())
		res, err := dijkstra.Dijkstra(g, start)
		if err != nil {
			return false, err
		}
		dist = res.Dist
		parent = toInt32(res.Parent)
		return res.Dist != nil, nil
	})

	return dist, parent, err
}

// GraphPrim returns the MST edges grown from vertex 0 and their total weight.
// Vertices not connected to 0 are not reported.
func (r *Registry) GraphPrim(h Handle) ([]MSTEdge, float64, error) {
	var (
		edges []MSTEdge
		total float64
	)
	err := r.with(h, "prim", func(g *core.Graph) (bool, error) {
		defer r.timed("prim", time.Now())
		res, err := prim.Prim(g)
		if err != nil {
			return false, err
		}
		edges = make([]MSTEdge, len(res.Edges))
		for i, e := range res.Edges {
			edges[i] = MSTEdge{From: int32(e.From), To: int32(e.To), Weight: e.Weight}
		}
		total = res.Total
		return res.Parent != nil, nil
	})

	return edges, total, err
}

// GraphPrint renders the adjacency lists, one line per vertex.
func (r *Registry) GraphPrint(h Handle) (string, error) {
	var s string
	err := r.with(h, "print", func(g *core.Graph) (bool, error) {
		s = g.String()
		return true, nil
	})

	return s, err
}

// GraphDistances returns all-pairs shortest-path costs, row u holding the
// costs from u (+Inf if unreachable). An empty graph yields nil.
func (r *Registry) GraphDistances(h Handle) ([][]float64, error) {
	var rows [][]float64
	err := r.with(h, "distances", func(g *core.Graph) (bool, error) {
		defer r.timed("floyd_warshall", time.Now())
		d, err := matrix.Distances(g)
		if err != nil || d == nil {
			return false, err
		}
		n, _ := d.Dims()
		rows = make([][]float64, n)
		for u := range rows {
			rows[u] = mat.Row(nil, u, d)
		}
		return true, nil
	})

	return rows, err
}

func toInt32(in []int) []int32 {
	if in == nil {
		return nil
	}
	out := make([]int32, len(in))
	for i, v := range in {
		out[i] = int32(v)
	}

	return out
}
