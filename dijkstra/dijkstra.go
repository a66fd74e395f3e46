// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// Every vertex is loaded into an indirect min-heap (package ipq) keyed by its
// tentative distance; relaxing an edge lowers the key in place and calls
// DecreaseKey, so the heap never holds stale entries.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - All per-run state (dist, parent, heap) is allocated per call and dropped on return.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/ipq"
)

// Dijkstra computes shortest distances from source to all vertices of g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. A nil graph or out-of-range source yields an empty Result and nil error.
//  3. No edge in g can have negative weight (ErrNegativeWeight).
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if g == nil || !g.HasVertex(source) {
		return &Result{Source: source}, nil
	}

	for _, e := range g.Edges() {
		if e.Weight < 0 || math.IsNaN(e.Weight) {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := newRunner(g, source, cfg)
	r.process()

	return &Result{Source: source, Dist: r.dist, Parent: r.parent}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    []float64 // shared with pq as its key slice
	parent  []int
	pq      *ipq.Queue // vertices not yet settled
}

// newRunner sets dist[v] = +Inf and parent[v] = None for all v, dist[source] = 0,
// and builds the queue over every vertex.
func newRunner(g *core.Graph, source int, cfg Options) *runner {
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		parent:  make([]int, n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = math.Inf(1)
		r.parent[v] = core.None
	}
	r.dist[source] = 0
	r.pq = ipq.New(r.dist)

	return r
}

// process settles vertices in order of distance until the queue empties or
// the next distance exceeds MaxDistance.
func (r *runner) process() {
	for {
		u, ok := r.pq.ExtractMin()
		if !ok {
			return
		}
		if r.dist[u] > r.options.MaxDistance {
			r.unsettle()
			return
		}
		if math.IsInf(r.dist[u], 1) {
			// the rest of the queue is unreachable
			return
		}
		r.relax(u)
	}
}

// relax lowers the tentative distance of every unsettled neighbor v of u
// for which dist[u] + w < dist[v].
func (r *runner) relax(u int) {
	for v, w := range r.g.Neighbors(u) {
		if !r.pq.Contains(v) {
			continue
		}
		if nd := r.dist[u] + w; nd < r.dist[v] {
			r.dist[v] = nd
			r.parent[v] = u
			r.pq.DecreaseKey(v)
		}
	}
}

// unsettle resets vertices left beyond MaxDistance to the unreached state.
func (r *runner) unsettle() {
	for v := range r.dist {
		if r.dist[v] > r.options.MaxDistance {
			r.dist[v] = math.Inf(1)
			r.parent[v] = core.None
		}
	}
}
