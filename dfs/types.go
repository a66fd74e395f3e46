// Package dfs defines types and options for depth-first search traversal,
// including a visit hook, neighbor filtering, full-graph (forest) traversal,
// and basic diagnostics.
package dfs

import "github.com/katalvlaran/wgraph/core"

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked when a vertex is popped for the first
	// time and recorded. Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// FilterNeighbor, if non-nil, is called for each record u→v before v is
	// pushed. Return false to skip it.
	FilterNeighbor func(u, v int) bool

	// FullTraversal, if true, runs DFS from every unvisited vertex in id order,
	// covering disconnected components (forest traversal). The start argument
	// is ignored. Default is false.
	FullTraversal bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - No visit hook
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithFilterNeighbor returns an Option that filters pushed neighbors.
func WithFilterNeighbor(fn func(u, v int) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertices in the sequence they were first popped.
	Order []int

	// Parent[v] is the vertex whose expansion pushed the stack entry through
	// which v was visited; core.None for roots and unvisited vertices.
	Parent []int

	// Visited flags which vertices were reached.
	Visited []bool

	// SkippedNeighbors counts records rejected by FilterNeighbor.
	SkippedNeighbors int

	// MaxStack is the deepest the explicit stack grew, duplicates included.
	MaxStack int
}

// Roots returns the vertices that started a DFS tree, in visit order.
func (r *Result) Roots() []int {
	var roots []int
	for _, v := range r.Order {
		if r.Parent[v] == core.None {
			roots = append(roots, v)
		}
	}

	return roots
}
