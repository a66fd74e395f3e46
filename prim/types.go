// Package prim defines result types, options and sentinel errors for Prim's
// minimum spanning tree algorithm.
package prim

import (
	"errors"
	"fmt"
)

// Sentinel errors for MST computation.
var (
	// ErrNotUndirected indicates the adjacency store is not symmetric: some
	// record u→v with weight w has no matching v→u record with the same weight.
	// Prim requires edges inserted through AddUndirectedEdge.
	ErrNotUndirected = errors.New("prim: graph is not undirected")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("prim: invalid option supplied")

	// ErrBadWeight indicates a NaN edge weight, which has no order and
	// cannot be matched against its reverse record.
	ErrBadWeight = errors.New("prim: edge weight is NaN")
)

// Edge is one tree edge Parent→Vertex with the weight that attached it.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Options configures Prim.
type Options struct {
	// Root is the vertex the tree grows from. Default 0.
	Root int

	err error
}

// Option is a functional option for Prim.
type Option func(*Options)

// WithRoot selects the start vertex. Negative values cause ErrOptionViolation;
// a root beyond the vertex count yields an empty Result.
func WithRoot(root int) Option {
	return func(o *Options) {
		if root < 0 {
			o.err = fmt.Errorf("%w: root must be non-negative (%d)", ErrOptionViolation, root)
			return
		}
		o.Root = root
	}
}

// Result is the minimum spanning tree of the root's component.
//
// Edges lists (Parent[v], v, Key[v]) for every reached non-root vertex v in
// id order. Vertices not connected to Root keep Parent = core.None and
// Key = +Inf and are never reported as edges.
type Result struct {
	Root   int
	Edges  []Edge
	Total  float64
	Parent []int
	Key    []float64
}

// Spanning reports whether the tree reaches every vertex of the graph.
func (r *Result) Spanning() bool {
	return len(r.Edges) == len(r.Parent)-1
}
