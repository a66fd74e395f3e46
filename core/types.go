package core

import (
	"errors"
	"fmt"
)

// None marks the absence of a vertex, e.g. the parent of a root.
const None = -1

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexCount indicates a negative initial vertex count.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrBadCapacity indicates a negative WithMaxVertices limit.
	ErrBadCapacity = errors.New("core: vertex capacity must be non-negative")

	// ErrCapacityExceeded indicates the vertex bound set by WithMaxVertices was reached.
	ErrCapacityExceeded = errors.New("core: vertex capacity exceeded")
)

// Edge is a directed, weighted edge From→To as reported by Graph.Edges.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// arc is one adjacency record. Its tail is the index of the list holding it.
type arc struct {
	to     int
	weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithMaxVertices bounds the number of vertices the graph may hold.
// A limit of 0 means unbounded, which is the default.
func WithMaxVertices(limit int) GraphOption {
	return func(g *Graph) {
		if limit < 0 {
			g.err = fmt.Errorf("%w: %d", ErrBadCapacity, limit)
			return
		}
		g.maxVertices = limit
	}
}

// Graph is a weighted adjacency store over dense vertex ids.
//
// adj[u] holds u's outgoing records in insertion order; list order (newest
// first) is obtained by walking it backwards. This keeps insertion O(1)
// without linked nodes.
type Graph struct {
	adj         [][]arc
	edgeCount   int
	maxVertices int // 0 = unbounded

	err error // option error surfaced by NewGraph
}

// NewGraph creates a graph with n isolated vertices 0..n-1.
//
// Returns ErrBadVertexCount if n < 0, ErrBadCapacity for an invalid option and
// ErrCapacityExceeded if n is above the WithMaxVertices bound.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.err != nil {
		return nil, g.err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, n)
	}
	if g.maxVertices > 0 && n > g.maxVertices {
		return nil, fmt.Errorf("%w: %d > %d", ErrCapacityExceeded, n, g.maxVertices)
	}
	g.adj = make([][]arc, n)

	return g, nil
}

// MaxVertices returns the configured vertex bound (0 = unbounded).
func (g *Graph) MaxVertices() int { return g.maxVertices }
