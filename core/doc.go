// Package core provides the adjacency store behind every algorithm in wgraph:
// a weighted graph over dense integer vertices [0, V).
//
// The Graph G = (V,E) keeps one ordered edge list per vertex. Each record is a
// directed (head, weight) pair stored under its tail vertex:
//
//   - AddEdge(u, v, w) stores u→v. New records are placed in front of the list,
//     so iteration yields the most recently added edge first.
//   - AddUndirectedEdge(u, v, w) stores u→v and v→u as two independent records.
//     Removing one direction leaves the other in place.
//   - Parallel edges and self-loops are accepted and accumulate.
//
// Vertex identity is positional. RemoveVertex(u) compacts the index space, so
// every vertex above u is renumbered down by one. Callers holding vertex ids
// across a removal must translate them.
//
// RemoveVertex(u) prunes only the first record pointing at u in each other
// list (list order). Further parallel records to u survive and, after the
// shift, name the vertex that took over index u. The one exception is when u
// is the highest id: no vertex takes its place, so every leftover record to u
// is dropped too rather than left naming a vertex that no longer exists.
//
// Invalid input contract:
//
//	Vertex ids outside [0, V) never produce an error. Mutations report false and
//	leave the graph untouched; queries return zero values or empty sequences.
//
// Capacity:
//
//	The vertex count is unbounded by default. WithMaxVertices(n) installs an
//	explicit bound; NewGraph and AddVertex return ErrCapacityExceeded beyond it.
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) (*Graph, error)
//	AddVertex() (int, error)                 // O(1) amortized
//	RemoveVertex(u int) bool                 // O(V+E)
//	AddEdge(u, v int, w float64) bool        // O(1) amortized
//	AddUndirectedEdge(u, v int, w float64) bool
//	RemoveEdge(u, v int) bool                // O(deg(u))
//	Neighbors(u int) iter.Seq2[int, float64] // lazy, restartable
//	VertexCount() int, EdgeCount() int
//	Edges() []Edge, Clone() *Graph, Clear()
//
// Graph is not safe for concurrent use. A graph must be owned by one caller
// for the duration of any mutating call; see package host for a registry that
// serializes access per handle.
package core
