// File: methods_vertices.go
// Role: Vertex lifecycle: add, remove with renumbering, membership.
// Determinism:
//   - RemoveVertex prunes at most one record per foreign list, scanning in list order.

package core

import "fmt"

// AddVertex appends a vertex with no outgoing edges and returns its id (the
// old vertex count). Existing ids are unchanged.
//
// Returns ErrCapacityExceeded when the WithMaxVertices bound is reached.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() (int, error) {
	n := len(g.adj)
	if g.maxVertices > 0 && n >= g.maxVertices {
		return None, fmt.Errorf("%w: limit %d", ErrCapacityExceeded, g.maxVertices)
	}
	g.adj = append(g.adj, nil)

	return n, nil
}

// RemoveVertex deletes vertex u and renumbers every vertex above it down by one.
//
// Steps:
//  1. Drop every record whose tail is u.
//  2. In each other list, remove the first record (list order) whose head is u.
//     Further parallel records to u in the same list are kept.
//  3. Decrement every head greater than u.
//  4. Compact the index space and shrink V.
//
// Records kept in step 2 now name the vertex that took over index u. When u was
// the highest id no such vertex exists, so those records are dropped as well.
//
// Returns false and does nothing if u is out of range.
// Complexity: O(V + E).
func (g *Graph) RemoveVertex(u int) bool {
	if !g.HasVertex(u) {
		return false
	}

	g.edgeCount -= len(g.adj[u])
	g.adj[u] = nil

	var i, k int
	for i = range g.adj {
		if i == u {
			continue
		}
		if k = g.find(i, u); k >= 0 {
			g.cut(i, k)
		}
	}

	last := len(g.adj) - 1
	for i = range g.adj {
		list := g.adj[i]
		kept := list[:0]
		for k = range list {
			switch {
			case list[k].to > u:
				list[k].to--
			case list[k].to == u && u == last:
				g.edgeCount--
				continue
			}
			kept = append(kept, list[k])
		}
		g.adj[i] = kept
	}

	copy(g.adj[u:], g.adj[u+1:])
	g.adj[last] = nil
	g.adj = g.adj[:last]

	return true
}

// HasVertex reports whether u is a valid vertex id.
// Complexity: O(1).
func (g *Graph) HasVertex(u int) bool {
	return u >= 0 && u < len(g.adj)
}

// VertexCount returns V.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.adj)
}
