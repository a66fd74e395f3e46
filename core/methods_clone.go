// File: methods_clone.go
// Role: Cloning and clearing graph instances.

package core

// Clone returns a deep copy: vertices, records in identical order, and the
// capacity bound. Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		adj:         make([][]arc, len(g.adj)),
		edgeCount:   g.edgeCount,
		maxVertices: g.maxVertices,
	}
	for u, list := range g.adj {
		if len(list) > 0 {
			clone.adj[u] = append([]arc(nil), list...)
		}
	}

	return clone
}

// Clear removes every edge and keeps the vertices.
func (g *Graph) Clear() {
	for u := range g.adj {
		g.adj[u] = nil
	}
	g.edgeCount = 0
}
