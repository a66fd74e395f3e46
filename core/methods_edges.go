// File: methods_edges.go
// Role: Edge lifecycle and edge queries.
// Determinism:
//   - Edges() lists tails in id order and each list newest first.

package core

// AddEdge stores the directed edge u→v with weight w in front of u's list.
// Parallel edges accumulate. Weight sign is not checked here; algorithms that
// need non-negative weights validate on their own.
//
// Returns false and does nothing if u or v is out of range.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w float64) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}
	g.adj[u] = append(g.adj[u], arc{to: v, weight: w})
	g.edgeCount++

	return true
}

// AddUndirectedEdge stores u→v and v→u, both with weight w.
// The two records are independent: RemoveEdge(u, v) leaves v→u intact.
//
// Returns false and does nothing if u or v is out of range.
func (g *Graph) AddUndirectedEdge(u, v int, w float64) bool {
	if !g.AddEdge(u, v, w) {
		return false
	}
	g.AddEdge(v, u, w)

	return true
}

// RemoveEdge deletes the first record in u's list (newest first) whose head is v.
// Returns false if an endpoint is out of range or no such record exists.
// Complexity: O(deg(u)).
func (g *Graph) RemoveEdge(u, v int) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}
	k := g.find(u, v)
	if k < 0 {
		return false
	}
	g.cut(u, k)

	return true
}

// HasEdge reports whether at least one u→v record exists.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}

	return g.find(u, v) >= 0
}

// EdgeCount returns the number of stored directed records.
// An undirected edge counts twice.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// OutDegree returns the number of records whose tail is u, or 0 if u is invalid.
func (g *Graph) OutDegree(u int) int {
	if !g.HasVertex(u) {
		return 0
	}

	return len(g.adj[u])
}

// Edges returns a snapshot of every stored record.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for u := range g.adj {
		for v, w := range g.Neighbors(u) {
			out = append(out, Edge{From: u, To: v, Weight: w})
		}
	}

	return out
}

// find returns the storage index of the first record (list order) in u's list
// whose head is v, or -1.
func (g *Graph) find(u, v int) int {
	list := g.adj[u]
	for k := len(list) - 1; k >= 0; k-- {
		if list[k].to == v {
			return k
		}
	}

	return -1
}

// cut removes the record at storage index k of u's list, keeping order.
func (g *Graph) cut(u, k int) {
	list := g.adj[u]
	copy(list[k:], list[k+1:])
	g.adj[u] = list[:len(list)-1]
	g.edgeCount--
}
