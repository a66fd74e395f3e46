package core

import "iter"

// Neighbors yields the (head, weight) pairs of u's outgoing records in list
// order, most recently added first. The sequence is lazy and can be ranged
// over any number of times; it reflects the graph at iteration time.
//
// An invalid u yields nothing. Mutating u's list while ranging is undefined.
//
//	for v, w := range g.Neighbors(u) { ... }
func (g *Graph) Neighbors(u int) iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		if !g.HasVertex(u) {
			return
		}
		list := g.adj[u]
		for k := len(list) - 1; k >= 0; k-- {
			if !yield(list[k].to, list[k].weight) {
				return
			}
		}
	}
}
