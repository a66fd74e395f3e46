// Package dfs implements iterative depth-first search on core.Graph.
//
// The traversal keeps an explicit stack of vertex ids and a visited set that
// is checked when a vertex is popped, not when it is pushed:
//
//	push start
//	while stack not empty:
//	    u = pop
//	    if visited[u]: continue
//	    visited[u] = true; record u
//	    push every currently unvisited neighbor of u, in list order
//
// A vertex may sit on the stack several times at once but is recorded only at
// its first pop. Because neighbors are pushed in list order (newest edge
// first), the oldest edge of u is explored first. This order differs from a
// DFS that marks on push and is part of the package contract.
//
// An out-of-range start vertex is not an error: DFS returns an empty Result.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for the stack, since entries may repeat.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// stackItem is a pending vertex and the vertex that pushed it.
type stackItem struct {
	v    int
	from int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	stack []stackItem
	res   *Result
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise, it starts only from start.
// Returns an error only when the OnVisit hook aborts the traversal; the partial
// Result is returned alongside it.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if g == nil || (!dopts.FullTraversal && !g.HasVertex(start)) {
		return &Result{}, nil
	}

	n := g.VertexCount()
	res := &Result{
		Order:   make([]int, 0, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for v := range res.Parent {
		res.Parent[v] = core.None
	}
	walker := &dfsWalker{graph: g, opts: dopts, stack: make([]stackItem, 0, n), res: res}

	if !dopts.FullTraversal {
		return res, walker.run(start)
	}
	for v := 0; v < n; v++ {
		if res.Visited[v] {
			continue
		}
		if err := walker.run(v); err != nil {
			return res, err
		}
	}

	return res, nil
}

// run drains the stack seeded with root.
func (w *dfsWalker) run(root int) error {
	w.push(root, core.None)
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.res.Visited[top.v] {
			continue
		}

		w.res.Visited[top.v] = true
		w.res.Parent[top.v] = top.from
		w.res.Order = append(w.res.Order, top.v)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(top.v); err != nil {
				w.stack = w.stack[:0]
				return fmt.Errorf("dfs: OnVisit hook for %d: %w", top.v, err)
			}
		}

		for nbr := range w.graph.Neighbors(top.v) {
			if w.res.Visited[nbr] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(top.v, nbr) {
				w.res.SkippedNeighbors++
				continue
			}
			w.push(nbr, top.v)
		}
	}

	return nil
}

func (w *dfsWalker) push(v, from int) {
	w.stack = append(w.stack, stackItem{v: v, from: from})
	if len(w.stack) > w.res.MaxStack {
		w.res.MaxStack = len(w.stack)
	}
}
