// Package bfs provides breadth-first search over a core.Graph,
// returning visit order, hop depths and parent links.
//
// BFS marks a vertex visited when it is enqueued, so every reachable vertex is
// recorded exactly once. Neighbors are enqueued in adjacency-list order (most
// recently added edge first).
//
// An out-of-range start vertex is not an error: BFS returns an empty Result.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrOptionViolation for bad options or any OnVisit hook error;
// a nil graph or invalid start yields an empty Result and nil error.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if g == nil || !g.HasVertex(start) {
		return &Result{}, nil
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = -1
		w.res.Parent[v] = core.None
	}

	w.enqueue(start, 0, core.None)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		item := w.queue[head]
		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor of item in list order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for nbr := range w.graph.Neighbors(item.v) {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.v)
	}
}
