// Package wgraph is a weighted directed graph engine addressed by dense
// integer vertex ids.
//
// The module is organised as small packages around one store:
//
//   - core: adjacency-list graph with O(1) edge insertion, renumbering vertex
//     removal and newest-first neighbour iteration.
//   - bfs, dfs: traversals returning visit order and search trees.
//   - ipq: indirect-addressable binary min-heap with DecreaseKey.
//   - dijkstra: single-source shortest paths on non-negative weights.
//   - prim: minimum spanning tree of the root's component.
//   - matrix: dense adjacency and all-pairs distances via gonum/mat.
//   - converters: two-way adapters to gonum/graph.
//   - builder: deterministic fixture graphs (path, grid, random, ...).
//   - host: handle-based API for embedding, with metrics and logging.
//
// The wgraph command (cmd/wgraph) drives the host API from YAML scenarios.
//
// Quick start:
//
//	g, _ := core.NewGraph(3)
//	g.AddUndirectedEdge(0, 1, 2)
//	g.AddUndirectedEdge(1, 2, 3)
//	res, _ := dijkstra.Dijkstra(g, 0)
//	fmt.Println(res.Dist) // [0 2 5]
package wgraph
