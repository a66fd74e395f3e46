// Package host exposes the graph engine through a flat, handle-based API for
// a foreign host process.
//
// A handle is an opaque string obtained from GraphCreate, passed to every
// later call, and released with GraphDestroy:
//
//	r := host.NewRegistry()
//	h, _ := r.GraphCreate(3)
//	_ = r.GraphAddUndirectedEdge(h, 0, 1, 2.5)
//	order, _ := r.GraphBFS(h, 0)
//	_ = r.GraphDestroy(h)
//
// Arguments and results are primitive values or caller-owned slices. Result
// slices are fresh copies; the caller may keep or modify them.
//
// Error contract:
//   - Vertex ids outside [0, V) are silent no-ops (empty sequences for
//     traversals) and are only logged at debug level.
//   - Unknown or destroyed handles return ErrUnknownHandle.
//   - Capacity and algorithm precondition failures are returned as the
//     underlying package errors (core.ErrCapacityExceeded,
//     dijkstra.ErrNegativeWeight, prim.ErrNotUndirected).
//
// The Registry is safe for concurrent use. Calls against one handle are
// serialized, so each graph keeps a single logical owner at a time.
package host
