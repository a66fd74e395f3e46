// Package ipq implements an indirect binary min-heap over a fixed universe of
// vertex identities [0, n).
//
// The heap stores identities, not values. Priorities live in a keys slice that
// the queue shares with its caller, and a position index maps each identity to
// its heap slot, so the queue can restore order for one identity in O(log n)
// after the caller lowers that identity's key:
//
//	keys := []float64{inf, inf, 0}
//	q := ipq.New(keys)
//	v, _ := q.ExtractMin() // 2
//	keys[0] = 4
//	q.DecreaseKey(0)
//
// Invariants while an identity v is queued:
//
//	heap[pos[v]] == v
//	keys[heap[parent(i)]] <= keys[heap[i]] for every slot i
//
// The universe is fixed at construction. Identities leave only through
// ExtractMin and are never re-inserted.
//
// Ties between equal keys resolve by whichever comparison path the sift
// takes first. That order is deterministic for a given history of calls but is
// unspecified and must not be relied on.
//
// A Queue is built for one algorithm run and is not safe for concurrent use.
package ipq
