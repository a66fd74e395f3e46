package ipq

import "container/heap"

// absent is the position of an identity that has been extracted.
const absent = -1

// Queue is an indirect min-heap keyed by a caller-owned slice.
type Queue struct {
	keys []float64 // shared with the caller; keys[v] is v's priority
	heap []int     // heap[i] is the identity in slot i
	pos  []int     // pos[v] is v's slot, or absent
}

// New builds a queue holding every identity 0..len(keys)-1, ordered by keys.
// The queue keeps a reference to keys; callers lower keys[v] in place and then
// call DecreaseKey(v).
// Complexity: O(n).
func New(keys []float64) *Queue {
	n := len(keys)
	q := &Queue{
		keys: keys,
		heap: make([]int, n),
		pos:  make([]int, n),
	}
	for v := 0; v < n; v++ {
		q.heap[v] = v
		q.pos[v] = v
	}
	heap.Init((*order)(q))

	return q
}

// Len returns the number of identities still queued.
func (q *Queue) Len() int { return len(q.heap) }

// Empty reports whether every identity has been extracted.
func (q *Queue) Empty() bool { return len(q.heap) == 0 }

// Contains reports whether v is in the universe and not yet extracted.
func (q *Queue) Contains(v int) bool {
	return v >= 0 && v < len(q.pos) && q.pos[v] != absent
}

// Key returns the current priority of v. v must be in the universe.
func (q *Queue) Key(v int) float64 { return q.keys[v] }

// ExtractMin removes and returns the identity with the smallest key.
// The last slot replaces the root, which then sifts down, swapping with the
// smaller child until heap order holds. ok is false if the queue is empty.
// Complexity: O(log n).
func (q *Queue) ExtractMin() (v int, ok bool) {
	if len(q.heap) == 0 {
		return absent, false
	}

	return heap.Pop((*order)(q)).(int), true
}

// DecreaseKey restores heap order after the caller lowered keys[v]. The
// identity sifts up while its key is strictly smaller than its parent's.
//
// Identities outside the queue are ignored. Calling DecreaseKey after raising
// or not changing a key is a caller error; the resulting order is unspecified.
// Complexity: O(log n).
func (q *Queue) DecreaseKey(v int) {
	if !q.Contains(v) {
		return
	}
	o := (*order)(q)
	i := q.pos[v]
	for i > 0 {
		p := (i - 1) / 2
		if !o.Less(i, p) {
			break
		}
		o.Swap(i, p)
		i = p
	}
}

// order adapts Queue to heap.Interface. Swap keeps pos in step with heap.
type order Queue

func (o *order) Len() int { return len(o.heap) }

func (o *order) Less(i, j int) bool { return o.keys[o.heap[i]] < o.keys[o.heap[j]] }

func (o *order) Swap(i, j int) {
	o.heap[i], o.heap[j] = o.heap[j], o.heap[i]
	o.pos[o.heap[i]] = i
	o.pos[o.heap[j]] = j
}

// Push is never reached: the universe is fixed at construction.
func (o *order) Push(x any) { panic("ipq: push outside construction") }

// Pop detaches the last slot, which heap.Pop has already filled with the minimum.
func (o *order) Pop() any {
	n := len(o.heap) - 1
	v := o.heap[n]
	o.heap = o.heap[:n]
	o.pos[v] = absent

	return v
}
