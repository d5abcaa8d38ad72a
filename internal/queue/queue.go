// Package queue implements a value-based binary heap used for bounded top-K selection.
package queue

// PriorityQueue is a binary heap ordered by a less function.
// The top is the element for which less reports true against every other element.
// It does NOT implement container/heap to avoid interface overhead.
type PriorityQueue[T any] struct {
	less  func(a, b T) bool
	items []T // Value-based storage
}

// New creates a priority queue ordered by less.
func New[T any](capacity int, less func(a, b T) bool) *PriorityQueue[T] {
	return &PriorityQueue[T]{
		less:  less,
		items: make([]T, 0, capacity),
	}
}

// Len returns the number of elements in the heap.
func (pq *PriorityQueue[T]) Len() int { return len(pq.items) }

// Reset clears the priority queue for reuse.
func (pq *PriorityQueue[T]) Reset() {
	clear(pq.items)
	pq.items = pq.items[:0]
}

// TopItem returns the top element of the heap.
func (pq *PriorityQueue[T]) TopItem() (T, bool) {
	if len(pq.items) == 0 {
		var zero T
		return zero, false
	}
	return pq.items[0], true
}

// PushItem inserts an item while maintaining the heap invariant.
func (pq *PriorityQueue[T]) PushItem(item T) {
	pq.items = append(pq.items, item)
	pq.siftUp(len(pq.items) - 1)
}

// PushItemBounded inserts an item into a heap holding at most capacity items.
// When full, the item replaces the top only if the top sorts before it.
// Reports whether the item was kept.
func (pq *PriorityQueue[T]) PushItemBounded(item T, capacity int) bool {
	if len(pq.items) < capacity {
		pq.PushItem(item)
		return true
	}
	if len(pq.items) == 0 || !pq.less(pq.items[0], item) {
		return false
	}
	pq.items[0] = item
	pq.siftDown(0)
	return true
}

// UpdateTop restores the heap invariant after the top element was changed in place.
func (pq *PriorityQueue[T]) UpdateTop(item T) {
	if len(pq.items) == 0 {
		return
	}
	pq.items[0] = item
	pq.siftDown(0)
}

// PopItem removes and returns the top element while maintaining the heap invariant.
func (pq *PriorityQueue[T]) PopItem() (T, bool) {
	n := len(pq.items)
	if n == 0 {
		var zero T
		return zero, false
	}
	root := pq.items[0]
	last := pq.items[n-1]
	var zero T
	pq.items[n-1] = zero
	pq.items = pq.items[:n-1]
	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}
	return root, true
}

// Drain pops every element and returns them in reverse pop order,
// i.e. the element that would be popped last comes first.
func (pq *PriorityQueue[T]) Drain() []T {
	out := make([]T, len(pq.items))
	for i := len(out) - 1; i >= 0; i-- {
		out[i], _ = pq.PopItem()
	}
	return out
}

func (pq *PriorityQueue[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.less(pq.items[i], pq.items[p]) {
			return
		}
		pq.items[i], pq.items[p] = pq.items[p], pq.items[i]
		i = p
	}
}

func (pq *PriorityQueue[T]) siftDown(i int) {
	n := len(pq.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		r := l + 1
		if r < n && pq.less(pq.items[r], pq.items[l]) {
			best = r
		}
		if !pq.less(pq.items[best], pq.items[i]) {
			return
		}
		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}
