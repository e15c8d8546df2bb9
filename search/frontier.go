package search

import "container/heap"

// entry is one frontier slot. priority and seq are fixed at insertion, so a
// later change to a node's best-known cost never reorders the heap; stale
// entries are dropped by the caller's visited check when popped.
type entry struct {
	node     int
	cost     int // accumulated weight when pushed
	priority int // cost + heuristic when pushed
	seq      uint64
}

// entries is the container/heap backing store.
type entries []entry

func (h entries) Len() int { return len(h) }

// Less orders by priority, then by insertion order, so equal-priority
// nodes come out in discovery order.
func (h entries) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h entries) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entries) Push(x any) { *h = append(*h, x.(entry)) }

func (h *entries) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// Frontier is a min-priority queue of grid nodes with lazy deletion: a node
// may be pushed several times and every copy keeps the priority it was
// pushed with.
type Frontier struct {
	h   entries
	seq uint64
}

// NewFrontier returns an empty frontier with room for capacity entries.
func NewFrontier(capacity int) *Frontier {
	return &Frontier{h: make(entries, 0, capacity)}
}

// Push inserts node with its accumulated cost and priority.
func (f *Frontier) Push(node, cost, priority int) {
	heap.Push(&f.h, entry{node: node, cost: cost, priority: priority, seq: f.seq})
	f.seq++
}

// Pop removes the lowest-priority entry and returns its node and the cost it
// was pushed with. ok is false when the frontier is empty.
func (f *Frontier) Pop() (node, cost int, ok bool) {
	if len(f.h) == 0 {
		return -1, 0, false
	}
	e := heap.Pop(&f.h).(entry)
	return e.node, e.cost, true
}

// Len returns the number of entries, stale ones included.
func (f *Frontier) Len() int { return len(f.h) }
