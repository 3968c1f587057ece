// Package topk keeps a bounded collection of the K most prominent
// records, implemented as a min-heap on prom (with the ranking's
// tie-break) so eviction of the weakest record is O(log K).
package topk

import "container/heap"

// Record mirrors the core's prominence record. ColOK distinguishes an
// absent col (sea-level-bound) from a present one at (0,0).
type Record struct {
	Prom            int32
	PeakRow, PeakCol int
	PeakElev        int32
	ColOK           bool
	ColRow, ColCol  int
	ColElev         int32
}

// less reports whether a ranks strictly below b: smaller prom first,
// then smaller peakElev, then lexicographically *larger* (row, col) —
// i.e. the weakest record by the descending ranking (prom desc,
// peakElev desc, (row,col) asc) sorts first here, so the heap root is
// always the record to evict.
func less(a, b Record) bool {
	if a.Prom != b.Prom {
		return a.Prom < b.Prom
	}
	if a.PeakElev != b.PeakElev {
		return a.PeakElev < b.PeakElev
	}
	if a.PeakRow != b.PeakRow {
		return a.PeakRow > b.PeakRow
	}

	return a.PeakCol > b.PeakCol
}

type minHeap []Record

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return less(h[i], h[j]) }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(Record)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// Collector retains at most K records, evicting the weakest on overflow.
type Collector struct {
	k int
	h minHeap
}

// New builds a Collector bounded to k records. k <= 0 means "no records
// retained" (an empty result), matching an EmptyGrid run.
func New(k int) *Collector {
	return &Collector{k: k, h: make(minHeap, 0, max(k, 0))}
}

// Insert adds rec to the collector. If the collector is at capacity and
// rec ranks below the current weakest retained record, rec is dropped
// (not inserted then immediately evicted) and the collector is
// unchanged; otherwise rec is inserted and, if now over capacity, the
// weakest record is evicted. Complexity: O(log K).
func (c *Collector) Insert(rec Record) {
	if c.k <= 0 {
		return
	}
	if len(c.h) < c.k {
		heap.Push(&c.h, rec)

		return
	}
	if less(rec, c.h[0]) {
		return
	}
	heap.Pop(&c.h)
	heap.Push(&c.h, rec)
}

// Drain extracts every retained record in descending ranking order
// (prom desc, peakElev desc, (row,col) asc) and empties the collector.
func (c *Collector) Drain() []Record {
	out := make([]Record, len(c.h))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&c.h).(Record)
	}

	return out
}
