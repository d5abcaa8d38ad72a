package sorter

import (
	"fmt"
	"slices"

	"github.com/hupe1980/blockjoin/internal/queue"
	"github.com/hupe1980/blockjoin/segment"
)

// SortSegment returns the documents of seg in sort order.
// Documents that compare equal keep their ordinal order.
func SortSegment(seg segment.Segment, s Sort) ([]int, error) {
	maxDoc := seg.MaxDoc()
	comp, err := newMultiComparator(s, maxDoc)
	if err != nil {
		return nil, err
	}
	leaf, err := comp.Bind(seg)
	if err != nil {
		return nil, err
	}

	order := make([]int, maxDoc)
	for doc := range order {
		order[doc] = doc
		leaf.Copy(doc, doc)
	}
	slices.SortFunc(order, func(a, b int) int {
		if c := leaf.Compare(a, b); c != 0 {
			return c
		}
		return a - b
	})
	return order, nil
}

// TopDocs returns the first k documents of seg in sort order.
// It keeps a bounded queue of k slots and only copies competitive documents.
func TopDocs(seg segment.Segment, s Sort, k int) ([]int, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", ErrInvalidArgument, k)
	}
	k = min(k, seg.MaxDoc())
	if k == 0 {
		return []int{}, nil
	}

	comp, err := newMultiComparator(s, k)
	if err != nil {
		return nil, err
	}
	leaf, err := comp.Bind(seg)
	if err != nil {
		return nil, err
	}

	type entry struct{ slot, doc int }
	// The top of the queue is the weakest entry.
	pq := queue.New(k, func(a, b entry) bool {
		if c := leaf.Compare(a.slot, b.slot); c != 0 {
			return c > 0
		}
		return a.doc > b.doc
	})

	for doc := range seg.MaxDoc() {
		if pq.Len() < k {
			slot := pq.Len()
			leaf.Copy(slot, doc)
			pq.PushItem(entry{slot: slot, doc: doc})
			if pq.Len() == k {
				top, _ := pq.TopItem()
				leaf.SetBottom(top.slot)
			}
			continue
		}
		// Later documents lose ties.
		if leaf.CompareBottom(doc) <= 0 {
			continue
		}
		top, _ := pq.TopItem()
		leaf.Copy(top.slot, doc)
		pq.UpdateTop(entry{slot: top.slot, doc: doc})
		top, _ = pq.TopItem()
		leaf.SetBottom(top.slot)
	}

	entries := pq.Drain()
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.doc
	}
	return out, nil
}
