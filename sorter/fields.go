package sorter

import (
	"cmp"

	"github.com/hupe1980/blockjoin/segment"
)

// docComparator orders by document ordinal. It needs no segment data,
// so it is its own bound handle.
type docComparator struct {
	docs   []int
	bottom int
}

var (
	_ FieldComparator     = (*docComparator)(nil)
	_ LeafFieldComparator = (*docComparator)(nil)
)

func newDocComparator(numHits int) *docComparator {
	return &docComparator{docs: make([]int, numHits)}
}

func (c *docComparator) Bind(segment.Segment) (LeafFieldComparator, error) { return c, nil }

func (c *docComparator) Copy(slot, doc int) { c.docs[slot] = doc }

func (c *docComparator) SetBottom(slot int) { c.bottom = c.docs[slot] }

func (c *docComparator) CompareBottom(doc int) int { return cmp.Compare(c.bottom, doc) }

func (c *docComparator) Compare(slot1, slot2 int) int {
	return cmp.Compare(c.docs[slot1], c.docs[slot2])
}

type columnLoader[T any] func(seg segment.Segment, field string) (segment.Values[T], error)

// valueComparator orders by a typed per-document column.
type valueComparator[T cmp.Ordered] struct {
	field  string
	load   columnLoader[T]
	values []T
	bottom T
}

func newValueComparator[T cmp.Ordered](field string, numHits int, load columnLoader[T]) *valueComparator[T] {
	return &valueComparator[T]{
		field:  field,
		load:   load,
		values: make([]T, numHits),
	}
}

func (c *valueComparator[T]) Bind(seg segment.Segment) (LeafFieldComparator, error) {
	col, err := c.load(seg, c.field)
	if err != nil {
		return nil, err
	}
	return &valueLeaf[T]{c: c, col: col}, nil
}

type valueLeaf[T cmp.Ordered] struct {
	c   *valueComparator[T]
	col segment.Values[T]
}

func (l *valueLeaf[T]) Copy(slot, doc int) { l.c.values[slot] = l.col.Value(doc) }

func (l *valueLeaf[T]) SetBottom(slot int) { l.c.bottom = l.c.values[slot] }

func (l *valueLeaf[T]) CompareBottom(doc int) int { return cmp.Compare(l.c.bottom, l.col.Value(doc)) }

func (l *valueLeaf[T]) Compare(slot1, slot2 int) int {
	return cmp.Compare(l.c.values[slot1], l.c.values[slot2])
}
