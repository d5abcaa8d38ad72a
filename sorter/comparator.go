package sorter

import "github.com/hupe1980/blockjoin/segment"

// FieldComparator holds the slot values of one sort field for one search.
type FieldComparator interface {
	// Bind returns a handle comparing documents of seg.
	// Any earlier handle must not be used after rebinding.
	Bind(seg segment.Segment) (LeafFieldComparator, error)
}

// LeafFieldComparator is a FieldComparator bound to one segment.
type LeafFieldComparator interface {
	// Copy stores the value of doc into slot.
	Copy(slot, doc int)
	// SetBottom marks slot as the current threshold.
	SetBottom(slot int)
	// CompareBottom compares the threshold against doc.
	// It is negative when the threshold sorts first.
	CompareBottom(doc int) int
	// Compare compares the values stored in two slots.
	Compare(slot1, slot2 int) int
}

// FieldComparatorSource creates comparators for custom sort fields.
type FieldComparatorSource interface {
	NewComparator(field string, numHits int) (FieldComparator, error)
}

// multiComparator compares field by field in priority order.
type multiComparator struct {
	comparators []FieldComparator
	muls        []int
}

func newMultiComparator(s Sort, numHits int) (*multiComparator, error) {
	if len(s) == 0 {
		s = DocSort()
	}
	m := &multiComparator{
		comparators: make([]FieldComparator, len(s)),
		muls:        make([]int, len(s)),
	}
	for i, f := range s {
		c, err := f.Comparator(numHits)
		if err != nil {
			return nil, err
		}
		m.comparators[i] = c
		m.muls[i] = f.reverseMul()
	}
	return m, nil
}

func (m *multiComparator) Bind(seg segment.Segment) (*multiLeaf, error) {
	leaves := make([]LeafFieldComparator, len(m.comparators))
	for i, c := range m.comparators {
		leaf, err := c.Bind(seg)
		if err != nil {
			return nil, err
		}
		leaves[i] = leaf
	}
	return &multiLeaf{leaves: leaves, muls: m.muls}, nil
}

type multiLeaf struct {
	leaves []LeafFieldComparator
	muls   []int
}

// Compile time check to ensure multiLeaf satisfies LeafFieldComparator.
var _ LeafFieldComparator = (*multiLeaf)(nil)

func (l *multiLeaf) Copy(slot, doc int) {
	for _, leaf := range l.leaves {
		leaf.Copy(slot, doc)
	}
}

func (l *multiLeaf) SetBottom(slot int) {
	for _, leaf := range l.leaves {
		leaf.SetBottom(slot)
	}
}

func (l *multiLeaf) CompareBottom(doc int) int {
	for i, leaf := range l.leaves {
		if c := l.muls[i] * leaf.CompareBottom(doc); c != 0 {
			return c
		}
	}
	return 0
}

func (l *multiLeaf) Compare(slot1, slot2 int) int {
	for i, leaf := range l.leaves {
		if c := l.muls[i] * leaf.Compare(slot1, slot2); c != 0 {
			return c
		}
	}
	return 0
}

// compareDocs compares two documents of the bound segment through scratch slot 0.
// No ordinal tie-break is applied.
func (l *multiLeaf) compareDocs(doc1, doc2 int) int {
	for i, leaf := range l.leaves {
		leaf.Copy(0, doc1)
		leaf.SetBottom(0)
		if c := l.muls[i] * leaf.CompareBottom(doc2); c != 0 {
			return c
		}
	}
	return 0
}
