package sorter

import (
	"fmt"

	"github.com/hupe1980/blockjoin/segment"
)

// BlockJoinComparatorSource creates comparators that sort parent/child blocks.
//
// Blocks are ordered by the parent sort with ties broken by parent ordinal.
// Children inside a block are ordered by the child sort and the parent is
// always the last document of its block.
type BlockJoinComparatorSource struct {
	parents    ParentsFilter
	parentSort Sort
	childSort  Sort
}

// Compile time check to ensure BlockJoinComparatorSource satisfies FieldComparatorSource.
var _ FieldComparatorSource = (*BlockJoinComparatorSource)(nil)

// NewBlockJoinComparatorSource creates a source for the given parents filter.
// An empty childSort keeps children in ordinal order.
func NewBlockJoinComparatorSource(parents ParentsFilter, parentSort, childSort Sort) *BlockJoinComparatorSource {
	if len(childSort) == 0 {
		childSort = DocSort()
	}
	return &BlockJoinComparatorSource{
		parents:    parents,
		parentSort: parentSort,
		childSort:  childSort,
	}
}

// NewComparator implements FieldComparatorSource. The field name is ignored.
func (s *BlockJoinComparatorSource) NewComparator(_ string, numHits int) (FieldComparator, error) {
	return s.NewBlockComparator(numHits)
}

// NewBlockComparator creates a comparator with numHits slots.
func (s *BlockJoinComparatorSource) NewBlockComparator(numHits int) (*BlockComparator, error) {
	if s.parents == nil {
		return nil, fmt.Errorf("%w: block join requires a parents filter", ErrInvalidArgument)
	}
	if numHits < 0 {
		return nil, fmt.Errorf("%w: negative numHits %d", ErrInvalidArgument, numHits)
	}
	parentChain, err := newMultiComparator(s.parentSort, 1)
	if err != nil {
		return nil, fmt.Errorf("parent sort: %w", err)
	}
	childChain, err := newMultiComparator(s.childSort, 1)
	if err != nil {
		return nil, fmt.Errorf("child sort: %w", err)
	}
	return &BlockComparator{
		filter:      s.parents,
		parentChain: parentChain,
		childChain:  childChain,
		childSlots:  make([]int, numHits),
		parentSlots: make([]int, numHits),
	}, nil
}

// ParentSort returns the sort applied between blocks.
func (s *BlockJoinComparatorSource) ParentSort() Sort { return s.parentSort }

// ChildSort returns the sort applied inside a block.
func (s *BlockJoinComparatorSource) ChildSort() Sort { return s.childSort }

func (s *BlockJoinComparatorSource) String() string {
	return fmt.Sprintf("blockJoin(parentSort=%s,childSort=%s)", s.parentSort, s.childSort)
}

// BlockComparator keeps, per slot, a document and the parent of its block.
// It is not safe for concurrent use.
type BlockComparator struct {
	filter      ParentsFilter
	parentChain *multiComparator
	childChain  *multiComparator

	childSlots   []int
	parentSlots  []int
	bottomChild  int
	bottomParent int
}

// Compile time check to ensure BlockComparator satisfies FieldComparator.
var _ FieldComparator = (*BlockComparator)(nil)

// Bind implements FieldComparator.
func (c *BlockComparator) Bind(seg segment.Segment) (LeafFieldComparator, error) {
	return c.BindBlock(seg)
}

// BindBlock resolves the parents of seg and binds both comparator chains to it.
func (c *BlockComparator) BindBlock(seg segment.Segment) (*BlockLeaf, error) {
	parents, err := c.filter.Parents(seg)
	if err != nil {
		return nil, fmt.Errorf("segment %d: %w", seg.ID(), err)
	}
	resolver, err := NewBlockResolver(parents, seg.MaxDoc())
	if err != nil {
		return nil, fmt.Errorf("segment %d: %w", seg.ID(), err)
	}
	parentLeaf, err := c.parentChain.Bind(seg)
	if err != nil {
		return nil, fmt.Errorf("parent sort: %w", err)
	}
	childLeaf, err := c.childChain.Bind(seg)
	if err != nil {
		return nil, fmt.Errorf("child sort: %w", err)
	}
	return &BlockLeaf{
		c:        c,
		resolver: resolver,
		parent:   parentLeaf,
		child:    childLeaf,
	}, nil
}

// BlockLeaf is a BlockComparator bound to one segment.
type BlockLeaf struct {
	c        *BlockComparator
	resolver *BlockResolver
	parent   *multiLeaf
	child    *multiLeaf
}

// Compile time check to ensure BlockLeaf satisfies LeafFieldComparator.
var _ LeafFieldComparator = (*BlockLeaf)(nil)

// Copy records doc and its parent in slot.
func (l *BlockLeaf) Copy(slot, doc int) {
	l.c.childSlots[slot] = doc
	l.c.parentSlots[slot] = l.resolver.Parent(doc)
}

// SetBottom marks slot as the threshold for CompareBottom.
func (l *BlockLeaf) SetBottom(slot int) {
	l.c.bottomChild = l.c.childSlots[slot]
	l.c.bottomParent = l.c.parentSlots[slot]
}

// CompareBottom compares the bottom entry against doc.
func (l *BlockLeaf) CompareBottom(doc int) int {
	return l.CompareDocs(l.c.bottomChild, l.c.bottomParent, doc, l.resolver.Parent(doc))
}

// Compare compares the entries stored in two slots.
func (l *BlockLeaf) Compare(slot1, slot2 int) int {
	return l.CompareDocs(l.c.childSlots[slot1], l.c.parentSlots[slot1], l.c.childSlots[slot2], l.c.parentSlots[slot2])
}

// CompareDocs compares two documents given the parents of their blocks.
func (l *BlockLeaf) CompareDocs(doc1, parent1, doc2, parent2 int) int {
	if parent1 == parent2 {
		if doc1 == parent1 || doc2 == parent2 {
			// parent stays last in its block
			return doc1 - doc2
		}
		return l.child.compareDocs(doc1, doc2)
	}
	if c := l.parent.compareDocs(parent1, parent2); c != 0 {
		return c
	}
	return parent1 - parent2
}

// Parent returns the parent of doc's block.
func (l *BlockLeaf) Parent(doc int) int {
	return l.resolver.Parent(doc)
}

// Value is not supported: a slot has no single sort value.
func (l *BlockLeaf) Value(int) (any, error) {
	return nil, ErrSortValue
}

// SetTopValue is not supported: resuming needs the document, not a value.
func (l *BlockLeaf) SetTopValue(any) error {
	return ErrDeepPaging
}

// CompareTop is not supported, see SetTopValue.
func (l *BlockLeaf) CompareTop(int) (int, error) {
	return 0, ErrDeepPaging
}
