package sorter

import (
	"fmt"

	"github.com/hupe1980/blockjoin/bitset"
)

// BlockResolver maps a document to the parent terminating its block.
// It is read-only and may be shared between goroutines.
type BlockResolver struct {
	parents *bitset.FixedBitSet
	maxDoc  int
}

// NewBlockResolver validates parents for a segment of maxDoc documents.
//
// The set must be a dense *bitset.FixedBitSet covering every document, and the
// last document must be a parent so that every document has an enclosing block.
func NewBlockResolver(parents bitset.DocSet, maxDoc int) (*BlockResolver, error) {
	if parents == nil {
		return nil, fmt.Errorf("%w: segment contains no parents", ErrConfiguration)
	}
	fixed, ok := parents.(*bitset.FixedBitSet)
	if !ok {
		return nil, fmt.Errorf("%w: parents filter must produce a dense bit set; got %T", ErrConfiguration, parents)
	}
	if fixed == nil {
		return nil, fmt.Errorf("%w: segment contains no parents", ErrConfiguration)
	}
	if fixed.Len() < maxDoc {
		return nil, fmt.Errorf("%w: parent set covers %d documents, segment has %d", ErrConfiguration, fixed.Len(), maxDoc)
	}
	if maxDoc > 0 && !fixed.Get(maxDoc-1) {
		return nil, fmt.Errorf("%w: document %d has no enclosing parent", ErrConfiguration, maxDoc-1)
	}
	return &BlockResolver{parents: fixed, maxDoc: maxDoc}, nil
}

// Parent returns the ordinal of the parent terminating doc's block.
// A parent resolves to itself.
func (r *BlockResolver) Parent(doc int) int {
	parent := r.parents.NextSetBit(doc)
	if parent >= r.maxDoc {
		panic(fmt.Errorf("%w: document %d has no enclosing parent", ErrConfiguration, doc))
	}
	return parent
}

// IsParent reports whether doc terminates a block.
func (r *BlockResolver) IsParent(doc int) bool {
	return r.parents.Get(doc)
}

// MaxDoc returns the number of documents covered.
func (r *BlockResolver) MaxDoc() int {
	return r.maxDoc
}
