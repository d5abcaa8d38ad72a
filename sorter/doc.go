// Package sorter orders the documents of a segment by a list of sort fields,
// including the block-join order used for parent/child document blocks.
//
// # Comparator Lifecycle
//
// A FieldComparator owns the per-slot values of one sort field for the
// lifetime of a search. Before comparing documents of a segment it must be
// bound to that segment:
//
//	comp, _ := field.Comparator(numHits)
//	leaf, _ := comp.Bind(seg)         // bound handle, valid for seg only
//	leaf.Copy(slot, doc)
//	leaf.SetBottom(slot)
//	leaf.CompareBottom(doc)
//	leaf.Compare(slot1, slot2)
//
// Slot values survive rebinding; segment data does not. A comparator and its
// leaves belong to a single goroutine.
//
// # Block Join Order
//
// A block is a contiguous run of child documents terminated by its parent
// document, which has the highest ordinal of the block. The parent set of a
// segment is a dense bitset.FixedBitSet produced by a ParentsFilter.
//
// BlockJoinComparatorSource orders blocks by the parent sort (ties broken by
// parent ordinal), orders children inside a block by the child sort, and always
// places the parent last in its block:
//
//	source := sorter.NewBlockJoinComparatorSource(
//	    sorter.Dense(sorter.TermParents("type", "parent")),
//	    sorter.Sort{sorter.Int64Field("price", false)},
//	    sorter.Sort{sorter.Int64Field("size", true)},
//	)
//	order, err := sorter.SortSegment(seg, sorter.Sort{sorter.CustomField("block", source, false)})
//
// The block comparator has no single sort value per slot, so Value,
// SetTopValue and CompareTop fail with errors.ErrUnsupported.
package sorter
