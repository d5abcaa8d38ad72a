// Package blockjoin orders parent/child document blocks and scores documents
// across joins.
//
// A block is a contiguous run of child documents followed by their parent. The
// Sorter keeps every block contiguous with its parent last, orders blocks by a
// parent sort and orders children inside a block by a child sort.
//
// # Quick Start
//
//	seg := segment.NewMemory(1, 5)
//	_ = seg.SetString("type", "child", "parent", "child", "child", "parent")
//	_ = seg.SetInt64("price", 0, 10, 0, 0, 5)
//
//	s, _ := blockjoin.New(
//	    sorter.TermParents("type", "parent"),
//	    blockjoin.WithParentSort(sorter.Int64Field("price", false)),
//	    blockjoin.WithParentsCache(128),
//	)
//	order, _ := s.SortSegment(ctx, seg) // [2 3 4 0 1]
//
// Segments are sorted in parallel with SortSegments. TopDocs selects the first
// k documents without sorting the whole segment.
//
// # Join Scoring
//
// ScoreJoin aggregates scored matches per join value and combines them for
// every target document with a join.ScoreMode:
//
//	hits, _ := blockjoin.ScoreJoin(ctx, blockjoin.JoinRequest{
//	    Mode:    join.Avg,
//	    N:       10,
//	    Targets: targets,
//	    Sources: shards,
//	})
//
// # Packages
//
//   - bitset: word-packed fixed-size bit sets with roaring interop
//   - sorter: field comparators, parents filters and the block-join comparator
//   - join: score modes, per-join-value accumulators and parallel collection
//   - segment: the segment abstraction and an in-memory implementation
package blockjoin
