package blockjoin_test

import (
	"context"
	"fmt"
	"iter"
	"log"

	"github.com/hupe1980/blockjoin"
	"github.com/hupe1980/blockjoin/join"
	"github.com/hupe1980/blockjoin/segment"
	"github.com/hupe1980/blockjoin/sorter"
)

// Example_sortSegment demonstrates sorting parent/child blocks by a parent field.
func Example_sortSegment() {
	seg := segment.NewMemory(1, 7)
	_ = seg.SetString("type", "child", "child", "child", "parent", "child", "child", "parent")
	_ = seg.SetInt64("price", 0, 0, 0, 50, 0, 0, 20)
	_ = seg.SetInt64("size", 1, 3, 2, 0, 5, 4, 0)

	s, err := blockjoin.New(
		sorter.TermParents("type", "parent"),
		blockjoin.WithParentSort(sorter.Int64Field("price", false)), // Cheapest block first
		blockjoin.WithChildSort(sorter.Int64Field("size", true)),    // Largest child first
		blockjoin.WithParentsCache(16),
	)
	if err != nil {
		log.Fatal(err)
	}

	order, err := s.SortSegment(context.Background(), seg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(order)
	// Output: [4 5 6 1 2 0 3]
}

// Example_scoreJoin demonstrates combining joined scores with a score mode.
func Example_scoreJoin() {
	matches := func(ms ...join.Match) iter.Seq[join.Match] {
		return func(yield func(join.Match) bool) {
			for _, m := range ms {
				if !yield(m) {
					return
				}
			}
		}
	}

	hits, err := blockjoin.ScoreJoin(context.Background(), blockjoin.JoinRequest{
		Mode: join.Max,
		Targets: []blockjoin.JoinTarget{
			{Doc: 0, JoinValues: []string{"movie-1"}},
			{Doc: 1, JoinValues: []string{"movie-2"}},
		},
		Sources: []iter.Seq[join.Match]{
			matches(join.Match{JoinValue: "movie-1", Score: 0.5}, join.Match{JoinValue: "movie-2", Score: 0.9}),
			matches(join.Match{JoinValue: "movie-1", Score: 0.7}),
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, h := range hits {
		fmt.Println(h)
	}
	// Output:
	// Hit(1, 0.9)
	// Hit(0, 0.7)
}
