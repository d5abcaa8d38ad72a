package blockjoin

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/blockjoin/segment"
	"github.com/hupe1980/blockjoin/sorter"
	"golang.org/x/sync/errgroup"
)

// blockField is the name under which the block order appears in a sort.
const blockField = "<block>"

// Sorter orders the documents of segments in block-join order.
// It is safe for concurrent use; every call creates its own comparator.
type Sorter struct {
	source *sorter.BlockJoinComparatorSource
	sort   sorter.Sort
	opts   options
}

// New creates a Sorter for the blocks marked by parents.
func New(parents sorter.ParentsFilter, optFns ...Option) (*Sorter, error) {
	if parents == nil {
		return nil, fmt.Errorf("%w: parents filter is required", ErrConfiguration)
	}
	opts := applyOptions(optFns)

	if opts.parentsCacheSize < 0 {
		return nil, fmt.Errorf("%w: negative parents cache size %d", ErrInvalidArgument, opts.parentsCacheSize)
	}
	if opts.parentsCacheSize > 0 {
		cached, err := sorter.NewCachingParentsFilter(parents, opts.parentsCacheSize)
		if err != nil {
			return nil, translateError(err)
		}
		parents = cached
	}

	source := sorter.NewBlockJoinComparatorSource(parents, opts.parentSort, opts.childSort)
	return &Sorter{
		source: source,
		sort:   sorter.Sort{sorter.CustomField(blockField, source, false)},
		opts:   opts,
	}, nil
}

// Source returns the comparator source, for use as one field of a larger sort.
func (s *Sorter) Source() *sorter.BlockJoinComparatorSource {
	return s.source
}

// Sort returns the sort consisting of the block order alone.
func (s *Sorter) Sort() sorter.Sort {
	return s.sort
}

// String returns a string representation of the Sorter.
func (s *Sorter) String() string {
	return s.source.String()
}

// SortSegment returns the documents of seg in block-join order.
func (s *Sorter) SortSegment(ctx context.Context, seg segment.Segment) (order []int, err error) {
	start := time.Now()
	defer func() {
		s.opts.metricsCollector.RecordSort(len(order), time.Since(start), err)
		s.opts.logger.WithSegment(seg.ID()).LogSort(ctx, seg.MaxDoc(), err)
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	release, err := s.opts.resources.AcquireSort(ctx, seg.MaxDoc(), seg.MaxDoc())
	if err != nil {
		return nil, err
	}
	defer release()

	order, err = sorter.SortSegment(seg, s.sort)
	if err != nil {
		return nil, translateError(err)
	}
	return order, nil
}

// SortSegments sorts every segment, in parallel up to the configured concurrency.
// The result at index i is the order of segs[i].
func (s *Sorter) SortSegments(ctx context.Context, segs []segment.Segment) ([][]int, error) {
	out := make([][]int, len(segs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.concurrency)
	for i, seg := range segs {
		g.Go(func() error {
			order, err := s.SortSegment(ctx, seg)
			if err != nil {
				return fmt.Errorf("segment %d: %w", seg.ID(), err)
			}
			out[i] = order
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// TopDocs returns the first k documents of seg in block-join order.
func (s *Sorter) TopDocs(ctx context.Context, seg segment.Segment, k int) (docs []int, err error) {
	start := time.Now()
	defer func() {
		s.opts.metricsCollector.RecordTopDocs(k, time.Since(start), err)
		s.opts.logger.WithSegment(seg.ID()).LogTopDocs(ctx, k, len(docs), err)
	}()

	if k <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	release, err := s.opts.resources.AcquireSort(ctx, min(k, seg.MaxDoc()), seg.MaxDoc())
	if err != nil {
		return nil, err
	}
	defer release()

	docs, err = sorter.TopDocs(seg, s.sort, k)
	if err != nil {
		return nil, translateError(err)
	}
	return docs, nil
}
