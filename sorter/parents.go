package sorter

import (
	"fmt"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hupe1980/blockjoin/bitset"
	"github.com/hupe1980/blockjoin/model"
	"github.com/hupe1980/blockjoin/segment"
	"golang.org/x/sync/singleflight"
)

// ParentsFilter produces the parent set of a segment.
//
// A nil set with a nil error means the segment contains no parents.
// Block sorting requires the set to be a dense *bitset.FixedBitSet.
type ParentsFilter interface {
	Parents(seg segment.Segment) (bitset.DocSet, error)
}

// ParentsFilterFunc adapts a function to a ParentsFilter.
type ParentsFilterFunc func(seg segment.Segment) (bitset.DocSet, error)

// Parents implements ParentsFilter.
func (f ParentsFilterFunc) Parents(seg segment.Segment) (bitset.DocSet, error) {
	return f(seg)
}

// StaticParents serves prebuilt parent sets by segment ID.
type StaticParents map[model.SegmentID]*bitset.FixedBitSet

// Parents implements ParentsFilter.
func (p StaticParents) Parents(seg segment.Segment) (bitset.DocSet, error) {
	set, ok := p[seg.ID()]
	if !ok || set == nil {
		return nil, nil
	}
	return set, nil
}

// TermParents marks as parents the documents whose field equals term.
// The result is a roaring-backed bitset.Sparse; wrap the filter with Dense
// (or NewCachingParentsFilter) before using it for block sorting.
func TermParents(field, term string) ParentsFilter {
	return ParentsFilterFunc(func(seg segment.Segment) (bitset.DocSet, error) {
		rb, err := seg.Postings(field, term)
		if err != nil {
			return nil, err
		}
		if rb == nil || rb.IsEmpty() {
			return nil, nil
		}
		return bitset.NewSparse(rb, seg.MaxDoc()), nil
	})
}

// Dense converts the sets produced by f into *bitset.FixedBitSet.
func Dense(f ParentsFilter) ParentsFilter {
	return ParentsFilterFunc(func(seg segment.Segment) (bitset.DocSet, error) {
		set, err := f.Parents(seg)
		if err != nil || set == nil {
			return nil, err
		}
		fixed, err := densify(set)
		if err != nil || fixed == nil {
			return nil, err
		}
		return fixed, nil
	})
}

func densify(set bitset.DocSet) (*bitset.FixedBitSet, error) {
	switch s := set.(type) {
	case *bitset.FixedBitSet:
		return s, nil
	case *bitset.Sparse:
		fixed, err := s.Dense()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		return fixed, nil
	default:
		fixed := bitset.New(set.Len())
		for i := range set.Len() {
			if set.Get(i) {
				fixed.Set(i)
			}
		}
		return fixed, nil
	}
}

// CachingParentsFilter caches the dense parent set of each segment.
//
// Cached sets are shared between callers and must be treated as read-only.
// Concurrent misses for the same segment compute the set once.
type CachingParentsFilter struct {
	filter ParentsFilter
	cache  *lru.Cache[model.SegmentID, *bitset.FixedBitSet]
	group  singleflight.Group
}

// Compile time check to ensure CachingParentsFilter satisfies ParentsFilter.
var _ ParentsFilter = (*CachingParentsFilter)(nil)

// NewCachingParentsFilter wraps f with an LRU cache holding up to size segments.
func NewCachingParentsFilter(f ParentsFilter, size int) (*CachingParentsFilter, error) {
	cache, err := lru.New[model.SegmentID, *bitset.FixedBitSet](size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return &CachingParentsFilter{
		filter: Dense(f),
		cache:  cache,
	}, nil
}

// Parents implements ParentsFilter.
func (c *CachingParentsFilter) Parents(seg segment.Segment) (bitset.DocSet, error) {
	id := seg.ID()
	if set, ok := c.cache.Get(id); ok {
		return set, nil
	}

	v, err, _ := c.group.Do(strconv.FormatUint(uint64(id), 10), func() (any, error) {
		if set, ok := c.cache.Get(id); ok {
			return set, nil
		}
		set, err := c.filter.Parents(seg)
		if err != nil || set == nil {
			return nil, err
		}
		fixed, _ := set.(*bitset.FixedBitSet)
		if fixed == nil {
			return nil, nil
		}
		c.cache.Add(id, fixed)
		return fixed, nil
	})
	if err != nil {
		return nil, err
	}
	fixed, _ := v.(*bitset.FixedBitSet)
	if fixed == nil {
		return nil, nil
	}
	return fixed, nil
}

// Len returns the number of cached segments.
func (c *CachingParentsFilter) Len() int {
	return c.cache.Len()
}

// Evict drops the cached set of a segment, e.g. after it was merged away.
func (c *CachingParentsFilter) Evict(id model.SegmentID) {
	c.cache.Remove(id)
}

// Purge drops every cached set.
func (c *CachingParentsFilter) Purge() {
	c.cache.Purge()
}
