package segment

import (
	"fmt"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/blockjoin/model"
)

// Compile time check to ensure Memory satisfies Segment.
var _ Segment = (*Memory)(nil)

type column[T any] []T

func (c column[T]) Value(doc int) T { return c[doc] }

// Memory is a Segment held entirely in memory.
//
// Columns are set once while building the segment; after that the segment is
// read-only and safe for concurrent use.
type Memory struct {
	id     model.SegmentID
	maxDoc int

	ints    map[string]column[int64]
	floats  map[string]column[float64]
	strings map[string]column[string]

	mu       sync.Mutex
	postings map[string]map[string]*roaring.Bitmap
}

// NewMemory creates an empty in-memory segment of maxDoc documents.
func NewMemory(id model.SegmentID, maxDoc int) *Memory {
	return &Memory{
		id:       id,
		maxDoc:   maxDoc,
		ints:     make(map[string]column[int64]),
		floats:   make(map[string]column[float64]),
		strings:  make(map[string]column[string]),
		postings: make(map[string]map[string]*roaring.Bitmap),
	}
}

// ID implements Segment.
func (m *Memory) ID() model.SegmentID { return m.id }

// MaxDoc implements Segment.
func (m *Memory) MaxDoc() int { return m.maxDoc }

// SetInt64 sets the int64 column of field. values must have MaxDoc entries.
func (m *Memory) SetInt64(field string, values ...int64) error {
	if err := m.checkLen(field, len(values)); err != nil {
		return err
	}
	m.ints[field] = column[int64](values)
	return nil
}

// SetFloat64 sets the float64 column of field. values must have MaxDoc entries.
func (m *Memory) SetFloat64(field string, values ...float64) error {
	if err := m.checkLen(field, len(values)); err != nil {
		return err
	}
	m.floats[field] = column[float64](values)
	return nil
}

// SetString sets the string column of field. values must have MaxDoc entries.
func (m *Memory) SetString(field string, values ...string) error {
	if err := m.checkLen(field, len(values)); err != nil {
		return err
	}
	m.strings[field] = column[string](values)

	m.mu.Lock()
	delete(m.postings, field)
	m.mu.Unlock()
	return nil
}

// Int64Values implements Segment.
func (m *Memory) Int64Values(field string) (Values[int64], error) {
	c, ok := m.ints[field]
	if !ok {
		return nil, fmt.Errorf("%w: int64 field %q in segment %d", ErrFieldNotFound, field, m.id)
	}
	return c, nil
}

// Float64Values implements Segment.
func (m *Memory) Float64Values(field string) (Values[float64], error) {
	c, ok := m.floats[field]
	if !ok {
		return nil, fmt.Errorf("%w: float64 field %q in segment %d", ErrFieldNotFound, field, m.id)
	}
	return c, nil
}

// StringValues implements Segment.
func (m *Memory) StringValues(field string) (Values[string], error) {
	c, ok := m.strings[field]
	if !ok {
		return nil, fmt.Errorf("%w: string field %q in segment %d", ErrFieldNotFound, field, m.id)
	}
	return c, nil
}

// Postings implements Segment. Postings are built per field on first use from
// the field's string column. The returned bitmap must not be modified.
func (m *Memory) Postings(field, term string) (*roaring.Bitmap, error) {
	c, ok := m.strings[field]
	if !ok {
		return nil, fmt.Errorf("%w: string field %q in segment %d", ErrFieldNotFound, field, m.id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	terms, ok := m.postings[field]
	if !ok {
		terms = make(map[string]*roaring.Bitmap)
		for doc, v := range c {
			rb, ok := terms[v]
			if !ok {
				rb = roaring.New()
				terms[v] = rb
			}
			rb.Add(uint32(doc))
		}
		m.postings[field] = terms
	}

	if rb, ok := terms[term]; ok {
		return rb, nil
	}
	return roaring.New(), nil
}

func (m *Memory) checkLen(field string, n int) error {
	if n != m.maxDoc {
		return fmt.Errorf("%w: field %q has %d values, segment %d has %d documents", ErrLengthMismatch, field, n, m.id, m.maxDoc)
	}
	return nil
}
