package segment

import (
	"errors"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/blockjoin/model"
)

var (
	// ErrFieldNotFound is returned when a segment has no column for a field.
	ErrFieldNotFound = errors.New("field not found")

	// ErrLengthMismatch is returned when a column does not cover every document.
	ErrLengthMismatch = errors.New("column length does not match segment size")
)

// Values is a read-only per-document column.
type Values[T any] interface {
	// Value returns the value of doc.
	Value(doc int) T
}

// Segment is one physical index segment.
type Segment interface {
	// ID returns the segment identifier.
	ID() model.SegmentID
	// MaxDoc returns the number of documents; ordinals are [0, MaxDoc).
	MaxDoc() int
	// Int64Values returns the int64 column of field.
	Int64Values(field string) (Values[int64], error)
	// Float64Values returns the float64 column of field.
	Float64Values(field string) (Values[float64], error)
	// StringValues returns the string column of field.
	StringValues(field string) (Values[string], error)
	// Postings returns the documents whose field equals term.
	Postings(field, term string) (*roaring.Bitmap, error)
}
