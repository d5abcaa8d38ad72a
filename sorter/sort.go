package sorter

import (
	"fmt"
	"strings"

	"github.com/hupe1980/blockjoin/segment"
)

// FieldType selects the comparator used for a SortField.
type FieldType int

const (
	// FieldDoc sorts by document ordinal.
	FieldDoc FieldType = iota
	// FieldInt64 sorts by an int64 column.
	FieldInt64
	// FieldFloat64 sorts by a float64 column.
	FieldFloat64
	// FieldString sorts by a string column.
	FieldString
	// FieldCustom sorts with a FieldComparatorSource.
	FieldCustom
)

// String returns the name of the field type.
func (t FieldType) String() string {
	switch t {
	case FieldDoc:
		return "doc"
	case FieldInt64:
		return "int64"
	case FieldFloat64:
		return "float64"
	case FieldString:
		return "string"
	case FieldCustom:
		return "custom"
	default:
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
}

// SortField is one criterion of a Sort.
type SortField struct {
	Field   string
	Type    FieldType
	Reverse bool
	// Source creates the comparator of a FieldCustom field.
	Source FieldComparatorSource
}

// DocField sorts by ascending document ordinal.
func DocField() SortField {
	return SortField{Type: FieldDoc}
}

// Int64Field sorts by the int64 column of field.
func Int64Field(field string, reverse bool) SortField {
	return SortField{Field: field, Type: FieldInt64, Reverse: reverse}
}

// Float64Field sorts by the float64 column of field.
func Float64Field(field string, reverse bool) SortField {
	return SortField{Field: field, Type: FieldFloat64, Reverse: reverse}
}

// StringField sorts by the string column of field.
func StringField(field string, reverse bool) SortField {
	return SortField{Field: field, Type: FieldString, Reverse: reverse}
}

// CustomField sorts with comparators created by source.
func CustomField(field string, source FieldComparatorSource, reverse bool) SortField {
	return SortField{Field: field, Type: FieldCustom, Reverse: reverse, Source: source}
}

// Comparator creates a comparator with numHits slots for the field.
func (f SortField) Comparator(numHits int) (FieldComparator, error) {
	if numHits < 0 {
		return nil, fmt.Errorf("%w: negative numHits %d", ErrInvalidArgument, numHits)
	}
	switch f.Type {
	case FieldDoc:
		return newDocComparator(numHits), nil
	case FieldInt64:
		return newValueComparator[int64](f.Field, numHits, segment.Segment.Int64Values), nil
	case FieldFloat64:
		return newValueComparator[float64](f.Field, numHits, segment.Segment.Float64Values), nil
	case FieldString:
		return newValueComparator[string](f.Field, numHits, segment.Segment.StringValues), nil
	case FieldCustom:
		if f.Source == nil {
			return nil, fmt.Errorf("%w: custom sort field %q has no comparator source", ErrInvalidArgument, f.Field)
		}
		return f.Source.NewComparator(f.Field, numHits)
	default:
		return nil, fmt.Errorf("%w: unknown sort field type %s", ErrInvalidArgument, f.Type)
	}
}

func (f SortField) reverseMul() int {
	if f.Reverse {
		return -1
	}
	return 1
}

// String renders the field as <type: "name">, with a trailing ! when reversed.
func (f SortField) String() string {
	var sb strings.Builder
	switch f.Type {
	case FieldDoc:
		sb.WriteString("<doc>")
	case FieldCustom:
		fmt.Fprintf(&sb, "<custom: %q: %v>", f.Field, f.Source)
	default:
		fmt.Fprintf(&sb, "<%s: %q>", f.Type, f.Field)
	}
	if f.Reverse {
		sb.WriteByte('!')
	}
	return sb.String()
}

// Sort is an ordered list of sort fields, highest priority first.
type Sort []SortField

// DocSort sorts by ascending document ordinal.
func DocSort() Sort {
	return Sort{DocField()}
}

// String renders the fields separated by commas.
func (s Sort) String() string {
	parts := make([]string, len(s))
	for i, f := range s {
		parts[i] = f.String()
	}
	return strings.Join(parts, ",")
}
