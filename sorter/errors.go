package sorter

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned when a segment's parent set is missing or malformed.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidArgument is returned for invalid sort definitions or arguments (e.g. k <= 0).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDeepPaging is returned when resuming a search after a previous value is attempted.
	// The block join order depends on the document itself, not on a value.
	ErrDeepPaging = fmt.Errorf("%w: block join comparator cannot be used with deep paging", errors.ErrUnsupported)

	// ErrSortValue is returned when a slot's composite sort value is requested.
	ErrSortValue = fmt.Errorf("%w: filling sort field values is not yet supported", errors.ErrUnsupported)
)
