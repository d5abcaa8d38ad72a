package blockjoin

import (
	"errors"
	"fmt"

	"github.com/hupe1980/blockjoin/bitset"
	"github.com/hupe1980/blockjoin/join"
	"github.com/hupe1980/blockjoin/segment"
	"github.com/hupe1980/blockjoin/sorter"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrConfiguration is returned when a segment's parent set is missing or
	// cannot be used for block sorting.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidArgument is returned for invalid sorts, score modes and arguments.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFieldNotFound is returned when a sort field is missing from a segment.
	ErrFieldNotFound = errors.New("field not found")

	// ErrUnsupported is returned for operations the block order cannot provide,
	// such as deep paging. It is errors.ErrUnsupported.
	ErrUnsupported = errors.ErrUnsupported
)

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Already unified.
	if errors.Is(err, ErrInvalidK) || errors.Is(err, ErrConfiguration) || errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrFieldNotFound) {
		return err
	}

	if errors.Is(err, sorter.ErrConfiguration) {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if errors.Is(err, segment.ErrFieldNotFound) {
		return fmt.Errorf("%w: %w", ErrFieldNotFound, err)
	}
	if errors.Is(err, sorter.ErrInvalidArgument) ||
		errors.Is(err, bitset.ErrInvalidArgument) ||
		errors.Is(err, join.ErrInvalidArgument) ||
		errors.Is(err, join.ErrUnsupportedScoreMode) ||
		errors.Is(err, join.ErrEmptyScore) ||
		errors.Is(err, segment.ErrLengthMismatch) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return err
}
