package blockjoin

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hupe1980/blockjoin/join"
	"github.com/hupe1980/blockjoin/segment"
	"github.com/hupe1980/blockjoin/sorter"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"configuration", fmt.Errorf("segment 1: %w", sorter.ErrConfiguration), ErrConfiguration},
		{"missing field", fmt.Errorf("parent sort: %w", segment.ErrFieldNotFound), ErrFieldNotFound},
		{"invalid sort", sorter.ErrInvalidArgument, ErrInvalidArgument},
		{"score mode", join.ErrUnsupportedScoreMode, ErrInvalidArgument},
		{"deep paging", sorter.ErrDeepPaging, ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.in)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.in, "the cause stays reachable")
		})
	}

	assert.NoError(t, translateError(nil))
	assert.Same(t, context.Canceled, translateError(context.Canceled))

	k := fmt.Errorf("%w: got 0", ErrInvalidK)
	assert.Same(t, k, translateError(k))
	assert.True(t, errors.Is(translateError(sorter.ErrSortValue), errors.ErrUnsupported))
}
