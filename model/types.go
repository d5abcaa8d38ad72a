package model

import (
	"fmt"
)

// SegmentID is the unique identifier for a segment.
type SegmentID uint64

// Hit is a document ordinal paired with its score.
type Hit struct {
	Doc   int
	Score float32
}

// String returns a string representation of the Hit.
func (h Hit) String() string {
	return fmt.Sprintf("Hit(%d, %g)", h.Doc, h.Score)
}
