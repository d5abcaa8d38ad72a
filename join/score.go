package join

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrUnsupportedScoreMode is returned for a ScoreMode outside None, Total, Avg and Max.
	ErrUnsupportedScoreMode = errors.New("unsupported score mode")

	// ErrEmptyScore is returned when an accumulator without contributions is
	// scored with a mode other than None.
	ErrEmptyScore = errors.New("score has no contributions")

	// ErrInvalidArgument is returned for invalid arguments (e.g. n <= 0).
	ErrInvalidArgument = errors.New("invalid argument")
)

// ScoreMode selects how the scores joined to one document are combined.
type ScoreMode int

const (
	// None scores every joined document 1.
	None ScoreMode = iota
	// Total sums the joined scores.
	Total
	// Avg averages the joined scores.
	Avg
	// Max takes the highest joined score.
	Max
)

// String returns the name of the mode.
func (m ScoreMode) String() string {
	switch m {
	case None:
		return "None"
	case Total:
		return "Total"
	case Avg:
		return "Avg"
	case Max:
		return "Max"
	default:
		return fmt.Sprintf("ScoreMode(%d)", int(m))
	}
}

// ParseScoreMode parses a mode name case-insensitively.
func ParseScoreMode(s string) (ScoreMode, error) {
	switch strings.ToLower(s) {
	case "none":
		return None, nil
	case "total":
		return Total, nil
	case "avg":
		return Avg, nil
	case "max":
		return Max, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedScoreMode, s)
	}
}

// Score accumulates the scores contributed to one join value.
// The zero value is not valid; use NewScore.
type Score struct {
	sum   float32
	count int
	max   float32
}

// NewScore returns an empty accumulator.
func NewScore() *Score {
	return &Score{max: float32(math.Inf(-1))}
}

// AddScore records one contribution.
func (s *Score) AddScore(score float32) {
	s.sum += score
	s.count++
	if score > s.max {
		s.max = score
	}
}

// Merge adds the contributions of other.
func (s *Score) Merge(other *Score) {
	s.sum += other.sum
	s.count += other.count
	if other.max > s.max {
		s.max = other.max
	}
}

// Score combines the contributions according to mode.
// Only None can be computed before the first contribution.
func (s *Score) Score(mode ScoreMode) (float32, error) {
	if s.count == 0 && mode != None {
		if mode < None || mode > Max {
			return 0, fmt.Errorf("%w: %s", ErrUnsupportedScoreMode, mode)
		}
		return 0, fmt.Errorf("%w: %s", ErrEmptyScore, mode)
	}
	switch mode {
	case None:
		return 1, nil
	case Total:
		return s.sum, nil
	case Avg:
		return s.sum / float32(s.count), nil
	case Max:
		return s.max, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedScoreMode, mode)
	}
}

// Count returns the number of contributions.
func (s *Score) Count() int { return s.count }

// Sum returns the sum of the contributions.
func (s *Score) Sum() float32 { return s.sum }

// Max returns the highest contribution.
func (s *Score) Max() float32 { return s.max }
