package water

import (
	"errors"
	"fmt"
)

var (
	// ErrSpanInverted is returned when a span ends before it starts.
	ErrSpanInverted = errors.New("water: span end before start")

	// ErrSpanTooNarrow is returned when a span is less than three units wide.
	ErrSpanTooNarrow = errors.New("water: span narrower than 3 units")
)

// Span is a contiguous portion of an elevation map, bounds included.
// A valid Span is at least three units wide, the narrowest portion able to
// hold water.
type Span struct {
	Start int
	End   int
}

// NewSpan returns the span [start, end] or an error if it is inverted or
// too narrow to hold water.
func NewSpan(start, end int) (Span, error) {
	if end < start {
		return Span{}, fmt.Errorf("%w (%d->%d)", ErrSpanInverted, start, end)
	}
	if end-start < minBasinWidth-1 {
		return Span{}, fmt.Errorf("%w (%d->%d)", ErrSpanTooNarrow, start, end)
	}
	return Span{Start: start, End: end}, nil
}

// Width returns the number of positions covered by the span.
func (s Span) Width() int {
	return s.End - s.Start + 1
}

// String implements fmt.Stringer.
func (s Span) String() string {
	return fmt.Sprintf("%d->%d", s.Start, s.End)
}

// UsableSpan returns the part of heights that can hold water: the rising
// left edge and the falling right edge are trimmed since rain runs off them.
// It reports false when nothing three units wide remains, as for flat,
// monotonic or single-mountain maps.
func UsableSpan(heights []int) (Span, bool) {
	start := -1
	for i := 0; i < len(heights)-1; i++ {
		if clamp(heights[i]) > clamp(heights[i+1]) {
			start = i
			break
		}
	}
	if start < 0 {
		return Span{}, false
	}

	end := -1
	for i := len(heights) - 1; i > 0; i-- {
		if clamp(heights[i-1]) < clamp(heights[i]) {
			end = i
			break
		}
	}
	if end < 0 {
		return Span{}, false
	}

	span, err := NewSpan(start, end)
	if err != nil {
		return Span{}, false
	}
	return span, true
}
