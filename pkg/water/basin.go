package water

import "slices"

// Basin is a single pool of water held between two walls.
type Basin struct {
	// Walls are the indices of the bars bounding the pool.
	Walls Span
	// Volume is the amount of water in the pool.
	Volume int
}

// Basins lists every pool trapped by heights, ordered left to right.
// The volumes sum to Volume(heights).
func Basins(heights []int) []Basin {
	if len(heights) < minBasinWidth {
		return nil
	}
	peak := PeakIndex(heights)

	var left, right []Basin
	pass(heights, 0, peak, func(wall, end, volume int) {
		left = append(left, Basin{Walls: Span{Start: wall, End: end}, Volume: volume})
	})
	pass(heights, len(heights)-1, peak, func(wall, end, volume int) {
		right = append(right, Basin{Walls: Span{Start: end, End: wall}, Volume: volume})
	})

	// The right pass closes pools from the edge inward.
	slices.Reverse(right)
	return append(left, right...)
}
