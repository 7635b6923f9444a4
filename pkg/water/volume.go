package water

// minBasinWidth is the narrowest run of bars that can hold water: two walls
// and at least one position between them.
const minBasinWidth = 3

// Volume returns the total volume of water trapped by heights.
// It runs in O(n) time and O(1) additional space.
func Volume(heights []int) int {
	if len(heights) < minBasinWidth {
		return 0
	}
	peak := PeakIndex(heights)
	return pass(heights, 0, peak, nil) + pass(heights, len(heights)-1, peak, nil)
}

// PeakIndex returns the index of the highest bar, the first one on ties.
// It returns -1 for an empty map.
func PeakIndex(heights []int) int {
	if len(heights) == 0 {
		return -1
	}
	peak := 0
	for i := 1; i < len(heights); i++ {
		if clamp(heights[i]) > clamp(heights[peak]) {
			peak = i
		}
	}
	return peak
}

// pass scans from the boundary index from toward peak, peak excluded,
// summing the water held behind the running maximum. onBasin, if set, is
// called with the wall index, the closing index and the volume of every
// pool as it closes. The peak is at least as high as any running maximum
// so the last pool always closes on it.
func pass(heights []int, from, peak int, onBasin func(wall, end, volume int)) int {
	if from == peak {
		return 0
	}
	step := 1
	if from > peak {
		step = -1
	}

	wall, level := from, clamp(heights[from])
	total, pool := 0, 0
	for i := from + step; i != peak; i += step {
		h := clamp(heights[i])
		if h >= level {
			if pool > 0 && onBasin != nil {
				onBasin(wall, i, pool)
			}
			wall, level, pool = i, h, 0
			continue
		}
		pool += level - h
		total += level - h
	}
	if pool > 0 && onBasin != nil {
		onBasin(wall, peak, pool)
	}
	return total
}

// clamp maps negative heights to zero.
func clamp(h int) int {
	if h < 0 {
		return 0
	}
	return h
}
