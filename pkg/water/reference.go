package water

// ReferenceVolume computes the trapped volume position by position as
// min(highest to the left, highest to the right) - height. It shares no
// code path with Volume and serves as a cross-check; it uses O(n) space.
func ReferenceVolume(heights []int) int {
	n := len(heights)
	if n == 0 {
		return 0
	}

	leftMax := make([]int, n)
	rightMax := make([]int, n)
	for i := 0; i < n; i++ {
		leftMax[i] = clamp(heights[i])
		if i > 0 && leftMax[i-1] > leftMax[i] {
			leftMax[i] = leftMax[i-1]
		}
	}
	for i := n - 1; i >= 0; i-- {
		rightMax[i] = clamp(heights[i])
		if i < n-1 && rightMax[i+1] > rightMax[i] {
			rightMax[i] = rightMax[i+1]
		}
	}

	total := 0
	for i := 0; i < n; i++ {
		total += min(leftMax[i], rightMax[i]) - clamp(heights[i])
	}
	return total
}
