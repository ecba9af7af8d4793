package common

// ScrollDeltaForHeight calculates proportional scroll delta.
// Returns max(1, height/factor) to ensure minimum 1 line scroll.
func ScrollDeltaForHeight(height, factor int) int {
	delta := height / factor
	if delta < 1 {
		delta = 1
	}
	return delta
}

// ClampOffset keeps a scroll offset within [min, max]. When max < min the
// offset is pinned to min.
func ClampOffset(offset, min, max int) int {
	if max < min {
		return min
	}
	if offset < min {
		return min
	}
	if offset > max {
		return max
	}
	return offset
}
