package vision

// Resolve turns a raw per-class score vector into the single predicted
// class index. The scan replaces the best index only on a strictly
// greater score, so ties resolve to the lowest index.
func Resolve(scores []int8) int {
	best := 0
	for i := range scores {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return best
}
