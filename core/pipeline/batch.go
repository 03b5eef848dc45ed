package pipeline

import "math"

// DefaultMaxBatch is the largest batch a pipeline accepts unless configured otherwise.
const DefaultMaxBatch = 100

// Fits reports whether the range start..start+count-1 is non-empty and stays within int64.
func Fits(start int64, count int) bool {
	return count >= 1 && start <= math.MaxInt64-int64(count)+1
}

// Expand returns the contiguous identifier range start, start+1, ..., start+count-1.
// A count below one or a range past math.MaxInt64 yields nil.
func Expand(start int64, count int) []int64 {
	if !Fits(start, count) {
		return nil
	}
	ids := make([]int64, count)
	for i := range ids {
		ids[i] = start + int64(i)
	}
	return ids
}
