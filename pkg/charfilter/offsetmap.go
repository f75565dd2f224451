package charfilter

import "sort"

// AddOffsetDiff appends an offset/diff event, coalescing with the
// previous event when it shares the same offset (the new diff simply
// overwrites the old one at that position).
func AddOffsetDiff(offsets []int, diffs []int64, offset int, diff int64) ([]int, []int64) {
	if n := len(offsets); n > 0 && offsets[n-1] == offset {
		diffs[n-1] = diff
		return offsets, diffs
	}
	return append(offsets, offset), append(diffs, diff)
}

// CorrectOffset maps a position in filtered output text back to the
// corresponding position in the text that was fed into the filter. It is
// the inverse of whatever length-changing transform produced offsets and
// diffs: it finds the greatest offsets[k] <= pos (0 if none qualify) and
// returns pos + diffs[k].
func CorrectOffset(pos int, offsets []int, diffs []int64, outputLen int) int {
	if len(offsets) == 0 {
		return pos
	}
	if pos == outputLen {
		return pos + diffs[len(diffs)-1]
	}
	// sort.Search finds the first index where offsets[i] > pos; the
	// entry we want is the one just before it.
	i := sort.Search(len(offsets), func(i int) bool { return offsets[i] > pos })
	if i == 0 {
		return pos
	}
	return pos + diffs[i-1]
}
