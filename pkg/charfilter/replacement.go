package charfilter

// emitReplacementOffsets records the offset-map events produced by
// substituting the byte range [matchStart, matchStart+matchLen) with a
// replacement of length replacementLen, given the cumulative diff
// carried over from prior matches (the last entry of diffs, or 0).
//
// This is the one routine shared verbatim by the mapping and regex
// filters: both are "find byte ranges, substitute text" transforms and
// must emit identical offset-map events for identical diffLen outcomes.
func emitReplacementOffsets(offsets []int, diffs []int64, matchStart, matchLen, replacementLen int) ([]int, []int64) {
	diffLen := int64(matchLen) - int64(replacementLen)
	if diffLen == 0 {
		return offsets, diffs
	}

	prevDiff := int64(0)
	if n := len(diffs); n > 0 {
		prevDiff = diffs[n-1]
	}
	inputOffset := matchStart + matchLen

	if diffLen > 0 {
		// Replacement is shorter than the match: one event at the
		// trailing edge of the replacement in output coordinates.
		offset := int(int64(inputOffset) - diffLen - prevDiff)
		diff := prevDiff + diffLen
		return AddOffsetDiff(offsets, diffs, offset, diff)
	}

	// Replacement is longer than the match: one event per inserted
	// byte, each mapping that byte back to the same source position.
	outputStart := int(int64(inputOffset) - prevDiff)
	n := int(-diffLen)
	for i := 0; i < n; i++ {
		offset := outputStart + i
		diff := prevDiff - int64(i) - 1
		offsets, diffs = AddOffsetDiff(offsets, diffs, offset, diff)
	}
	return offsets, diffs
}
