package charfilter

import "testing"

func TestAddOffsetDiffCoalesces(t *testing.T) {
	var offsets []int
	var diffs []int64

	offsets, diffs = AddOffsetDiff(offsets, diffs, 5, 2)
	offsets, diffs = AddOffsetDiff(offsets, diffs, 5, 3)

	if len(offsets) != 1 || offsets[0] != 5 {
		t.Fatalf("expected one coalesced offset at 5, got %v", offsets)
	}
	if diffs[0] != 3 {
		t.Fatalf("expected the later diff (3) to win, got %d", diffs[0])
	}
}

func TestAddOffsetDiffAppendsDistinct(t *testing.T) {
	var offsets []int
	var diffs []int64

	offsets, diffs = AddOffsetDiff(offsets, diffs, 1, 1)
	offsets, diffs = AddOffsetDiff(offsets, diffs, 4, 2)

	if len(offsets) != 2 || offsets[0] != 1 || offsets[1] != 4 {
		t.Fatalf("expected [1 4], got %v", offsets)
	}
	if diffs[0] != 1 || diffs[1] != 2 {
		t.Fatalf("expected [1 2], got %v", diffs)
	}
}

func TestCorrectOffsetNoEntries(t *testing.T) {
	if got := CorrectOffset(7, nil, nil, 10); got != 7 {
		t.Fatalf("expected identity mapping with no offset-map entries, got %d", got)
	}
}

func TestCorrectOffsetBeforeFirstEntry(t *testing.T) {
	offsets := []int{5}
	diffs := []int64{2}
	if got := CorrectOffset(3, offsets, diffs, 20); got != 3 {
		t.Fatalf("position before the first entry should be unaffected, got %d", got)
	}
}

func TestCorrectOffsetAtOutputLen(t *testing.T) {
	// 12-byte match replaced with 7 bytes: diff=5.
	offsets := []int{7}
	diffs := []int64{5}
	if got := CorrectOffset(7, offsets, diffs, 7); got != 12 {
		t.Fatalf("expected 12 (7+5) at outputLen, got %d", got)
	}
}

func TestCorrectOffsetMidRange(t *testing.T) {
	offsets := []int{2, 4}
	diffs := []int64{4, 8}
	if got := CorrectOffset(3, offsets, diffs, 10); got != 7 {
		t.Fatalf("expected 7 (3+4), got %d", got)
	}
	if got := CorrectOffset(5, offsets, diffs, 10); got != 13 {
		t.Fatalf("expected 13 (5+8), got %d", got)
	}
}
