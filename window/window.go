// Package window computes which contiguous run of rows must be materialized
// for a scroll position. Functions here are pure and cheap: they run on
// every scroll and resize event.
package window

import "tableau/heights"

// Range is an inclusive run of row indices. A range with End < Start is
// empty and renders nothing.
type Range struct {
	Start int
	End   int
}

// Empty reports whether the range holds no rows.
func (rng Range) Empty() bool {
	return rng.End < rng.Start
}

// Len returns the number of rows in the range.
func (rng Range) Len() int {
	if rng.Empty() {
		return 0
	}
	return rng.End - rng.Start + 1
}

// Contains reports whether index falls within the range.
func (rng Range) Contains(index int) bool {
	return index >= rng.Start && index <= rng.End
}

// None is the empty range.
func None() Range {
	return Range{Start: 0, End: -1}
}

// Visible returns the rows intersecting the viewport
// [offset, offset+viewHeight), widened by overscan rows on each side and
// clamped to [0, rowCount). An offset beyond the total height pins the
// range to the last row.
func Visible(offset, viewHeight int, model heights.Model, rowCount, overscan int) Range {

	if rowCount < 1 || viewHeight < 1 {
		return None()
	}
	if offset < 0 {
		offset = 0
	}
	if overscan < 0 {
		overscan = 0
	}

	first := model.IndexAt(offset, rowCount)
	last := model.IndexAt(offset+viewHeight-1, rowCount)

	start := first - overscan
	if start < 0 {
		start = 0
	}
	end := last + overscan
	if end > rowCount-1 {
		end = rowCount - 1
	}

	return Range{Start: start, End: end}
}
