package window

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"tableau/heights"
)

func TestVisible(t *testing.T) {
	tests := []struct {
		name     string
		offset   int
		viewH    int
		model    heights.Model
		rowCount int
		overscan int
		want     Range
	}{
		{
			name:     "top of large dataset",
			offset:   0,
			viewH:    540,
			model:    heights.Fixed(54),
			rowCount: 10000,
			overscan: 5,
			want:     Range{Start: 0, End: 14},
		},
		{
			name:     "deep in large dataset",
			offset:   54000,
			viewH:    540,
			model:    heights.Fixed(54),
			rowCount: 10000,
			overscan: 5,
			want:     Range{Start: 995, End: 1014},
		},
		{
			name:     "end clamps to last row",
			offset:   539460, // top of row 9990
			viewH:    540,
			model:    heights.Fixed(54),
			rowCount: 10000,
			overscan: 5,
			want:     Range{Start: 9985, End: 9999},
		},
		{
			name:     "offset beyond total height pins to last row",
			offset:   999999,
			viewH:    540,
			model:    heights.Fixed(54),
			rowCount: 10,
			overscan: 2,
			want:     Range{Start: 7, End: 9},
		},
		{
			name:     "no rows renders nothing",
			offset:   0,
			viewH:    540,
			model:    heights.Fixed(54),
			rowCount: 0,
			overscan: 5,
			want:     None(),
		},
		{
			name:     "zero height container renders nothing",
			offset:   100,
			viewH:    0,
			model:    heights.Fixed(54),
			rowCount: 100,
			overscan: 5,
			want:     None(),
		},
		{
			name:     "negative offset clamps to top",
			offset:   -99,
			viewH:    10,
			model:    heights.Fixed(1),
			rowCount: 100,
			overscan: 0,
			want:     Range{Start: 0, End: 9},
		},
		{
			name:     "negative overscan treated as none",
			offset:   10,
			viewH:    10,
			model:    heights.Fixed(1),
			rowCount: 100,
			overscan: -3,
			want:     Range{Start: 10, End: 19},
		},
		{
			name:     "partial rows at both edges still covered",
			offset:   30,
			viewH:    100,
			model:    heights.Fixed(54),
			rowCount: 100,
			overscan: 0,
			want:     Range{Start: 0, End: 2},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Visible(test.offset, test.viewH, test.model, test.rowCount, test.overscan)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Visible() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVisibleDynamicHeights(t *testing.T) {

	// rows 0..9 have heights 10, 20, 30, ...
	model := heights.Func(func(i int) int { return (i + 1) * 10 })

	// offsets 0..59 land in rows 0..2, so a viewport of [35, 95) spans rows 2..3
	got := Visible(35, 60, model, 10, 1)
	want := Range{Start: 1, End: 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Visible() mismatch (-want +got):\n%s", diff)
	}

	// the prefix-sum index answers identically
	indexed := heights.NewIndex(model, 10)
	got = Visible(35, 60, indexed, 10, 1)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Visible() with index mismatch (-want +got):\n%s", diff)
	}
}

func TestVisibleIdempotent(t *testing.T) {

	model := heights.Fixed(54)

	first := Visible(1234, 540, model, 10000, 5)
	second := Visible(1234, 540, model, 10000, 5)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeat call diverged (-first +second):\n%s", diff)
	}
}

func TestVisibleMonotonic(t *testing.T) {

	model := heights.Fixed(54)

	prevStart := -1
	for offset := 0; offset <= 540000; offset += 17 {
		rng := Visible(offset, 540, model, 10000, 5)
		if rng.Start < prevStart {
			t.Fatalf("Visible(%d).Start = %d, below previous %d", offset, rng.Start, prevStart)
		}
		prevStart = rng.Start
	}
}

func TestVisibleSizeBounds(t *testing.T) {

	// the materialized run stays within visible + overscan on each side
	model := heights.Fixed(54)
	maxLen := 10 + 2*5 // ceil(540/54) plus overscan both sides

	for offset := 0; offset <= 540000; offset += 999 {
		rng := Visible(offset, 540, model, 10000, 5)

		if rng.Empty() {
			t.Fatalf("Visible(%d) unexpectedly empty", offset)
		}
		if rng.Len() > maxLen {
			t.Errorf("Visible(%d).Len() = %d, want <= %d", offset, rng.Len(), maxLen)
		}
		if rng.Start < 0 || rng.End > 9999 {
			t.Errorf("Visible(%d) = %+v, out of bounds", offset, rng)
		}
	}
}

func TestRangeHelpers(t *testing.T) {

	if !None().Empty() {
		t.Error("None() should be empty")
	}
	if None().Len() != 0 {
		t.Errorf("None().Len() = %d, want 0", None().Len())
	}

	rng := Range{Start: 3, End: 7}
	if rng.Len() != 5 {
		t.Errorf("Len() = %d, want 5", rng.Len())
	}
	if !rng.Contains(3) || !rng.Contains(7) {
		t.Error("Contains() should include both ends")
	}
	if rng.Contains(8) {
		t.Error("Contains(8) should be false")
	}
}
