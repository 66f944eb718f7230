// Package heights maps row indices to heights and scroll offsets back to
// row indices. Heights are abstract units: terminal rows, pixels, whatever
// the caller scrolls in.
package heights

import (
	"sort"

	csmap "github.com/mhmtszr/concurrent-swiss-map"
)

// Model provides per-row heights and offset lookup for a table.
// Implementations clamp rather than reject: a negative or oversized input
// yields the nearest valid answer.
type Model interface {
	// HeightOf returns the height of the row at index, always positive.
	HeightOf(index int) int
	// TotalHeight returns the summed height of rows [0, rowCount).
	TotalHeight(rowCount int) int
	// IndexAt returns the index of the row containing offset,
	// clamped to [0, rowCount-1].
	IndexAt(offset, rowCount int) int
}

// Fixed is a constant-height model with O(1) lookups.
type Fixed int

func (f Fixed) unit() int {
	if f < 1 {
		return 1
	}
	return int(f)
}

func (f Fixed) HeightOf(index int) int {
	return f.unit()
}

func (f Fixed) TotalHeight(rowCount int) int {
	if rowCount < 0 {
		return 0
	}
	return rowCount * f.unit()
}

func (f Fixed) IndexAt(offset, rowCount int) int {
	if rowCount < 1 || offset < 0 {
		return 0
	}

	idx := offset / f.unit()
	if idx > rowCount-1 {
		idx = rowCount - 1
	}
	return idx
}

// Func derives heights from a per-index callback, for content-dependent
// rows. Lookups walk the rows; wrap in an Index when the dataset is large.
type Func func(index int) int

func (fn Func) HeightOf(index int) int {
	h := fn(index)
	if h < 1 {
		return 1
	}
	return h
}

func (fn Func) TotalHeight(rowCount int) int {
	total := 0
	for i := 0; i < rowCount; i++ {
		total += fn.HeightOf(i)
	}
	return total
}

func (fn Func) IndexAt(offset, rowCount int) int {
	if rowCount < 1 {
		return 0
	}

	top := 0
	for i := 0; i < rowCount; i++ {
		top += fn.HeightOf(i)
		if offset < top {
			return i
		}
	}
	return rowCount - 1
}

// Index precomputes cumulative heights for a model over a fixed row count,
// turning IndexAt into a binary search. Rebuild after any height change.
type Index struct {
	cum []int // cum[i] is the summed height of rows [0, i)
}

// NewIndex builds a prefix-sum index over the first rowCount rows of model.
func NewIndex(model Model, rowCount int) *Index {
	if rowCount < 0 {
		rowCount = 0
	}

	cum := make([]int, rowCount+1)
	for i := 0; i < rowCount; i++ {
		cum[i+1] = cum[i] + model.HeightOf(i)
	}
	return &Index{cum: cum}
}

func (ix *Index) rows() int {
	return len(ix.cum) - 1
}

func (ix *Index) HeightOf(index int) int {
	if index < 0 || index >= ix.rows() {
		return 1
	}
	return ix.cum[index+1] - ix.cum[index]
}

func (ix *Index) TotalHeight(rowCount int) int {
	if rowCount < 0 {
		rowCount = 0
	}
	if rowCount > ix.rows() {
		rowCount = ix.rows()
	}
	return ix.cum[rowCount]
}

func (ix *Index) IndexAt(offset, rowCount int) int {
	if rowCount > ix.rows() {
		rowCount = ix.rows()
	}
	if rowCount < 1 || offset < 0 {
		return 0
	}

	// First row whose bottom edge is past the offset.
	idx := sort.Search(rowCount, func(i int) bool {
		return ix.cum[i+1] > offset
	})
	if idx > rowCount-1 {
		idx = rowCount - 1
	}
	return idx
}

// Measured estimates row heights until a measurement arrives, caching
// measurements by row key so they survive reordering and reloads.
type Measured struct {
	estimate int
	keyAt    func(index int) (string, bool)
	byKey    *csmap.CsMap[string, int]
}

// NewMeasured returns a Measured model. keyAt resolves an index to the row
// key of the current dataset snapshot; rows it cannot resolve fall back to
// the estimate.
func NewMeasured(estimate int, keyAt func(index int) (string, bool)) *Measured {
	if estimate < 1 {
		estimate = 1
	}

	return &Measured{
		estimate: estimate,
		keyAt:    keyAt,
		byKey:    csmap.Create[string, int](),
	}
}

// Record stores a measured height for a row key.
func (m *Measured) Record(key string, height int) {
	if height < 1 {
		height = 1
	}
	m.byKey.Store(key, height)
}

// Invalidate drops the measurement for a row key, e.g. after a content edit.
func (m *Measured) Invalidate(key string) {
	m.byKey.Delete(key)
}

func (m *Measured) HeightOf(index int) int {
	key, ok := m.keyAt(index)
	if !ok {
		return m.estimate
	}

	h, ok := m.byKey.Load(key)
	if !ok {
		return m.estimate
	}
	return h
}

func (m *Measured) TotalHeight(rowCount int) int {
	return Func(m.HeightOf).TotalHeight(rowCount)
}

func (m *Measured) IndexAt(offset, rowCount int) int {
	return Func(m.HeightOf).IndexAt(offset, rowCount)
}
