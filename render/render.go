// Package render projects records and column descriptors into row and
// header views. Everything here is a pure function of its arguments; the
// same inputs always produce the same view, whichever table path consumes
// it.
package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"tableau/entity"
)

// CheckState is the tri-state of the header select-all checkbox.
type CheckState int

const (
	CheckNone CheckState = iota
	CheckSome
	CheckAll
)

// Selection is the read side of a selection set.
type Selection interface {
	Enabled() bool
	IsSelected(key string) bool
	Count() int
}

// CellView is one rendered cell: content already projected, truncated, and
// padded for its column.
type CellView struct {
	Key     string
	Content string
	Align   entity.Align
}

// RowView is a renderable row. Missing marks a placeholder for a record
// that was not present at the expected index.
type RowView struct {
	Index    int
	Key      string
	Selected bool
	Missing  bool
	Cells    []CellView
}

// HeaderView is the renderable header row.
type HeaderView struct {
	SelectAll CheckState
	Cells     []CellView
}

// Row projects a record into a RowView. Columns are normalized first, so
// hidden columns, duplicate keys, and pinning behave the same on every
// path. A nil record yields a placeholder row rather than an error.
func Row(rec entity.Record, index int, columns []entity.Column, keyFn entity.KeyFn, sel Selection) RowView {

	columns = entity.NormalizeColumns(columns)

	if rec == nil {
		cells := make([]CellView, len(columns))
		for i, col := range columns {
			cells[i] = CellView{Key: col.Key, Content: fit("", col), Align: col.Align}
		}
		return RowView{Index: index, Missing: true, Cells: cells}
	}

	key := ""
	if keyFn != nil {
		key = keyFn(rec)
	}

	cells := make([]CellView, len(columns))
	for i, col := range columns {
		cells[i] = CellView{
			Key:     col.Key,
			Content: fit(cellContent(rec, col), col),
			Align:   col.Align,
		}
	}

	return RowView{
		Index:    index,
		Key:      key,
		Selected: sel != nil && sel.Enabled() && sel.IsSelected(key),
		Cells:    cells,
	}
}

// Header projects a column set into a HeaderView, with sort indicators and
// the select-all state derived from selection count against rowCount.
func Header(columns []entity.Column, sel Selection, rowCount int, sorts []entity.Sort) HeaderView {

	columns = entity.NormalizeColumns(columns)

	cells := make([]CellView, len(columns))
	for i, col := range columns {
		label := col.Label() + sortIndicator(col, sorts)
		cells[i] = CellView{Key: col.Key, Content: fit(label, col), Align: col.Align}
	}

	return HeaderView{
		SelectAll: selectAllState(sel, rowCount),
		Cells:     cells,
	}
}

// unexported

func cellContent(rec entity.Record, col entity.Column) string {
	if col.Project != nil {
		return col.Project(rec)
	}

	val := rec.Get(col.Field)
	if col.Format != "" {
		return formatValue(val, col.Format)
	}
	return val.String()
}

// formatValue applies a column format: a printf verb for numeric and bool
// values, a time layout otherwise. Values the format cannot apply to fall
// back to their plain string form.
func formatValue(val entity.Value, format string) string {
	if val.IsNull() {
		return ""
	}

	if strings.HasPrefix(format, "%") {
		if i, err := val.Int(); err == nil {
			return fmt.Sprintf(format, i)
		}
		if f, err := val.Float(); err == nil {
			return fmt.Sprintf(format, f)
		}
		if b, err := val.Bool(); err == nil {
			return fmt.Sprintf(format, b)
		}
		return val.String()
	}

	if t, err := val.Time(); err == nil {
		return t.Format(format)
	}
	return val.String()
}

// fit truncates or pads content to the column width, display-width aware.
// A column with no width passes content through untouched.
func fit(content string, col entity.Column) string {

	width := col.Width
	if width < col.MinWidth {
		width = col.MinWidth
	}
	if width < 1 {
		return content
	}

	content = runewidth.Truncate(content, width, "…")

	switch col.Align {
	case entity.AlignRight:
		return runewidth.FillLeft(content, width)
	case entity.AlignCenter:
		gap := width - runewidth.StringWidth(content)
		if gap < 1 {
			return content
		}
		return runewidth.FillLeft(runewidth.FillRight(content, width-gap/2), width)
	default:
		return runewidth.FillRight(content, width)
	}
}

func sortIndicator(col entity.Column, sorts []entity.Sort) string {
	if !col.Sortable {
		return ""
	}

	for _, srt := range sorts {
		if srt.Field != col.Field {
			continue
		}
		if srt.Desc {
			return " ▼"
		}
		return " ▲"
	}
	return " ↕"
}

func selectAllState(sel Selection, rowCount int) CheckState {
	if sel == nil || !sel.Enabled() || sel.Count() == 0 || rowCount < 1 {
		return CheckNone
	}
	if sel.Count() >= rowCount {
		return CheckAll
	}
	return CheckSome
}
