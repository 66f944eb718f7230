package entity

import "github.com/pkg/errors"

// Align positions cell content within its column.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Pin fixes a column to one edge of the table regardless of declared order.
type Pin string

const (
	PinNone  Pin = ""
	PinLeft  Pin = "left"
	PinRight Pin = "right"
)

// Column describes one column of a table: where its values come from and how
// they are shown. Project, when set, takes precedence over Field and must be
// a pure function of the record. Format is a time layout, or a printf verb
// for numeric and bool fields.
type Column struct {
	Key      string `yaml:"key"`
	Title    string `yaml:"title,omitempty"`
	Field    string `yaml:"field,omitempty"`
	Width    int    `yaml:"width"`
	MinWidth int    `yaml:"min_width,omitempty"`
	Format   string `yaml:"format,omitempty"`
	Align    Align  `yaml:"align,omitempty"`
	Sortable bool   `yaml:"sortable,omitempty"`
	Filter   bool   `yaml:"filter,omitempty"`
	Pinned   Pin    `yaml:"pinned,omitempty"`
	Hidden   bool   `yaml:"hidden,omitempty"`

	Project func(Record) string `yaml:"-"`
}

// Label returns the header text for the column, falling back to its key.
func (col Column) Label() string {
	if col.Title != "" {
		return col.Title
	}
	return col.Key
}

// ValidateColumns checks a column set for blank and duplicate keys.
// Rendering tolerates both (last wins on duplicates), this is for callers
// who want to fail fast on a bad layout.
func ValidateColumns(columns []Column) (err error) {

	seen := map[string]bool{}
	for i, col := range columns {
		if col.Key == "" {
			return errors.Errorf("column %d has a blank key", i)
		}
		if seen[col.Key] {
			return errors.Errorf("duplicate column key: %s", col.Key)
		}
		seen[col.Key] = true
	}
	return
}

// NormalizeColumns drops hidden columns, resolves duplicate keys last-wins,
// and orders the result pinned-left, unpinned, pinned-right.
func NormalizeColumns(columns []Column) []Column {

	byKey := map[string]int{}
	deduped := []Column{}
	for _, col := range columns {
		if col.Hidden {
			continue
		}
		if idx, ok := byKey[col.Key]; ok {
			deduped[idx] = col
			continue
		}
		byKey[col.Key] = len(deduped)
		deduped = append(deduped, col)
	}

	ordered := make([]Column, 0, len(deduped))
	for _, pin := range []Pin{PinLeft, PinNone, PinRight} {
		for _, col := range deduped {
			if col.Pinned == pin {
				ordered = append(ordered, col)
			}
		}
	}
	return ordered
}
