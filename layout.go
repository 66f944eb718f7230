package tableau

import (
	"gopkg.in/yaml.v3"

	nt "tableau/entity"
	"tableau/table"
	"tableau/util"
)

// Layout is the yaml-backed table configuration: columns, an optional
// filter, and the table tuning knobs.
type Layout struct {
	Columns  []nt.Column  `yaml:"columns"`
	KeyField string       `yaml:"key_field,omitempty"`
	Filter   nt.Filter    `yaml:"filter,omitempty"`
	Sorts    []nt.Sort    `yaml:"sorts,omitempty"`
	Table    table.Config `yaml:"table,omitempty"`
}

// KeyFn returns the row key extractor the layout names, defaulting to an
// "id" field.
func (layout *Layout) KeyFn() nt.KeyFn {
	field := layout.KeyField
	if field == "" {
		field = "id"
	}
	return nt.FieldKey(field)
}

// LoadLayout reads and validates a layout file.
func LoadLayout(path string) (layout *Layout, err error) {

	layout = &Layout{}
	err = util.LoadConfig(layout, path)
	if err != nil {
		return nil, err
	}

	err = nt.ValidateColumns(layout.Columns)
	if err != nil {
		return nil, err
	}

	return layout, nil
}

// sampleLayout is written next to the data on first run so there is
// something to edit.
var sampleLayout = func() []byte {
	data, _ := yaml.Marshal(Layout{
		Columns: []nt.Column{
			{Key: "id", Field: "id", Width: 8},
			{Key: "ts", Field: "ts", Width: 20, Format: "2006-01-02 15:04:05", Sortable: true},
			{Key: "level", Field: "level", Width: 8, Align: nt.AlignCenter},
			{Key: "msg", Field: "msg", Width: 60},
		},
		Table: table.Config{
			Overscan:        5,
			Threshold:       200,
			InfiniteLoading: true,
		},
	})
	return data
}()

// SampleLayout writes a starter layout file unless one already exists.
func SampleLayout(path string) error {
	return util.SampleConfig(sampleLayout, path, 0644)
}
