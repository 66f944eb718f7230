// Package tableau is a terminal data browser built around a table that
// switches between a plain full-render path and a windowed virtual path as
// datasets grow.
package tableau

import nt "tableau/entity"

// Source specifies a backing datastore serving records in pages.
type Source interface {
	// Name returns the name of the data source
	Name() string
	// Fields returns the fields records carry
	Fields() (fields []nt.Field, err error)
	// Count returns the total number of records in the current view
	Count() (count int, err error)
	// Page returns records [offset, offset+size)
	Page(offset, size int) (records []nt.Record, err error)
	// Get returns the full record behind a row key
	Get(key string) (data map[string]any, err error)
	// SetView applies a filter and sorts to subsequent reads
	SetView(filter nt.Filter, sorts []nt.Sort) (err error)
}

// Result is the per-item outcome of a bulk operation.
type Result struct {
	Key string
	Err error
}

// Bulk applies a named operation to a batch of row keys, reporting success
// or failure per item.
type Bulk interface {
	Apply(op string, keys []string) (results []Result, err error)
}
