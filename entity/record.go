package entity

// Record is a single row of data, mapping field names to values.
// Records are externally owned; nothing in this module mutates one.
type Record map[string]Value

// Get returns the value for a field, or a null Value when absent.
func (rec Record) Get(field string) Value {
	return rec[field]
}

// KeyFn derives the stable row key for a record.
type KeyFn func(Record) string

// FieldKey returns a KeyFn reading the key from a named field.
func FieldKey(field string) KeyFn {
	return func(rec Record) string {
		return rec.Get(field).String()
	}
}

// Field describes a named, typed field available from a source.
type Field struct {
	Name string
	Type string
}
