package message

import "tableau/entity"

// ErrorMsg contains an error for the top-level model to surface.
type ErrorMsg struct {
	Err error
}

// SelectedMsg reports the cursor landing on a row.
type SelectedMsg struct {
	Row int // 1-indexed for display
	Key string
}

// ScrolledMsg reports a new scroll offset.
type ScrolledMsg struct {
	Offset int
}

// LoadMoreMsg asks the data owner for the next run of records.
type LoadMoreMsg struct {
	Offset int
	Size   int
}

// SelectionMsg reports a selection change with the resolved records.
type SelectionMsg struct {
	Keys    []string
	Records []entity.Record
}

// BulkMsg asks the data owner to apply an operation to the selected rows.
type BulkMsg struct {
	Op   string
	Keys []string
}

// OpenDetailMsg asks for the full record behind a row key.
type OpenDetailMsg struct {
	Key string
}
