package table

import nt "tableau/entity"

type TableMsg interface {
	isTableMsg()
}

func (SizeMsg) isTableMsg()    {}
func (DataMsg) isTableMsg()    {}
func (AppendMsg) isTableMsg()  {}
func (ColumnsMsg) isTableMsg() {}
func (ResetMsg) isTableMsg()   {}

// SizeMsg gives the panel its terminal real estate.
type SizeMsg struct {
	Width  int
	Height int
}

// DataMsg replaces the loaded records wholesale. Total is the full size of
// the dataset at the source, which may exceed len(Records) when more pages
// remain.
type DataMsg struct {
	Records []nt.Record
	Total   int
}

// AppendMsg delivers the result of a LoadMoreMsg round trip. Err settles
// the in-flight load either way.
type AppendMsg struct {
	Records []nt.Record
	Total   int
	Err     error
}

// ColumnsMsg swaps the column configuration. Data and selection survive.
type ColumnsMsg struct {
	Columns []nt.Column
}

// ResetMsg returns the cursor and scroll position to the top.
type ResetMsg struct{}
