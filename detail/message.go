package detail

// RecordMsg delivers the full record to display.
type RecordMsg struct {
	Data map[string]any
}

// SizeMsg gives the panel its terminal real estate.
type SizeMsg struct {
	Width  int
	Height int
}
