package style

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

var (
	TableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Subtle warm grey border
	HlRowStyle       = lipgloss.NewStyle().Background(lipgloss.Color("235")) // Very subtle warm grey row
	SelectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("150")) // Soft green for selected rows
	MutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("246")) // Warm muted grey text
	PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238")) // Dim placeholder rows
	UnStyle          = lipgloss.NewStyle()
)

// RowStyler returns a StyleFunc highlighting the cursor row and tinting
// selected rows.
func RowStyler(cursorRow int, selectedRows map[int]bool) func(row, col int) lipgloss.Style {
	return func(row, col int) lipgloss.Style {
		switch {
		case row == cursorRow:
			return HlRowStyle
		case selectedRows[row]:
			return SelectedStyle
		default:
			return UnStyle
		}
	}
}

// StyleTable applies consistent table styling for borders and separators.
func StyleTable(tbl *table.Table) {
	tbl.Border(lipgloss.Border{
		Top:         "─",
		Middle:      "─",
		MiddleLeft:  "─",
		MiddleRight: "─",
	}).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderStyle(TableBorderStyle)
}
