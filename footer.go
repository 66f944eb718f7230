package tableau

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"tableau/style"
)

// RenderFooter renders position, selection, and source info for the bottom
// of the screen.
func RenderFooter(current, total, selected int, source string, loading bool, width int) string {

	left := fmt.Sprintf("%d/%d", current, total)
	if selected > 0 {
		left += fmt.Sprintf("  %d selected", selected)
	}

	right := source
	if loading {
		right = "loading… " + right
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.MutedStyle.Render(left + strings.Repeat(" ", padding) + right)
}
