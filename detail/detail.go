// Package detail displays one full record as indented JSON with line
// scrolling.
package detail

import (
	"encoding/json"
	"strings"

	tea "charm.land/bubbletea/v2"
)

// DetailPanel handles the full-record view display state.
type DetailPanel struct {
	data         map[string]any
	contentLines []string

	width        int
	height       int
	scrollOffset int
}

func NewDetailPanel() DetailPanel {
	return DetailPanel{}
}

func (pnl DetailPanel) Update(msg tea.Msg) (DetailPanel, tea.Cmd) {

	switch msg := msg.(type) {

	case RecordMsg:
		pnl.data = msg.Data
		pnl.contentLines = renderLines(msg.Data)
		pnl.scrollOffset = 0

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		pnl.scrollOffset = 0

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if pnl.scrollOffset > 0 {
				pnl.scrollOffset--
			}

		case "down", "j":
			if pnl.height > 0 && len(pnl.contentLines) > pnl.height {
				maxScroll := len(pnl.contentLines) - pnl.height
				if pnl.scrollOffset < maxScroll {
					pnl.scrollOffset++
				}
			}
		}
	}

	return pnl, nil
}

// Render returns the visible slice of the record content.
func (pnl DetailPanel) Render() string {
	if pnl.contentLines == nil {
		return "Loading full record..."
	}

	visible := pnl.contentLines[pnl.scrollOffset:]
	if pnl.height > 0 && len(visible) > pnl.height {
		visible = visible[:pnl.height]
	}

	return strings.Join(visible, "\n")
}

// unexported

func renderLines(data map[string]any) []string {

	var buf strings.Builder
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	err := encoder.Encode(data)
	if err != nil {
		return []string{"Error rendering record: " + err.Error()}
	}

	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}
