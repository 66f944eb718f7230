package message

import tea "charm.land/bubbletea/v2"

// ErrorCmd wraps an error in a command.
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// LoadMoreCmd returns a command requesting the next run of records.
func LoadMoreCmd(offset, size int) tea.Cmd {
	return func() tea.Msg {
		return LoadMoreMsg{
			Offset: offset,
			Size:   size,
		}
	}
}
