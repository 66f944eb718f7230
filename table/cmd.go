package table

import (
	tea "charm.land/bubbletea/v2"

	nt "tableau/entity"
	"tableau/message"
)

// afterScroll reports a scroll to the parent and, when the controller asked
// for one, requests the next run of records.
func (pnl TablePanel) afterScroll(load bool) tea.Cmd {

	offset := pnl.ctrl.Offset()
	cmds := []tea.Cmd{
		func() tea.Msg {
			return message.ScrolledMsg{Offset: offset}
		},
	}

	if load {
		cmds = append(cmds, message.LoadMoreCmd(len(pnl.records), pnl.cfg.LoadSize))
	}
	return tea.Batch(cmds...)
}

// selectedCmd reports the row under the cursor.
func (pnl TablePanel) selectedCmd() tea.Cmd {

	key, err := pnl.SelectedKey()
	if err != nil {
		return nil
	}

	row := pnl.selected + 1 // 1-indexed for display

	return func() tea.Msg {
		return message.SelectedMsg{
			Row: row,
			Key: key,
		}
	}
}

// selectionCmd reports a selection change with the records resolved from
// the loaded dataset.
func (pnl TablePanel) selectionCmd() tea.Cmd {

	keys := pnl.sel.Keys()

	byKey := make(map[string]nt.Record, len(pnl.records))
	for _, rec := range pnl.records {
		byKey[pnl.keyFn(rec)] = rec
	}

	records := make([]nt.Record, 0, len(keys))
	for _, key := range keys {
		if rec, ok := byKey[key]; ok {
			records = append(records, rec)
		}
	}

	return func() tea.Msg {
		return message.SelectionMsg{
			Keys:    keys,
			Records: records,
		}
	}
}
