package tableau

import (
	tea "charm.land/bubbletea/v2"

	"tableau/detail"
	"tableau/message"
	"tableau/table"
)

// getData loads the initial run of records. Small datasets load whole so
// the plain path has everything; large ones load a first page and grow via
// the load-more cycle.
func (m Model) getData() tea.Cmd {

	cfg := m.Layout.Table

	return func() tea.Msg {
		count, err := m.Source.Count()
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		size := count
		if cfg.InfiniteLoading && cfg.LoadSize > 0 && count > cfg.LoadSize {
			size = cfg.LoadSize
		}

		records, err := m.Source.Page(0, size)
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		return table.DataMsg{
			Records: records,
			Total:   count,
		}
	}
}

// loadMore fetches the next run of records for the infinite-load cycle.
// The result settles the in-flight load either way.
func (m Model) loadMore(offset, size int) tea.Cmd {
	return func() tea.Msg {
		count, err := m.Source.Count()
		if err != nil {
			return table.AppendMsg{Err: err}
		}

		records, err := m.Source.Page(offset, size)
		if err != nil {
			return table.AppendMsg{Err: err}
		}

		return table.AppendMsg{
			Records: records,
			Total:   count,
		}
	}
}

// getDetail fetches the full record behind a row key.
func (m Model) getDetail(key string) tea.Cmd {
	return func() tea.Msg {
		data, err := m.Source.Get(key)
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		return detail.RecordMsg{Data: data}
	}
}

// applyBulk runs a bulk operation on the selected keys and reloads.
func (m Model) applyBulk(op string, keys []string) tea.Cmd {

	if m.Bulk == nil {
		return nil
	}

	return func() tea.Msg {
		results, err := m.Bulk.Apply(op, keys)
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		for _, result := range results {
			if result.Err != nil {
				m.logger.Error(m.ctx, "bulk item failed", result.Err, "op", op, "key", result.Key)
			}
		}

		return tea.Batch(
			func() tea.Msg { return table.ResetMsg{} },
			m.getData(),
		)()
	}
}

// reloadColumns re-reads the layout file and re-columns the table.
func (m Model) reloadColumns() tea.Cmd {

	layout, err := LoadLayout(m.layoutPath)
	if err != nil {
		return message.ErrorCmd(err)
	}

	return func() tea.Msg {
		return table.ColumnsMsg{Columns: layout.Columns}
	}
}

// reloadFilter re-reads the layout file, reapplies its filter, and resets
// the table to the top.
func (m Model) reloadFilter() tea.Cmd {

	layout, err := LoadLayout(m.layoutPath)
	if err != nil {
		return message.ErrorCmd(err)
	}

	err = m.Source.SetView(layout.Filter, layout.Sorts)
	if err != nil {
		return message.ErrorCmd(err)
	}

	return tea.Batch(
		func() tea.Msg { return table.ResetMsg{} },
		m.getData(),
	)
}
