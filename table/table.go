// Package table is a data-table panel for bubbletea with two rendering
// paths: a plain path that materializes every row, and a virtual path that
// materializes only the rows near the viewport. Which path runs is decided
// per render from the row count; callers see identical behavior from both.
package table

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/pkg/errors"

	nt "tableau/entity"
	"tableau/heights"
	"tableau/message"
	"tableau/render"
	"tableau/scroll"
	"tableau/selection"
	"tableau/style"
)

const (
	headerHeight = 2
)

// TablePanel handles table display, navigation, selection, and the
// request cycle for more data.
type TablePanel struct {
	cfg     Config
	columns []nt.Column
	keyFn   nt.KeyFn

	records []nt.Record
	total   int
	sorts   []nt.Sort

	selected int // cursor, absolute index into records
	width    int
	height   int

	model heights.Model
	ctrl  *scroll.Controller
	sel   *selection.Set
	table *table.Table

	ctx    context.Context
	logger nt.Logger
}

// NewTablePanel builds a panel over the given columns. keyFn derives the
// stable row key; records arrive later via DataMsg.
func NewTablePanel(ctx context.Context, cfg Config, columns []nt.Column, keyFn nt.KeyFn, lgr nt.Logger) TablePanel {

	cfg = cfg.withDefaults()

	model := heights.Model(heights.Fixed(cfg.ItemHeight))
	ctrl := scroll.New(scroll.Config{
		MaxHeight:       cfg.MaxHeight,
		Overscan:        cfg.Overscan,
		InfiniteLoading: cfg.InfiniteLoading,
		LoadThreshold:   cfg.LoadThreshold,
	}, model)
	ctrl.SetLoading(cfg.LoadingMore)

	lgt := table.New()
	style.StyleTable(lgt)

	return TablePanel{
		cfg:     cfg,
		columns: columns,
		keyFn:   keyFn,
		model:   model,
		ctrl:    ctrl,
		sel:     selection.New(nil),
		table:   lgt,
		ctx:     ctx,
		logger:  lgr,
	}
}

// SetHeightModel swaps in a custom row height model, e.g. a measured one.
// The terminal path assumes uniform rows; embedders driving their own
// scroll units use this.
func (pnl TablePanel) SetHeightModel(model heights.Model) TablePanel {
	pnl.model = model
	ctrl := scroll.New(scroll.Config{
		MaxHeight:       pnl.cfg.MaxHeight,
		Overscan:        pnl.cfg.Overscan,
		InfiniteLoading: pnl.cfg.InfiniteLoading,
		LoadThreshold:   pnl.cfg.LoadThreshold,
	}, model)
	ctrl.SetLoading(pnl.ctrl.Loading())
	pnl.ctrl = ctrl
	pnl.ctrl.SetRowCount(len(pnl.records))
	return pnl
}

// Selection exposes the coordinator, primarily for bulk-action callers.
func (pnl TablePanel) Selection() *selection.Set {
	return pnl.sel
}

// Mode reports which rendering path the current row count selects.
func (pnl TablePanel) Mode() Mode {
	return pnl.cfg.Mode(len(pnl.records))
}

// Loading reports whether a load-more round trip is in flight.
func (pnl TablePanel) Loading() bool {
	return pnl.ctrl.Loading()
}

// Close tears the panel down; late load results become no-ops.
func (pnl TablePanel) Close() {
	pnl.ctrl.Close()
}

func (pnl TablePanel) Init() tea.Cmd {
	return nil
}

func (pnl TablePanel) Update(msg tea.Msg) (TablePanel, tea.Cmd) {
	switch msg := msg.(type) {

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		_, load := pnl.ctrl.Resize(pnl.viewHeight())
		return pnl, pnl.afterScroll(load)

	case DataMsg:
		if pnl.ctrl.Closed() {
			return pnl, nil
		}
		pnl.records = msg.Records
		pnl.total = msg.Total
		pnl.ctrl.SetHasMore(len(pnl.records) < pnl.total)
		pnl.ctrl.SetRowCount(len(pnl.records))
		pnl.sel.Reconcile(pnl.records, pnl.keyFn)
		if pnl.selected > len(pnl.records)-1 {
			pnl.selected = len(pnl.records) - 1
		}
		if pnl.selected < 0 {
			pnl.selected = 0
		}
		return pnl, pnl.selectedCmd()

	case AppendMsg:
		if pnl.ctrl.Closed() {
			return pnl, nil
		}
		pnl.ctrl.LoadFinished()
		if msg.Err != nil {
			return pnl, message.ErrorCmd(msg.Err)
		}
		pnl.records = append(pnl.records, msg.Records...)
		pnl.total = msg.Total
		pnl.ctrl.SetHasMore(len(pnl.records) < pnl.total)
		pnl.ctrl.SetRowCount(len(pnl.records))
		return pnl, nil

	case ColumnsMsg:
		pnl.columns = msg.Columns
		return pnl, nil

	case ResetMsg:
		pnl.selected = 0
		_, load := pnl.ctrl.SetOffset(0)
		return pnl, pnl.afterScroll(load)

	case tea.KeyPressMsg:
		return pnl.handleKey(msg)
	}

	return pnl, nil
}

// View renders the panel along whichever path Mode selects.
func (pnl TablePanel) View() tea.View {
	return tea.NewView(pnl.Render())
}

// Render returns the panel content as a string, for callers composing
// screens themselves.
func (pnl TablePanel) Render() string {

	views, first := pnl.rowViews()

	header := render.Header(pnl.columns, pnl.sel, len(pnl.records), pnl.sorts)

	pnl.table.ClearRows()
	pnl.table.Headers(headerCells(header, pnl.sel.Enabled())...)
	pnl.table.StyleFunc(style.RowStyler(pnl.selected-first, selectedRows(views)))

	for _, view := range views {
		pnl.table.Row(rowCells(view, pnl.sel.Enabled())...)
	}

	return pnl.table.Render()
}

// SelectedKey returns the row key under the cursor.
func (pnl TablePanel) SelectedKey() (key string, err error) {

	if pnl.selected < 0 || pnl.selected >= len(pnl.records) {
		err = errors.Errorf("cursor %d is out of bounds of %d records", pnl.selected, len(pnl.records))
		return
	}

	key = pnl.keyFn(pnl.records[pnl.selected])
	return
}

// PageSize returns the number of rows that fit on the panel.
func (pnl TablePanel) PageSize() int {
	size := pnl.height - headerHeight
	if size < 0 {
		size = 0
	}
	return size
}

// Position returns the 1-indexed cursor position and the total row count
// at the source, for footers.
func (pnl TablePanel) Position() (current, total int) {
	total = pnl.total
	if total < len(pnl.records) {
		total = len(pnl.records)
	}
	return pnl.selected + 1, total
}

// unexported

// rowViews materializes the rows the current mode calls for, returning the
// views and the absolute index of the first one.
func (pnl TablePanel) rowViews() (views []render.RowView, first int) {

	start, end := 0, len(pnl.records)-1
	if pnl.Mode() == Virtual {
		rng := pnl.ctrl.Range()
		if rng.Empty() {
			return nil, 0
		}
		start, end = rng.Start, rng.End
	}
	if end < start {
		return nil, start
	}

	views = make([]render.RowView, 0, end-start+1)
	for i := start; i <= end; i++ {
		var rec nt.Record
		if i >= 0 && i < len(pnl.records) {
			rec = pnl.records[i]
		}
		views = append(views, render.Row(rec, i, pnl.columns, pnl.keyFn, pnl.sel))
	}
	return views, start
}

func (pnl TablePanel) handleKey(msg tea.KeyPressMsg) (TablePanel, tea.Cmd) {

	pageSize := pnl.PageSize()

	switch msg.String() {
	case "up", "k":
		if pnl.selected > 0 {
			pnl.selected--
		}

	case "down", "j":
		if pnl.selected < len(pnl.records)-1 {
			pnl.selected++
		}

	case "pgup", "ctrl+u":
		pnl.selected -= pageSize
		if pnl.selected < 0 {
			pnl.selected = 0
		}

	case "pgdown", "ctrl+d":
		pnl.selected += pageSize
		if pnl.selected >= len(pnl.records) {
			pnl.selected = len(pnl.records) - 1
		}

	case "g":
		pnl.selected = 0

	case "G":
		pnl.selected = len(pnl.records) - 1

	case " ":
		key, err := pnl.SelectedKey()
		if err != nil {
			return pnl, nil
		}
		pnl.sel.Toggle(key)
		return pnl, pnl.selectionCmd()

	case "a":
		keys := make([]string, 0, len(pnl.records))
		for _, rec := range pnl.records {
			keys = append(keys, pnl.keyFn(rec))
		}
		pnl.sel.SelectAll(keys)
		return pnl, pnl.selectionCmd()

	case "A":
		pnl.sel.ClearAll()
		return pnl, pnl.selectionCmd()

	case "enter":
		key, err := pnl.SelectedKey()
		if err != nil {
			return pnl, nil
		}
		return pnl, func() tea.Msg {
			return message.OpenDetailMsg{Key: key}
		}

	case "d":
		if pnl.sel.Count() == 0 {
			return pnl, nil
		}
		keys := pnl.sel.Keys()
		return pnl, func() tea.Msg {
			return message.BulkMsg{Op: "delete", Keys: keys}
		}

	default:
		return pnl, nil
	}

	if pnl.selected < 0 {
		pnl.selected = 0
	}

	load := pnl.ensureVisible()
	return pnl, tea.Batch(pnl.afterScroll(load), pnl.selectedCmd())
}

// ensureVisible scrolls just enough to keep the cursor row in view.
func (pnl *TablePanel) ensureVisible() (load bool) {

	top := pnl.model.TotalHeight(pnl.selected)
	bottom := top + pnl.model.HeightOf(pnl.selected)

	offset := pnl.ctrl.Offset()
	viewH := pnl.ctrl.ViewHeight()

	if top < offset {
		offset = top
	} else if bottom > offset+viewH {
		offset = bottom - viewH
	}

	_, load = pnl.ctrl.SetOffset(offset)
	return load
}

func (pnl TablePanel) viewHeight() int {
	return pnl.PageSize() * pnl.cfg.ItemHeight
}

func headerCells(header render.HeaderView, withCheckbox bool) []string {
	cells := make([]string, 0, len(header.Cells)+1)
	if withCheckbox {
		cells = append(cells, selectAllGlyph(header.SelectAll))
	}
	for _, cell := range header.Cells {
		cells = append(cells, cell.Content)
	}
	return cells
}

// selectedRows maps display-row indices to selection state for styling.
func selectedRows(views []render.RowView) map[int]bool {
	rows := map[int]bool{}
	for i, view := range views {
		if view.Selected {
			rows[i] = true
		}
	}
	return rows
}

func rowCells(view render.RowView, withCheckbox bool) []string {
	cells := make([]string, 0, len(view.Cells)+1)
	if withCheckbox {
		cells = append(cells, checkboxGlyph(view.Selected))
	}
	for _, cell := range view.Cells {
		cells = append(cells, cell.Content)
	}
	return cells
}

func checkboxGlyph(selected bool) string {
	if selected {
		return "[x]"
	}
	return "[ ]"
}

func selectAllGlyph(state render.CheckState) string {
	switch state {
	case render.CheckAll:
		return "[x]"
	case render.CheckSome:
		return "[~]"
	default:
		return "[ ]"
	}
}
