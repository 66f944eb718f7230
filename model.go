package tableau

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"tableau/detail"
	nt "tableau/entity"
	"tableau/message"
	"tableau/table"
)

const (
	footerHeight = 2
)

// Model is the bubbletea model for the data browser TUI.
type Model struct {
	Source Source
	Bulk   Bulk
	Layout *Layout

	CurrentScreen Screen

	TablePanel  table.TablePanel
	DetailPanel detail.DetailPanel

	Width  int
	Height int

	layoutPath    string
	current       int
	selectedCount int
	errorString   string

	ctx    context.Context
	logger nt.Logger
}

// NewModel wires a source and optional bulk collaborator under the layout
// at layoutPath.
func NewModel(ctx context.Context, source Source, bulk Bulk, layoutPath string, lgr nt.Logger) (model Model, err error) {

	layout, err := LoadLayout(layoutPath)
	if err != nil {
		return
	}

	err = source.SetView(layout.Filter, layout.Sorts)
	if err != nil {
		return
	}

	model = Model{
		Source:        source,
		Bulk:          bulk,
		Layout:        layout,
		CurrentScreen: TableScreen,
		TablePanel:    table.NewTablePanel(ctx, layout.Table, layout.Columns, layout.KeyFn(), lgr),
		DetailPanel:   detail.NewDetailPanel(),
		layoutPath:    layoutPath,
		ctx:           ctx,
		logger:        lgr,
	}

	return
}

func (m Model) Init() tea.Cmd {
	return m.getData()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case message.SelectedMsg:
		m.current = msg.Row
		return m, nil

	case message.SelectionMsg:
		m.selectedCount = len(msg.Keys)
		return m, nil

	case message.ScrolledMsg:
		return m, nil

	case message.LoadMoreMsg:
		return m, m.loadMore(msg.Offset, msg.Size)

	case message.OpenDetailMsg:
		m.CurrentScreen = DetailScreen
		return m, m.getDetail(msg.Key)

	case message.BulkMsg:
		return m, m.applyBulk(msg.Op, msg.Keys)

	case tea.KeyPressMsg:
		if m.errorString != "" {
			m.errorString = ""
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.TablePanel.Close()
			return m, tea.Quit

		case "esc":
			if m.CurrentScreen != TableScreen {
				m.CurrentScreen = TableScreen
				return m, nil
			}
			m.TablePanel.Close()
			return m, tea.Quit

		case "r":
			return m, m.reloadColumns()

		case "f":
			return m, m.reloadFilter()

		case "left", "h":
			if m.CurrentScreen == DetailScreen {
				m.CurrentScreen = TableScreen
				return m, nil
			}
		}

		// Keys route to the screen that is showing
		var cmd tea.Cmd
		switch m.CurrentScreen {
		case TableScreen:
			m.TablePanel, cmd = m.TablePanel.Update(msg)
		case DetailScreen:
			m.DetailPanel, cmd = m.DetailPanel.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		var cmd1, cmd2 tea.Cmd
		m.TablePanel, cmd1 = m.TablePanel.Update(table.SizeMsg{
			Width:  msg.Width,
			Height: msg.Height - footerHeight,
		})
		m.DetailPanel, cmd2 = m.DetailPanel.Update(detail.SizeMsg{
			Width:  msg.Width,
			Height: msg.Height - footerHeight,
		})
		return m, tea.Sequence(cmd1, cmd2)

	case table.TableMsg:
		var cmd tea.Cmd
		m.TablePanel, cmd = m.TablePanel.Update(msg)
		return m, cmd

	case detail.RecordMsg:
		var cmd tea.Cmd
		m.DetailPanel, cmd = m.DetailPanel.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() tea.View {
	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	var screenContent string
	switch m.CurrentScreen {
	case DetailScreen:
		screenContent = m.DetailPanel.Render()
	default:
		screenContent = m.TablePanel.Render()
	}

	screenLayer := lipgloss.NewLayer("screen", screenContent)

	current, total := m.TablePanel.Position()
	if m.current > 0 {
		current = m.current
	}
	footerContent := RenderFooter(current, total, m.selectedCount, m.Source.Name(), m.TablePanel.Loading(), m.Width)
	if m.errorString != "" {
		footerContent = m.errorString
	}
	footerLayer := lipgloss.NewLayer("footer", footerContent).Y(m.Height - footerHeight)

	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(screenLayer)
	canvas.Compose(footerLayer)

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}
