package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/retrowix/flow-state/internal/board"
	"github.com/retrowix/flow-state/internal/core"
	"github.com/retrowix/flow-state/internal/storage"
)

// maxHistoryEntries caps how many layouts the viewer loads.
const maxHistoryEntries = 100

// HistoryKeyMap defines the key bindings for the layout history viewer.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the layout history viewer.
// It shows recorded generations in a table with a preview of the selected
// board beside it.
type HistoryModel struct {
	entries  []storage.LayoutEntry
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	theme    Theme
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a new history model from stored layouts.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	var entries []storage.LayoutEntry
	if store != nil {
		if loaded, err := store.RecentLayouts(maxHistoryEntries); err == nil {
			entries = loaded
		}
	}

	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		entries: entries,
		help:    h,
		keys:    DefaultHistoryKeyMap(),
		theme:   DefaultTheme(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Pairs", Width: 6},
		{Title: "Grid", Width: 5},
		{Title: "Spread", Width: 7},
		{Title: "Generated", Width: 18},
	}

	height := m.height - 10 // header, preview, help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = m.theme.Selected.Bold(false)
	t.SetStyles(s)

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", e.ID),
			fmt.Sprintf("%d", e.Pairs),
			fmt.Sprintf("%dx%d", e.GridN, e.GridN),
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	t.SetRows(rows)

	return t
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history viewer.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history viewer.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("LAYOUT HISTORY"), m.width))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(centerText(m.theme.Muted.Render("No layouts recorded yet."), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(m.theme.Muted.Render("Generate one with 'flowstate play' or 'flowstate gen'."), m.width))
		b.WriteString("\n")
		return b.String()
	}

	tableView := m.table.View()
	preview := m.previewSelected()

	// Table and preview side by side when there is room
	if m.width >= lipgloss.Width(tableView)+20 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableView, "  ", preview))
	} else {
		b.WriteString(tableView)
		b.WriteString("\n")
		b.WriteString(preview)
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// previewSelected renders the selected layout as a small colored grid.
func (m HistoryModel) previewSelected() string {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.entries) {
		return ""
	}

	entry := m.entries[idx]
	pairs, err := entry.Endpoints()
	if err != nil {
		return m.theme.Muted.Render("unreadable layout")
	}

	// Color index per occupied cell
	occupied := make(map[board.Cell]int)
	for i, p := range pairs {
		occupied[p.A] = i
		occupied[p.B] = i
	}

	var b strings.Builder
	for r := 0; r < entry.GridN; r++ {
		for c := 0; c < entry.GridN; c++ {
			if pairIdx, ok := occupied[board.Cell{Row: r, Col: c}]; ok {
				style := colorStyles[core.PairColor(pairIdx)]
				b.WriteString(style.Render("● "))
			} else {
				b.WriteString(m.theme.Muted.Render("· "))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RunHistory runs the layout history viewer.
func RunHistory(store *storage.Store, width, height int) error {
	model := NewHistoryModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
