package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-pathfinder/internal/config"
	"github.com/vovakirdan/snake-pathfinder/internal/storage"
)

// StatsKeyMap defines the key bindings for the benchmark stats view.
type StatsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMode, k.PrevMode, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// statsFilters are the mode tabs; the empty mode aggregates every mode.
var statsFilters = append([]config.GameMode{""}, config.GameModes()...)

// StatsModel compares search strategies using the benchmark journal.
type StatsModel struct {
	store    *storage.Store
	filter   storage.Filter
	tab      int
	stats    []storage.AlgorithmStat
	err      error
	table    table.Model
	help     help.Model
	keys     StatsKeyMap
	width    int
	height   int
	quitting bool
}

// NewStatsModel creates a stats view. The difficulty in filter is kept
// fixed while tabs switch the mode.
func NewStatsModel(store *storage.Store, filter storage.Filter, width, height int) StatsModel {
	m := StatsModel{
		store:  store,
		filter: filter,
		keys:   DefaultStatsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for i, mode := range statsFilters {
		if string(mode) == filter.Mode {
			m.tab = i
		}
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Algorithm", Width: 15},
		{Title: "Episodes", Width: 9},
		{Title: "Avg score", Width: 10},
		{Title: "Best", Width: 6},
		{Title: "Avg length", Width: 11},
		{Title: "Avg ticks", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load queries the journal for the current tab.
func (m *StatsModel) load() {
	m.filter.Mode = string(statsFilters[m.tab])
	m.stats, m.err = nil, nil
	if m.store != nil {
		m.stats, m.err = m.store.AlgorithmStats(m.filter)
	}
	m.table.SetRows(statsRows(m.stats))
	m.table.GotoTop()
}

func statsRows(stats []storage.AlgorithmStat) []table.Row {
	rows := make([]table.Row, len(stats))
	for i, s := range stats {
		rows[i] = table.Row{
			s.Algorithm,
			fmt.Sprintf("%d", s.Episodes),
			fmt.Sprintf("%.1f", s.AvgScore),
			fmt.Sprintf("%d", s.MaxScore),
			fmt.Sprintf("%.1f", s.AvgLength),
			fmt.Sprintf("%.0f", s.AvgTicks),
		}
	}
	return rows
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats view.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			m.tab = (m.tab + 1) % len(statsFilters)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.tab = (m.tab + len(statsFilters) - 1) % len(statsFilters)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(statsRows(m.stats))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats view.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	title := "ROUTE BENCHMARK"
	if m.filter.Difficulty != "" {
		title += " - " + config.Difficulty(m.filter.Difficulty).Title()
	}
	b.WriteString(centerStyled(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	tabs := make([]string, len(statsFilters))
	for i, mode := range statsFilters {
		name := "All modes"
		if mode != "" {
			name = mode.Title()
		}
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	b.WriteString(centerStyled(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty/error message.
func (m StatsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)
	switch {
	case m.err != nil:
		return emptyStyle.Render("Could not read the journal:\n" + m.err.Error())
	case len(m.stats) == 0:
		return emptyStyle.Render("No episodes recorded yet.\nRun 'snake bench' to record some!")
	}
	return m.table.View()
}

// RunStats runs the stats view until the user quits.
func RunStats(store *storage.Store, filter storage.Filter, width, height int) error {
	p := tea.NewProgram(
		NewStatsModel(store, filter, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
