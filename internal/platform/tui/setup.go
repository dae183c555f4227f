package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-pathfinder/internal/config"
	"github.com/vovakirdan/snake-pathfinder/internal/games/snake/pathfind"
	"github.com/vovakirdan/snake-pathfinder/internal/registry"
)

// Selection holds the settings chosen in the setup menu.
type Selection struct {
	Difficulty config.Difficulty
	Mode       config.GameMode
	Algorithm  pathfind.Algorithm
	Duel       bool
}

// DefaultSelection returns the settings a fresh setup menu starts from.
func DefaultSelection() Selection {
	return Selection{
		Difficulty: config.DifficultyNormal,
		Mode:       config.ModeClassic,
		Algorithm:  pathfind.BreadthFirst,
	}
}

// GameID returns the registry ID of the selected variant.
func (s Selection) GameID() string {
	if s.Duel {
		return "snake_duel"
	}
	return "snake"
}

// GameFactory builds a game for a selection.
type GameFactory func(Selection) registry.Game

// Setup menu rows.
const (
	rowDifficulty = iota
	rowMode
	rowAlgorithm
	rowDuel
	rowStart
	rowCount
)

// SetupModel lets users pick difficulty, mode, algorithm and duel before a run.
type SetupModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection Selection
	choosing  bool
	quitting  bool
}

// NewSetupModel creates a setup menu preset to initial.
func NewSetupModel(initial Selection, width, height int) SetupModel {
	return SetupModel{
		cursor:    rowStart,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		selection: initial,
		choosing:  true,
	}
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, nil
	case MenuActionUp:
		m.cursor = (m.cursor + rowCount - 1) % rowCount
	case MenuActionDown:
		m.cursor = (m.cursor + 1) % rowCount
	case MenuActionLeft:
		m.selection = m.selection.cycle(m.cursor, -1)
	case MenuActionRight:
		m.selection = m.selection.cycle(m.cursor, 1)
	case MenuActionSelect:
		if m.cursor == rowStart {
			m.choosing = false
			return m, nil
		}
		m.selection = m.selection.cycle(m.cursor, 1)
	}
	return m, nil
}

// cycle steps the value on the given row forwards or backwards.
func (s Selection) cycle(row, step int) Selection {
	switch row {
	case rowDifficulty:
		s.Difficulty = rotate(config.Difficulties(), s.Difficulty, step)
	case rowMode:
		s.Mode = rotate(config.GameModes(), s.Mode, step)
	case rowAlgorithm:
		s.Algorithm = rotate(pathfind.Algorithms(), s.Algorithm, step)
	case rowDuel:
		s.Duel = !s.Duel
	}
	return s
}

func rotate[T comparable](all []T, cur T, step int) T {
	for i, v := range all {
		if v == cur {
			return all[((i+step)%len(all)+len(all))%len(all)]
		}
	}
	return all[0]
}

var (
	setupTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	setupCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	setupHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the setup menu.
func (m SetupModel) View() string {
	if m.quitting || !m.choosing {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(setupTitleStyle.Render("S N A K E   P A T H F I N D E R"), m.width))
	b.WriteString("\n\n")

	duel := "off"
	if m.selection.Duel {
		duel = "on"
	}
	rows := [rowCount]string{
		rowDifficulty: fmt.Sprintf("Difficulty  < %-13s >", m.selection.Difficulty.Title()),
		rowMode:       fmt.Sprintf("Mode        < %-13s >", m.selection.Mode.Title()),
		rowAlgorithm:  fmt.Sprintf("Algorithm   < %-13s >", m.selection.Algorithm.Title()),
		rowDuel:       fmt.Sprintf("Rival       < %-13s >", duel),
		rowStart:      "Start",
	}
	for i, row := range rows {
		line := "  " + row
		if i == m.cursor {
			line = setupCursorStyle.Render("> " + row)
		}
		b.WriteString(centerStyled(line, m.width))
		b.WriteString("\n")
		if i == rowDuel {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(setupHelpStyle.Render("←/→: Change  |  Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))
	return b.String()
}

// centerStyled centers text that may contain ANSI escapes.
func centerStyled(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// Selected returns the selection, or nil if still choosing or quit.
func (m SetupModel) Selected() *Selection {
	if m.choosing || m.quitting {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}
