package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-pathfinder/internal/core"
)

// SessionModel manages the full flow: setup menu -> game -> setup menu.
// It is the top-level model for interactive play and SSH sessions.
type SessionModel struct {
	factory   GameFactory
	config    core.RuntimeConfig
	selection Selection
	setup     SetupModel
	gameModel *Model
	quitting  bool
}

// NewSessionModel creates a new session that opens on the setup menu.
func NewSessionModel(factory GameFactory, cfg core.RuntimeConfig, initial Selection) SessionModel {
	return SessionModel{
		factory:   factory,
		config:    cfg,
		selection: initial,
		setup:     NewSetupModel(initial, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.setup.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateSetup(msg)
}

func (m SessionModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	newSetup, cmd := m.setup.Update(msg)
	if setup, ok := newSetup.(SetupModel); ok {
		m.setup = setup
	}

	if m.setup.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.setup.Selected(); selected != nil {
		m.selection = *selected
		gameModel := NewModel(m.factory(m.selection), m.config)
		m.gameModel = &gameModel
		return m, m.gameModel.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.setup = NewSetupModel(m.selection, m.config.ScreenW, m.config.ScreenH)
		return m, m.setup.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.setup.View()
}

// RunSession runs the setup menu and games until the user quits.
func RunSession(factory GameFactory, cfg core.RuntimeConfig, initial Selection) error {
	p := tea.NewProgram(
		NewSessionModel(factory, cfg, initial),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
