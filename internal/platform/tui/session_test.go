package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-pathfinder/internal/core"
	"github.com/vovakirdan/snake-pathfinder/internal/games/snake"
	"github.com/vovakirdan/snake-pathfinder/internal/registry"
)

func testFactory(t *testing.T) (GameFactory, *Selection) {
	t.Helper()
	var last Selection
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func(sel Selection) registry.Game {
		last = sel
		return snake.New(
			snake.WithSettings(sel.Difficulty, sel.Mode, sel.Algorithm),
			snake.WithDuel(sel.Duel),
			snake.WithClock(func() time.Time { return start }),
		)
	}, &last
}

func send(m SessionModel, msgs ...tea.Msg) SessionModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}
	return m
}

func TestSessionFlow(t *testing.T) {
	factory, last := testFactory(t)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	m := NewSessionModel(factory, cfg, DefaultSelection())

	if !strings.Contains(m.View(), "Start") {
		t.Error("session should open on the setup menu")
	}

	// Enable the rival, then start.
	m = send(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("Start should launch a game")
	}
	if !last.Duel || m.gameModel.game.ID() != "snake_duel" {
		t.Errorf("game = %s, selection = %+v", m.gameModel.game.ID(), *last)
	}

	// Back is ignored while the episode is live.
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{}, tea.KeyMsg{Type: tea.KeyEsc}, TickMsg{})
	if m.gameModel == nil {
		t.Fatal("esc should not leave a running game")
	}
	if !strings.Contains(m.View(), "Rival") {
		t.Error("game view should show the HUD")
	}

	// Pause, then back returns to the menu with the same selection.
	m = send(m, runeKey("p"), TickMsg{}, tea.KeyMsg{Type: tea.KeyEsc})
	if m.gameModel != nil {
		t.Fatal("esc while paused should return to the menu")
	}
	if !m.setup.selection.Duel {
		t.Error("menu should keep the previous selection")
	}

	m = send(m, runeKey("q"))
	if !m.quitting {
		t.Error("q should quit the session")
	}
}

func TestModelQuit(t *testing.T) {
	factory, _ := testFactory(t)
	model := NewModel(factory(DefaultSelection()), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	model.Init()

	next, cmd := model.Update(runeKey("q"))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.SetCell(2, 0, '@', core.ColorBrightGreen)
	s.SetCell(0, 1, '#', core.ColorGray)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"ab", "@"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("line 0 %q missing %q", lines[0], want)
		}
	}
	if !strings.Contains(lines[1], "#") {
		t.Errorf("line 1 %q missing #", lines[1])
	}
}
