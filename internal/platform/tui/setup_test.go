package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-pathfinder/internal/config"
	"github.com/vovakirdan/snake-pathfinder/internal/games/snake/pathfind"
)

func press(m SetupModel, msgs ...tea.KeyMsg) SetupModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(SetupModel)
	}
	return m
}

func TestSetupCyclesValues(t *testing.T) {
	up := tea.KeyMsg{Type: tea.KeyUp}
	right := tea.KeyMsg{Type: tea.KeyRight}
	left := tea.KeyMsg{Type: tea.KeyLeft}

	m := NewSetupModel(DefaultSelection(), 80, 24)

	// Cursor starts on Start; one up is the rival toggle.
	m = press(m, up, right)
	if !m.selection.Duel {
		t.Error("rival should be toggled on")
	}

	m = press(m, up, right)
	if m.selection.Algorithm != pathfind.DepthFirst {
		t.Errorf("algorithm = %v, want DFS", m.selection.Algorithm)
	}
	m = press(m, left, left)
	if m.selection.Algorithm != pathfind.Bidirectional {
		t.Errorf("algorithm = %v, want wrap to Bidirectional", m.selection.Algorithm)
	}

	m = press(m, up, left)
	if m.selection.Mode != config.ModeSurvival {
		t.Errorf("mode = %v, want wrap to survival", m.selection.Mode)
	}

	m = press(m, up, right)
	if m.selection.Difficulty != config.DifficultyHard {
		t.Errorf("difficulty = %v, want hard", m.selection.Difficulty)
	}

	if m.Selected() != nil {
		t.Error("nothing selected before Start")
	}
}

func TestSetupStart(t *testing.T) {
	m := NewSetupModel(DefaultSelection(), 80, 24)

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	if *sel != DefaultSelection() {
		t.Errorf("selection = %+v", *sel)
	}
	if sel.GameID() != "snake" {
		t.Errorf("GameID() = %q", sel.GameID())
	}
	sel.Duel = true
	if sel.GameID() != "snake_duel" {
		t.Errorf("GameID() = %q", sel.GameID())
	}
}

func TestSetupBackQuits(t *testing.T) {
	m := press(NewSetupModel(DefaultSelection(), 80, 24), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsQuitting() || m.Selected() != nil {
		t.Error("esc should leave without a selection")
	}
}
