package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/snake-pathfinder/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_b", func() Game { return stubGame{"test_b"} })
	Register("test_a", func() Game { return stubGame{"test_a"} })

	if !Exists("test_a") {
		t.Fatal("test_a should be registered")
	}

	g, err := Create("test_b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "test_b" {
		t.Errorf("ID() = %q", g.ID())
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "test_a" && info.Title != "Stub test_a" {
			t.Errorf("title = %q", info.Title)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List not sorted: %v", ids)
		}
	}

	if _, err := Create("missing"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("expected ErrUnknownGame, got %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return stubGame{"test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("test_dup", func() Game { return stubGame{"test_dup"} })
}
