package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded SnakeConfig
	if err := yaml.Unmarshal(DefaultYAML(), &embedded); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	hard := DefaultSnakeConfig()

	for _, d := range Difficulties() {
		for _, m := range GameModes() {
			if got, want := embedded.Resolve(d, m), hard.Resolve(d, m); got != want {
				t.Errorf("%s/%s: embedded %+v, hardcoded %+v", d, m, got, want)
			}
		}
	}
	if embedded.Grid != hard.Grid {
		t.Errorf("grid: embedded %+v, hardcoded %+v", embedded.Grid, hard.Grid)
	}
}

func TestResolve(t *testing.T) {
	cfg := DefaultSnakeConfig()

	tests := []struct {
		d         Difficulty
		m         GameMode
		cooldown  float64
		bonus     float64
		obstacles int
	}{
		{DifficultyEasy, ModeClassic, 7, 0.1, 0},
		{DifficultyEasy, ModeSurvival, 7, 0.1, 0},
		{DifficultyNormal, ModeClassic, 5, 0.2, 0},
		{DifficultyNormal, ModeChallenge, 5, 0.2, 5},
		{DifficultyHard, ModeClassic, 3, 0.3, 3},
		{DifficultyHard, ModeSurvival, 3, 0.3, 10},
	}

	for _, tc := range tests {
		mc := cfg.Resolve(tc.d, tc.m)
		if mc.MoveCooldown != tc.cooldown || mc.BonusFoodChance != tc.bonus || mc.Obstacles != tc.obstacles {
			t.Errorf("%s/%s: got cooldown %v bonus %v obstacles %d", tc.d, tc.m,
				mc.MoveCooldown, mc.BonusFoodChance, mc.Obstacles)
		}
	}

	mc := cfg.Resolve(DifficultyNormal, ModeChallenge)
	if mc.ChallengeDuration != 60*time.Second {
		t.Errorf("challenge duration = %v", mc.ChallengeDuration)
	}
	if mc.DoubleDuration != 10*time.Second || mc.DoubleThreshold != 10 {
		t.Errorf("double score = %v after %d", mc.DoubleDuration, mc.DoubleThreshold)
	}
	if mc.SafeRadius != 3 || mc.BonusPoints != 2 {
		t.Errorf("safe radius %d, bonus points %d", mc.SafeRadius, mc.BonusPoints)
	}
}

func TestParseNames(t *testing.T) {
	if d, err := ParseDifficulty(" Hard "); err != nil || d != DifficultyHard {
		t.Errorf("ParseDifficulty = %v, %v", d, err)
	}
	if _, err := ParseDifficulty("insane"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("expected ErrUnknownDifficulty, got %v", err)
	}
	if m, err := ParseGameMode("SURVIVAL"); err != nil || m != ModeSurvival {
		t.Errorf("ParseGameMode = %v, %v", m, err)
	}
	if _, err := ParseGameMode("zen"); !errors.Is(err, ErrUnknownGameMode) {
		t.Errorf("expected ErrUnknownGameMode, got %v", err)
	}

	if DifficultyHard.Next() != DifficultyEasy {
		t.Error("difficulty should wrap")
	}
	if ModeClassic.Next() != ModeChallenge {
		t.Error("mode order")
	}
	if ModeChallenge.Title() != "Challenge" {
		t.Errorf("title = %q", ModeChallenge.Title())
	}
}

func TestSpeedRamp(t *testing.T) {
	r := NewSpeedRamp(SurvivalConfig{Every: 5, Step: 0.5, MinCooldown: 1}, 3)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 3},
		{4, 3},
		{5, 2.5},
		{9, 2.5},
		{10, 2},
		{20, 1},
		{100, 1},
		{0, 1}, // never loosens
	}

	for _, tc := range tests {
		if got := r.Observe(tc.score); got != tc.expected {
			t.Errorf("Observe(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestSpeedRampDisabled(t *testing.T) {
	r := NewSpeedRamp(SurvivalConfig{}, 5)
	if r.Enabled() {
		t.Fatal("zero config should disable the ramp")
	}
	if got := r.Observe(50); got != 5 {
		t.Errorf("cooldown = %v, expected 5", got)
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	data := []byte("grid:\n  width: 20\n  height: 15\nchallenge:\n  duration_secs: 30\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake: %v", err)
	}
	if cfg.Grid.Width != 20 || cfg.Grid.Height != 15 {
		t.Errorf("grid = %+v", cfg.Grid)
	}
	if cfg.Challenge.DurationSecs != 30 {
		t.Errorf("challenge = %d", cfg.Challenge.DurationSecs)
	}
	// Untouched sections keep their defaults.
	if cfg.Scoring.DoubleThreshold != 10 {
		t.Errorf("double threshold = %d", cfg.Scoring.DoubleThreshold)
	}
}

func TestLoadSnakeErrors(t *testing.T) {
	if _, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("presets:\n  nightmare:\n    move_cooldown: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(bad); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("expected ErrUnknownDifficulty, got %v", err)
	}
}
