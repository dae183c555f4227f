// Package config provides YAML-based snake tuning and resolves a difficulty
// and game mode into the parameter set the engine runs with.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrUnknownDifficulty is returned when a difficulty name cannot be parsed.
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	// ErrUnknownGameMode is returned when a game mode name cannot be parsed.
	ErrUnknownGameMode = errors.New("unknown game mode")
)

// SnakeConfig contains all tuning for the snake simulation.
type SnakeConfig struct {
	Grid      GridConfig                    `yaml:"grid"`
	Presets   map[Difficulty]DifficultyPreset `yaml:"presets"`
	Scoring   ScoringConfig                 `yaml:"scoring"`
	Challenge ChallengeConfig               `yaml:"challenge"`
	Survival  SurvivalConfig                `yaml:"survival"`
	Obstacles ObstacleConfig                `yaml:"obstacles"`
}

// GridConfig defines the board size.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DifficultyPreset holds the values selected by a difficulty.
type DifficultyPreset struct {
	MoveCooldown    float64          `yaml:"move_cooldown"`     // Ticks between moves
	BonusFoodChance float64          `yaml:"bonus_food_chance"` // Probability that new food is bonus food
	Obstacles       map[GameMode]int `yaml:"obstacles"`         // Obstacle count per game mode
}

// ScoringConfig defines food value and the double-score window.
type ScoringConfig struct {
	BonusPoints     int `yaml:"bonus_points"`
	DoubleThreshold int `yaml:"double_threshold"`
	DoubleSecs      int `yaml:"double_secs"`
}

// ChallengeConfig defines the challenge countdown.
type ChallengeConfig struct {
	DurationSecs int `yaml:"duration_secs"`
}

// SurvivalConfig defines the survival speed ramp.
type SurvivalConfig struct {
	Every       int     `yaml:"every"`        // Points per ramp level
	Step        float64 `yaml:"step"`         // Cooldown reduction per level
	MinCooldown float64 `yaml:"min_cooldown"` // Floor for the cooldown
}

// ObstacleConfig defines obstacle placement.
type ObstacleConfig struct {
	SafeRadius int `yaml:"safe_radius"` // Chebyshev distance kept clear around heads
}

// Difficulty is a named difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists every difficulty in cycling order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParseDifficulty parses a difficulty name, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if d.Valid() {
		return d, nil
	}
	return DifficultyNormal, fmt.Errorf("config: %q: %w", s, ErrUnknownDifficulty)
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// Next returns the following difficulty, wrapping around.
func (d Difficulty) Next() Difficulty {
	return next(Difficulties(), d)
}

// Title returns the display name.
func (d Difficulty) Title() string {
	return title(string(d))
}

// GameMode is a named rule set.
type GameMode string

const (
	ModeClassic   GameMode = "classic"
	ModeChallenge GameMode = "challenge"
	ModeSurvival  GameMode = "survival"
)

// GameModes lists every game mode in cycling order.
func GameModes() []GameMode {
	return []GameMode{ModeClassic, ModeChallenge, ModeSurvival}
}

// ParseGameMode parses a game mode name, case-insensitively.
func ParseGameMode(s string) (GameMode, error) {
	m := GameMode(strings.ToLower(strings.TrimSpace(s)))
	if m.Valid() {
		return m, nil
	}
	return ModeClassic, fmt.Errorf("config: %q: %w", s, ErrUnknownGameMode)
}

// Valid reports whether m is a known game mode.
func (m GameMode) Valid() bool {
	switch m {
	case ModeClassic, ModeChallenge, ModeSurvival:
		return true
	}
	return false
}

// Next returns the following game mode, wrapping around.
func (m GameMode) Next() GameMode {
	return next(GameModes(), m)
}

// Title returns the display name.
func (m GameMode) Title() string {
	return title(string(m))
}

// ModeConfig is the immutable parameter set an episode runs with.
type ModeConfig struct {
	Difficulty      Difficulty
	Mode            GameMode
	MoveCooldown    float64
	BonusFoodChance float64
	Obstacles       int

	BonusPoints       int
	DoubleThreshold   int
	DoubleDuration    time.Duration
	ChallengeDuration time.Duration
	SafeRadius        int
	Ramp              SurvivalConfig
}

// Resolve picks the parameters for a difficulty and game mode. Unknown
// presets fall back to the hard-coded defaults.
func (c SnakeConfig) Resolve(d Difficulty, m GameMode) ModeConfig {
	preset, ok := c.Presets[d]
	if !ok {
		preset = DefaultSnakeConfig().Presets[d]
	}

	return ModeConfig{
		Difficulty:        d,
		Mode:              m,
		MoveCooldown:      max(1, preset.MoveCooldown),
		BonusFoodChance:   clampF(preset.BonusFoodChance, 0, 1),
		Obstacles:         max(0, preset.Obstacles[m]),
		BonusPoints:       max(1, c.Scoring.BonusPoints),
		DoubleThreshold:   c.Scoring.DoubleThreshold,
		DoubleDuration:    time.Duration(c.Scoring.DoubleSecs) * time.Second,
		ChallengeDuration: time.Duration(c.Challenge.DurationSecs) * time.Second,
		SafeRadius:        c.Obstacles.SafeRadius,
		Ramp:              c.Survival,
	}
}

func next[T comparable](all []T, cur T) T {
	for i, v := range all {
		if v == cur {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
