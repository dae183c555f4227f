package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  40,
			Height: 40,
		},
		Presets: map[Difficulty]DifficultyPreset{
			DifficultyEasy: {
				MoveCooldown:    7,
				BonusFoodChance: 0.1,
				Obstacles:       map[GameMode]int{ModeClassic: 0, ModeChallenge: 0, ModeSurvival: 0},
			},
			DifficultyNormal: {
				MoveCooldown:    5,
				BonusFoodChance: 0.2,
				Obstacles:       map[GameMode]int{ModeClassic: 0, ModeChallenge: 5, ModeSurvival: 5},
			},
			DifficultyHard: {
				MoveCooldown:    3,
				BonusFoodChance: 0.3,
				Obstacles:       map[GameMode]int{ModeClassic: 3, ModeChallenge: 10, ModeSurvival: 10},
			},
		},
		Scoring: ScoringConfig{
			BonusPoints:     2,
			DoubleThreshold: 10,
			DoubleSecs:      10,
		},
		Challenge: ChallengeConfig{
			DurationSecs: 60,
		},
		Survival: SurvivalConfig{
			Every:       5,
			Step:        0.5,
			MinCooldown: 1,
		},
		Obstacles: ObstacleConfig{
			SafeRadius: 3,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
