package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Start from the defaults so a partial file only overrides what it names.
	cfg := DefaultSnakeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, validate(cfg, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && validate(cfg, userCfgPath) == nil {
				return cfg, nil
			}
			cfg = DefaultSnakeConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && validate(cfg, "configs/snake.yaml") == nil {
			return cfg, nil
		}
		cfg = DefaultSnakeConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// validate rejects configurations the engine cannot run.
func validate(cfg SnakeConfig, source string) error {
	if cfg.Grid.Width < 2 || cfg.Grid.Height < 2 {
		return fmt.Errorf("config %s: grid %dx%d is too small", source, cfg.Grid.Width, cfg.Grid.Height)
	}
	for d, p := range cfg.Presets {
		if !d.Valid() {
			return fmt.Errorf("config %s: preset %q: %w", source, d, ErrUnknownDifficulty)
		}
		if p.MoveCooldown < 1 {
			return fmt.Errorf("config %s: preset %s: move_cooldown must be at least 1", source, d)
		}
		for m := range p.Obstacles {
			if !m.Valid() {
				return fmt.Errorf("config %s: preset %s: obstacles %q: %w", source, d, m, ErrUnknownGameMode)
			}
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}
