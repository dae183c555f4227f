package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-pathfinder/internal/config"
	"github.com/vovakirdan/snake-pathfinder/internal/core"
	"github.com/vovakirdan/snake-pathfinder/internal/games/snake"
	"github.com/vovakirdan/snake-pathfinder/internal/games/snake/pathfind"
	"github.com/vovakirdan/snake-pathfinder/internal/platform/tui"
	"github.com/vovakirdan/snake-pathfinder/internal/registry"
)

var (
	flagDifficulty string
	flagMode       string
	flagAlgo       string
	flagDuel       bool
	flagMenu       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the simulation in the terminal. The setup menu opens first unless
--menu=false is given.

Controls:
  Arrows/WASD - Steer (solo: overrides the autopilot for one move)
  Enter       - Start
  P/Space     - Pause / resume
  Tab         - Cycle search algorithm
  M / N       - Cycle game mode / difficulty (restarts the episode)
  V           - Toggle the rival (restarts the episode)
  R           - Restart (after game over)
  Esc         - Back to the setup menu (paused or game over)
  Ctrl+S      - Save a text screenshot to ~/.snake/screenshots
  Q/Ctrl+C    - Quit

Examples:
  snake play
  snake play --difficulty hard --mode challenge
  snake play --algo bidirectional --duel --menu=false
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addSettingsFlags(playCmd)
	addAlgoFlag(playCmd)
	playCmd.Flags().BoolVar(&flagMenu, "menu", true, "Open the setup menu before playing")
}

// addSettingsFlags registers the flags that pick an episode's settings.
func addSettingsFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty: easy, normal, hard")
	cmd.Flags().StringVar(&flagMode, "mode", "classic", "Game mode: classic, challenge, survival")
	cmd.Flags().BoolVar(&flagDuel, "duel", false, "Add an autopilot rival and steer the player yourself")
}

func addAlgoFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagAlgo, "algo", "bfs", "Search algorithm: bfs, dfs, bidirectional")
}

// modeFromFlags parses --difficulty and --mode.
func modeFromFlags() (config.Difficulty, config.GameMode, error) {
	d, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return d, "", err
	}
	m, err := config.ParseGameMode(flagMode)
	return d, m, err
}

// selectionFromFlags parses the settings flags.
func selectionFromFlags() (tui.Selection, error) {
	d, m, err := modeFromFlags()
	if err != nil {
		return tui.Selection{}, err
	}
	a, err := pathfind.ParseAlgorithm(flagAlgo)
	if err != nil {
		return tui.Selection{}, err
	}
	return tui.Selection{Difficulty: d, Mode: m, Algorithm: a, Duel: flagDuel}, nil
}

// gameOptions returns the engine options for a selection.
func gameOptions(sel tui.Selection) []snake.Option {
	return []snake.Option{
		snake.WithConfig(snakeCfg),
		snake.WithSettings(sel.Difficulty, sel.Mode, sel.Algorithm),
	}
}

// newGameFactory builds games for interactive sessions. Without a
// WithLogger option the engine stays silent, since the TUI owns the terminal.
func newGameFactory(extra ...snake.Option) tui.GameFactory {
	return func(sel tui.Selection) registry.Game {
		opts := append(gameOptions(sel), snake.WithDuel(sel.Duel))
		return snake.New(append(opts, extra...)...)
	}
}

func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

func runPlay(_ *cobra.Command, _ []string) error {
	sel, err := selectionFromFlags()
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = terminalSize()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	if flagMenu {
		return tui.RunSession(newGameFactory(), cfg, sel)
	}

	// Without the menu the variant comes straight from the registry.
	snake.SetDefaultOptions(gameOptions(sel)...)
	game, err := registry.Create(sel.GameID())
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	return tui.Run(game, cfg)
}
