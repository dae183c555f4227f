// snake is a terminal snake simulation driven by pathfinding autopilots.
//
// Usage:
//
//	snake play               - Pick settings and play in the terminal
//	snake bench              - Run headless autopilot episodes and record them
//	snake stats              - Compare algorithms from recorded episodes
//	snake route              - Run one search on a hand-built board
//	snake serve              - Start SSH server for remote play
//	snake config             - Print the snake tuning in use
//	snake list               - List registered variants
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--db <path>         - Set journal path (default: ~/.snake/episodes.db)
//	--config <path>     - Load snake tuning from a YAML file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-pathfinder/internal/config"
	"github.com/vovakirdan/snake-pathfinder/internal/games/snake"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	logger   *log.Logger
	snakeCfg config.SnakeConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake Pathfinder - watch search algorithms play snake",
	Long: `Snake Pathfinder is a grid snake simulation whose snakes are steered by
BFS, DFS or bidirectional BFS. Play against an autopilot rival, benchmark the
algorithms headlessly, or inspect a single search on a hand-built board.

Available commands:
  play     - Pick settings and play in the terminal
  bench    - Run headless episodes and record them
  stats    - Compare algorithms from recorded episodes
  route    - Run one search on a hand-built board
  serve    - Start SSH server for remote play
  config   - Print the snake tuning in use
  list     - Show registered variants

Examples:
  snake play
  snake play --algo dfs --mode survival --menu=false
  snake bench --episodes 50 --difficulty hard
  snake stats --mode classic
  snake route --width 8 --height 8 --head 0,0 --food 7,7 --obstacle 3,3
  snake serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/episodes.db", "Path to episode journal")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setup builds the logger and loads the snake tuning shared by every command.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})

	snakeCfg, err = config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	snake.SetDefaultOptions(snake.WithConfig(snakeCfg))
	return nil
}
