package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-pathfinder/internal/bench"
	"github.com/vovakirdan/snake-pathfinder/internal/games/snake/pathfind"
	"github.com/vovakirdan/snake-pathfinder/internal/storage"
)

var (
	flagBenchAlgos string
	flagEpisodes   int
	flagMaxTicks   uint64
	flagNoSave     bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run headless autopilot episodes",
	Long: `Play seeded episodes without a screen, on a synthetic clock, and record
each one in the episode journal. Every algorithm plays the same seeds, so
the results compare route quality on identical boards.

--algo takes one algorithm, a comma-separated list, or "all".

Examples:
  snake bench
  snake bench --episodes 100 --algo bfs,dfs
  snake bench --difficulty hard --mode survival --seed 42
  snake bench --no-save --log-level warn`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	addSettingsFlags(benchCmd)
	benchCmd.Flags().StringVar(&flagBenchAlgos, "algo", "all", "Algorithms to run: all or a comma-separated list")
	benchCmd.Flags().IntVar(&flagEpisodes, "episodes", 10, "Episodes per algorithm")
	benchCmd.Flags().Uint64Var(&flagMaxTicks, "max-ticks", 200_000, "Running ticks before an episode is cut off (0 = no limit)")
	benchCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record episodes in the journal")
}

// parseAlgorithms accepts "all" or a comma-separated list of names.
func parseAlgorithms(s string) ([]pathfind.Algorithm, error) {
	if strings.EqualFold(s, "all") {
		return pathfind.Algorithms(), nil
	}
	var algos []pathfind.Algorithm
	for _, name := range strings.Split(s, ",") {
		a, err := pathfind.ParseAlgorithm(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		algos = append(algos, a)
	}
	return algos, nil
}

func runBench(_ *cobra.Command, _ []string) error {
	difficulty, mode, err := modeFromFlags()
	if err != nil {
		return err
	}
	algos, err := parseAlgorithms(flagBenchAlgos)
	if err != nil {
		return err
	}

	opts := bench.DefaultOptions()
	opts.Config = snakeCfg
	opts.Difficulty = difficulty
	opts.Mode = mode
	opts.Algorithms = algos
	opts.Duel = flagDuel
	opts.Episodes = flagEpisodes
	opts.TickRate = flagFPS
	opts.MaxTicks = flagMaxTicks
	opts.Logger = logger
	if flagSeed != 0 {
		opts.Seed = flagSeed
	}

	var record bench.Recorder
	if !flagNoSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		record = func(e storage.Episode) error {
			_, err := store.SaveEpisode(e)
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	episodes, err := bench.Run(ctx, opts, record)
	printSummary(bench.Summarize(episodes))
	if err != nil {
		return fmt.Errorf("benchmark stopped after %d episodes: %w", len(episodes), err)
	}
	return nil
}

func printSummary(stats []storage.AlgorithmStat) {
	if len(stats) == 0 {
		fmt.Println("No episodes played.")
		return
	}
	fmt.Printf("  %-14s  %8s  %9s  %5s  %10s  %10s\n", "Algorithm", "Episodes", "Avg score", "Best", "Avg length", "Avg ticks")
	fmt.Printf("  %-14s  %8s  %9s  %5s  %10s  %10s\n", "---------", "--------", "---------", "----", "----------", "---------")
	for _, s := range stats {
		fmt.Printf("  %-14s  %8d  %9.1f  %5d  %10.1f  %10.0f\n",
			s.Algorithm, s.Episodes, s.AvgScore, s.MaxScore, s.AvgLength, s.AvgTicks)
	}
}
