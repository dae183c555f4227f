package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-pathfinder/internal/config"
	"github.com/vovakirdan/snake-pathfinder/internal/games/snake/pathfind"
	"github.com/vovakirdan/snake-pathfinder/internal/platform/tui"
	"github.com/vovakirdan/snake-pathfinder/internal/storage"
)

var (
	flagStatsDifficulty string
	flagStatsMode       string
	flagStatsAlgo       string
	flagTop             int
	flagRecent          int
	flagPlain           bool
	flagClear           bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Compare algorithms from recorded episodes",
	Long: `Aggregate the episode journal per algorithm. In a terminal this opens an
interactive table; --plain (or a redirected stdout) prints text instead,
followed by the best episodes.

Examples:
  snake stats
  snake stats --difficulty hard --plain
  snake stats --algo dfs --top 5 --plain
  snake stats --plain --recent 20
  snake stats --clear`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&flagStatsDifficulty, "difficulty", "", "Only episodes at this difficulty")
	statsCmd.Flags().StringVar(&flagStatsMode, "mode", "", "Only episodes in this game mode")
	statsCmd.Flags().StringVar(&flagStatsAlgo, "algo", "", "Only episodes of this algorithm (plain output)")
	statsCmd.Flags().IntVar(&flagTop, "top", 10, "Number of best episodes to list (plain output)")
	statsCmd.Flags().IntVar(&flagRecent, "recent", 0, "Also list the most recent episodes (plain output)")
	statsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print text instead of the interactive table")
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded episode")
}

// statsFilter validates the filter flags. Empty flags match everything.
func statsFilter() (storage.Filter, error) {
	var f storage.Filter
	if flagStatsDifficulty != "" {
		d, err := config.ParseDifficulty(flagStatsDifficulty)
		if err != nil {
			return f, err
		}
		f.Difficulty = string(d)
	}
	if flagStatsMode != "" {
		m, err := config.ParseGameMode(flagStatsMode)
		if err != nil {
			return f, err
		}
		f.Mode = string(m)
	}
	if flagStatsAlgo != "" {
		a, err := pathfind.ParseAlgorithm(flagStatsAlgo)
		if err != nil {
			return f, err
		}
		f.Algorithm = a.String()
	}
	return f, nil
}

func runStats(_ *cobra.Command, _ []string) error {
	filter, err := statsFilter()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		n, err := store.ClearEpisodes()
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d episodes.\n", n)
		return nil
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := terminalSize()
		return tui.RunStats(store, filter, width, height)
	}

	stats, err := store.AlgorithmStats(filter)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No episodes recorded yet.")
		fmt.Println()
		fmt.Println("Run 'snake bench' to record some.")
		return nil
	}
	printSummary(stats)

	top, err := store.TopEpisodes(filter, flagTop)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Best episodes:")
	printEpisodes(top)

	if flagRecent > 0 {
		recent, err := store.RecentEpisodes(flagRecent)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println("Recent episodes:")
		printEpisodes(recent)
	}
	return nil
}

func printEpisodes(episodes []storage.Episode) {
	fmt.Printf("  %-4s  %-14s  %-8s  %-10s  %6s  %6s  %8s  %-10s  %s\n",
		"#", "Algorithm", "Level", "Mode", "Seed", "Score", "Ticks", "End", "Date")
	for i, e := range episodes {
		fmt.Printf("  %-4d  %-14s  %-8s  %-10s  %6d  %6d  %8d  %-10s  %s\n",
			i+1, e.Algorithm, e.Difficulty, e.Mode, e.Seed, e.Score, e.Ticks, e.EndReason,
			e.CreatedAt.Format("2006-01-02 15:04"))
	}
}
