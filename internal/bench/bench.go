// Package bench runs headless autopilot episodes to compare search
// strategies. Episodes run on a synthetic clock, so a run is reproducible
// from its seed and finishes as fast as the CPU allows.
package bench

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-pathfinder/internal/config"
	"github.com/vovakirdan/snake-pathfinder/internal/core"
	"github.com/vovakirdan/snake-pathfinder/internal/games/snake"
	"github.com/vovakirdan/snake-pathfinder/internal/games/snake/pathfind"
	"github.com/vovakirdan/snake-pathfinder/internal/storage"
)

// ReasonTruncated marks an episode stopped by the tick limit.
const ReasonTruncated = "truncated"

// Options configures a benchmark run.
type Options struct {
	Config     config.SnakeConfig
	Difficulty config.Difficulty
	Mode       config.GameMode
	Algorithms []pathfind.Algorithm
	Duel       bool
	Episodes   int    // Per algorithm
	Seed       int64  // First seed; episode i uses Seed+i
	TickRate   int    // Synthetic ticks per second
	MaxTicks   uint64 // Running ticks before an episode is cut off
	Logger     *log.Logger
}

// DefaultOptions returns a run of ten classic episodes per algorithm.
func DefaultOptions() Options {
	return Options{
		Config:     config.DefaultSnakeConfig(),
		Difficulty: config.DifficultyNormal,
		Mode:       config.ModeClassic,
		Algorithms: pathfind.Algorithms(),
		Episodes:   10,
		Seed:       1,
		TickRate:   60,
		MaxTicks:   200_000,
	}
}

// Recorder receives every finished episode.
type Recorder func(storage.Episode) error

// Run plays opts.Episodes episodes for every algorithm. Episodes sharing an
// index share a seed, so every algorithm faces the same boards. It stops
// between episodes when ctx is done.
func Run(ctx context.Context, opts Options, record Recorder) ([]storage.Episode, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var episodes []storage.Episode
	for _, a := range opts.Algorithms {
		for i := range opts.Episodes {
			if err := ctx.Err(); err != nil {
				return episodes, err
			}

			e := RunEpisode(opts, a, opts.Seed+int64(i))
			logger.Info("episode",
				"algorithm", e.Algorithm, "seed", e.Seed, "score", e.Score,
				"length", e.Length, "ticks", e.Ticks, "reason", e.EndReason)

			if record != nil {
				if err := record(e); err != nil {
					return episodes, err
				}
			}
			episodes = append(episodes, e)
		}
	}
	return episodes, nil
}

// RunEpisode plays one headless episode to the end or to the tick limit.
func RunEpisode(opts Options, a pathfind.Algorithm, seed int64) storage.Episode {
	tickRate := max(opts.TickRate, 1)
	clock := newSyntheticClock(time.Second / time.Duration(tickRate))

	gameOpts := []snake.Option{
		snake.WithConfig(opts.Config),
		snake.WithSettings(opts.Difficulty, opts.Mode, a),
		snake.WithDuel(opts.Duel),
		snake.WithClock(clock.Now),
	}
	if opts.Logger != nil {
		gameOpts = append(gameOpts, snake.WithLogger(opts.Logger.WithPrefix("engine")))
	}
	g := snake.New(gameOpts...)
	g.Reset(core.RuntimeConfig{TickRate: tickRate, Seed: seed})
	g.RequestPhase(snake.TransitionStart)

	for g.Phase() == snake.PhaseRunning && (opts.MaxTicks == 0 || g.Ticks() < opts.MaxTicks) {
		clock.Advance()
		g.Tick()
	}

	s := g.Snapshot()
	e := storage.Episode{
		GameID:     g.ID(),
		Algorithm:  s.Algorithm.String(),
		Difficulty: string(s.Difficulty),
		Mode:       string(s.Mode),
		Seed:       seed,
		Score:      s.Player.Score,
		Length:     len(s.Player.Body),
		Ticks:      int64(s.Tick),
		EndReason:  s.EndReason.String(),
	}
	if s.Phase != snake.PhaseGameOver {
		e.EndReason = ReasonTruncated
	}
	if s.Rival != nil {
		e.RivalScore = s.Rival.Score
	}
	return e
}

// Summarize aggregates episodes per algorithm the way the journal does,
// sorted by average score descending.
func Summarize(episodes []storage.Episode) []storage.AlgorithmStat {
	index := make(map[string]int)
	var stats []storage.AlgorithmStat
	for _, e := range episodes {
		i, ok := index[e.Algorithm]
		if !ok {
			i = len(stats)
			index[e.Algorithm] = i
			stats = append(stats, storage.AlgorithmStat{Algorithm: e.Algorithm})
		}
		st := &stats[i]
		st.Episodes++
		st.AvgScore += float64(e.Score)
		st.MaxScore = max(st.MaxScore, e.Score)
		st.AvgLength += float64(e.Length)
		st.AvgTicks += float64(e.Ticks)
	}

	for i := range stats {
		n := float64(stats[i].Episodes)
		stats[i].AvgScore /= n
		stats[i].AvgLength /= n
		stats[i].AvgTicks /= n
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].AvgScore != stats[j].AvgScore {
			return stats[i].AvgScore > stats[j].AvgScore
		}
		return stats[i].Algorithm < stats[j].Algorithm
	})
	return stats
}

// syntheticClock advances by one tick interval per call to Advance.
type syntheticClock struct {
	now  time.Time
	step time.Duration
}

func newSyntheticClock(step time.Duration) *syntheticClock {
	return &syntheticClock{now: time.Unix(0, 0).UTC(), step: step}
}

func (c *syntheticClock) Now() time.Time { return c.now }

func (c *syntheticClock) Advance() { c.now = c.now.Add(c.step) }
