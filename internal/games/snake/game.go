// Package snake implements the pathfinding snake simulation: one autopilot
// snake, or a player against an autopilot rival, chasing food on a bounded
// grid with obstacles.
package snake

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-pathfinder/internal/config"
	"github.com/vovakirdan/snake-pathfinder/internal/core"
	"github.com/vovakirdan/snake-pathfinder/internal/games/snake/board"
	"github.com/vovakirdan/snake-pathfinder/internal/games/snake/pathfind"
	"github.com/vovakirdan/snake-pathfinder/internal/registry"
)

const (
	hudHeight    = 2 // Status line and separator
	footerHeight = 1
	cellWidth    = 2 // Screen columns per grid cell
	minGridSize  = 10
)

// Game is the simulation engine. It owns the board and is its only writer.
type Game struct {
	cfg        config.SnakeConfig
	difficulty config.Difficulty
	mode       config.GameMode
	algorithm  pathfind.Algorithm
	duel       bool

	clock func() time.Time
	log   *log.Logger

	rng      *rand.Rand
	board    *board.Board
	strategy pathfind.Strategy
	roster   roster
	mc       config.ModeConfig
	ramp     *config.SpeedRamp

	phase    Phase
	reason   EndReason
	tick     uint64
	cadence  int
	cooldown float64

	now            time.Time
	pausedAt       time.Time
	challengeStart time.Time
	doubleActive   bool
	doubleStart    time.Time

	runtime  core.RuntimeConfig
	tooSmall bool
}

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the tuning the episodes are resolved from.
func WithConfig(cfg config.SnakeConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithSettings selects the difficulty, game mode and search strategy.
func WithSettings(d config.Difficulty, m config.GameMode, a pathfind.Algorithm) Option {
	return func(g *Game) {
		g.difficulty = d
		g.mode = m
		g.algorithm = a
	}
}

// WithDuel adds the rival snake.
func WithDuel(duel bool) Option {
	return func(g *Game) { g.duel = duel }
}

// WithClock replaces the wall clock used for mode timers.
func WithClock(clock func() time.Time) Option {
	return func(g *Game) { g.clock = clock }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.log = l }
}

var defaultOptions []Option

// SetDefaultOptions sets options applied to every game the registry creates.
func SetDefaultOptions(opts ...Option) {
	defaultOptions = opts
}

// New creates a game. Call Reset before the first Step.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:        config.DefaultSnakeConfig(),
		difficulty: config.DifficultyNormal,
		mode:       config.ModeClassic,
		algorithm:  pathfind.BreadthFirst,
		clock:      time.Now,
		log:        log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if !g.difficulty.Valid() {
		g.difficulty = config.DifficultyNormal
	}
	if !g.mode.Valid() {
		g.mode = config.ModeClassic
	}
	if !g.algorithm.Valid() {
		g.algorithm = pathfind.BreadthFirst
	}
	g.strategy = pathfind.New(g.algorithm)
	return g
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New(defaultOptions...)
	})
	registry.Register("snake_duel", func() registry.Game {
		return New(append(append([]Option(nil), defaultOptions...), WithDuel(true))...)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.duel {
		return "snake_duel"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.duel {
		return "Snake Pathfinder (Duel)"
	}
	return "Snake Pathfinder"
}

// Reset reseeds the game, fits the grid to the screen and rebuilds every
// entity. The episode waits in the idle phase.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.runtime = cfg
	g.rebuild()
}

// gridSize picks the board dimensions: the configured grid, shrunk to the
// screen when there is one.
func (g *Game) gridSize() (w, h int, ok bool) {
	w, h = g.cfg.Grid.Width, g.cfg.Grid.Height
	if g.runtime.Headless() {
		return w, h, w >= 2 && h >= 2
	}
	w = min(w, (g.runtime.ScreenW-2)/cellWidth)
	h = min(h, g.runtime.ScreenH-hudHeight-footerHeight-2)
	return w, h, w >= minGridSize && h >= minGridSize
}

// rebuild recreates board, snakes, obstacles and food for the current
// settings and returns to the idle phase.
func (g *Game) rebuild() {
	w, h, ok := g.gridSize()
	g.tooSmall = !ok
	if !ok {
		w, h = max(w, 2), max(h, 2)
	}

	g.mc = g.cfg.Resolve(g.difficulty, g.mode)
	g.ramp = config.NewSpeedRamp(g.mc.Ramp, g.mc.MoveCooldown)
	g.cooldown = g.mc.MoveCooldown
	g.board = board.New(w, h)

	player := newMover(board.Player, g.randomDir(), g.duel)
	g.board.SetBody(board.Player, []board.Cell{board.C(w/4, h/2)})
	if g.duel {
		rival := newMover(board.Rival, g.randomDir(), false)
		g.board.SetBody(board.Rival, []board.Cell{board.C(3*w/4, h/2)})
		g.roster = duelRoster{player: player, rival: rival}
	} else {
		g.roster = soloRoster{player: player}
	}

	if placed := g.board.ScatterObstacles(g.rng, g.mc.Obstacles, g.mc.SafeRadius); placed < g.mc.Obstacles {
		g.log.Warn("obstacle placement exhausted", "placed", placed, "wanted", g.mc.Obstacles)
	}
	g.board.PlaceFood(g.rng, g.mc.BonusFoodChance)

	g.phase = PhaseIdle
	g.reason = EndNone
	g.tick = 0
	g.cadence = 0
	g.doubleActive = false
	g.now = g.clock()
	g.log.Debug("episode ready",
		"width", g.board.Width(), "height", g.board.Height(),
		"difficulty", g.difficulty, "mode", g.mode,
		"algorithm", g.algorithm, "duel", g.duel)
}

func (g *Game) randomDir() board.Dir {
	return board.Dirs[g.rng.Intn(len(board.Dirs))]
}

// Step maps platform input onto engine requests and advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch {
	case in.Has(core.ActionRestart) && g.phase == PhaseGameOver:
		g.RequestPhase(TransitionRestart)
	case in.Has(core.ActionConfirm) && g.phase == PhaseIdle:
		g.RequestPhase(TransitionStart)
	case in.Has(core.ActionPause):
		if g.phase == PhasePaused {
			g.RequestPhase(TransitionResume)
		} else {
			g.RequestPhase(TransitionPause)
		}
	}

	if in.Has(core.ActionCycleAlgorithm) {
		g.RequestAlgorithm(g.algorithm.Next())
	}
	switch {
	case in.Has(core.ActionCycleMode):
		g.RequestModeChange(g.difficulty, g.mode.Next(), g.duel)
	case in.Has(core.ActionCycleDifficulty):
		g.RequestModeChange(g.difficulty.Next(), g.mode, g.duel)
	case in.Has(core.ActionToggleDuel):
		g.RequestModeChange(g.difficulty, g.mode, !g.duel)
	}

	for _, s := range steering {
		if in.Has(s.action) {
			g.RequestDirection(board.Player, s.dir)
		}
	}

	moved := g.Tick()
	return core.StepResult{State: g.State(), Moved: moved}
}

var steering = []struct {
	action core.Action
	dir    board.Dir
}{
	{core.ActionUp, board.DirUp},
	{core.ActionDown, board.DirDown},
	{core.ActionLeft, board.DirLeft},
	{core.ActionRight, board.DirRight},
}

// State returns the player's score and the coarse phase.
func (g *Game) State() core.GameState {
	player, _ := g.roster.mover(board.Player)
	return core.GameState{
		Score:    player.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused || g.tooSmall,
	}
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Ticks returns the number of running ticks since the last rebuild.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// Settings returns the active difficulty, mode, algorithm and duel flag.
func (g *Game) Settings() (config.Difficulty, config.GameMode, pathfind.Algorithm, bool) {
	return g.difficulty, g.mode, g.algorithm, g.duel
}
