package snake

import (
	"time"

	"github.com/vovakirdan/snake-pathfinder/internal/config"
	"github.com/vovakirdan/snake-pathfinder/internal/games/snake/board"
	"github.com/vovakirdan/snake-pathfinder/internal/games/snake/pathfind"
)

// MoverSnapshot is the read-only state of one snake.
type MoverSnapshot struct {
	ID        board.MoverID
	Body      []board.Cell // Head first
	Heading   board.Dir
	Score     int
	Alive     bool
	Reason    EndReason      // Why the snake was eliminated
	Route     pathfind.Route // Pending autopilot route
	Autopilot bool
}

// Head returns the head cell.
func (m MoverSnapshot) Head() (board.Cell, bool) {
	if len(m.Body) == 0 {
		return board.Cell{}, false
	}
	return m.Body[0], true
}

// Snapshot captures the complete game state for rendering, determinism
// testing and the episode journal.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	EndReason EndReason
	TooSmall  bool

	Difficulty config.Difficulty
	Mode       config.GameMode
	Algorithm  pathfind.Algorithm

	Width     int
	Height    int
	Obstacles []board.Cell
	Food      board.Cell
	HasFood   bool
	BonusFood bool

	Player MoverSnapshot
	Rival  *MoverSnapshot // nil unless the rival takes part

	DoubleActive       bool
	DoubleRemaining    time.Duration
	ChallengeRemaining time.Duration // Only meaningful in challenge mode
	MoveCooldown       float64
	RampLevel          int
}

// Snapshot returns a copy of the current state. Mutating it has no effect on
// the game.
func (g *Game) Snapshot() Snapshot {
	food, bonus := g.board.Food()
	s := Snapshot{
		Tick:         g.tick,
		Phase:        g.phase,
		EndReason:    g.reason,
		TooSmall:     g.tooSmall,
		Difficulty:   g.difficulty,
		Mode:         g.mode,
		Algorithm:    g.algorithm,
		Width:        g.board.Width(),
		Height:       g.board.Height(),
		Obstacles:    g.board.Obstacles(),
		Food:         food,
		HasFood:      food != board.NoFood,
		BonusFood:    bonus,
		DoubleActive: g.doubleActive,
		MoveCooldown: g.cooldown,
		RampLevel:    g.ramp.Level(),
	}

	for _, m := range g.roster.movers() {
		ms := g.moverSnapshot(m)
		if m.id == board.Player {
			s.Player = ms
		} else {
			s.Rival = &ms
		}
	}

	now := g.timerNow()
	if g.doubleActive {
		s.DoubleRemaining = max(0, g.mc.DoubleDuration-now.Sub(g.doubleStart))
	}
	if g.mode == config.ModeChallenge {
		s.ChallengeRemaining = g.mc.ChallengeDuration
		if g.phase != PhaseIdle {
			s.ChallengeRemaining = max(0, g.mc.ChallengeDuration-now.Sub(g.challengeStart))
		}
	}
	return s
}

// timerNow is the instant timers are read at: frozen while paused.
func (g *Game) timerNow() time.Time {
	if g.phase == PhasePaused {
		return g.pausedAt
	}
	return g.now
}

func (g *Game) moverSnapshot(m *mover) MoverSnapshot {
	return MoverSnapshot{
		ID:        m.id,
		Body:      g.board.Body(m.id),
		Heading:   m.heading,
		Score:     m.score,
		Alive:     m.alive,
		Reason:    m.reason,
		Route:     append(pathfind.Route(nil), m.route...),
		Autopilot: !m.manual,
	}
}

// Duel reports whether the rival takes part.
func (s Snapshot) Duel() bool {
	return s.Rival != nil
}

// Winner ranks a finished duel by score. It returns OutcomeNone for solo
// episodes and while the episode is still going.
func (s Snapshot) Winner() Outcome {
	if s.Rival == nil || s.Phase != PhaseGameOver {
		return OutcomeNone
	}
	switch {
	case s.Player.Score > s.Rival.Score:
		return OutcomePlayer
	case s.Rival.Score > s.Player.Score:
		return OutcomeRival
	default:
		return OutcomeDraw
	}
}
