package snake

import (
	"github.com/vovakirdan/snake-pathfinder/internal/config"
	"github.com/vovakirdan/snake-pathfinder/internal/games/snake/board"
	"github.com/vovakirdan/snake-pathfinder/internal/games/snake/pathfind"
)

// RequestDirection asks a snake to turn before its next move. It is ignored
// outside the running phase, for eliminated snakes, and for the exact
// reverse of the current heading.
func (g *Game) RequestDirection(id board.MoverID, d board.Dir) bool {
	if g.phase != PhaseRunning || !d.Valid() {
		return false
	}
	m, ok := g.roster.mover(id)
	if !ok || !m.alive {
		return false
	}
	if d == m.heading.Opposite() {
		return false
	}
	m.want = d
	m.steer = true
	return true
}

// RequestAlgorithm switches the search strategy. Every pending route is
// dropped so the next move is planned with the new strategy.
func (g *Game) RequestAlgorithm(a pathfind.Algorithm) bool {
	if !a.Valid() {
		g.log.Warn("ignoring unknown algorithm", "algorithm", int(a))
		return false
	}
	g.algorithm = a
	g.strategy = pathfind.New(a)
	for _, m := range g.roster.movers() {
		m.route = nil
	}
	g.log.Debug("algorithm changed", "algorithm", a)
	return true
}

// RequestModeChange applies new settings through a full rebuild, which
// returns the episode to the idle phase.
func (g *Game) RequestModeChange(d config.Difficulty, m config.GameMode, duel bool) bool {
	if !d.Valid() || !m.Valid() {
		g.log.Warn("ignoring unknown mode", "difficulty", d, "mode", m)
		return false
	}
	g.difficulty = d
	g.mode = m
	g.duel = duel
	g.rebuild()
	return true
}

// RequestPhase validates t against the transition table and applies it.
func (g *Game) RequestPhase(t Transition) bool {
	edge, ok := transitions[t]
	if !ok || g.phase != edge.from || g.tooSmall {
		return false
	}

	g.now = g.clock()
	switch t {
	case TransitionStart:
		g.challengeStart = g.now
	case TransitionPause:
		g.pausedAt = g.now
	case TransitionResume:
		// Time spent paused does not count against any timer.
		shift := g.now.Sub(g.pausedAt)
		g.challengeStart = g.challengeStart.Add(shift)
		g.doubleStart = g.doubleStart.Add(shift)
	case TransitionRestart:
		g.rebuild()
	}
	g.phase = edge.to
	g.log.Debug("phase", "transition", t, "phase", g.phase)
	return true
}

// Tick advances the simulation by one frame and reports whether the snakes
// moved. Outside the running phase it does nothing.
func (g *Game) Tick() bool {
	if g.phase != PhaseRunning || g.tooSmall {
		return false
	}
	g.tick++
	g.now = g.clock()

	g.updateTimers()
	if g.phase != PhaseRunning {
		return false
	}

	g.cadence++
	if float64(g.cadence) < g.cooldown {
		return false
	}
	g.cadence = 0

	// The player resolves completely before the rival plans on the result.
	for _, m := range g.roster.movers() {
		if g.phase != PhaseRunning {
			break
		}
		if m.alive {
			g.advance(m)
		}
	}
	return true
}

func (g *Game) updateTimers() {
	if g.mode == config.ModeChallenge && g.mc.ChallengeDuration > 0 &&
		g.now.Sub(g.challengeStart) >= g.mc.ChallengeDuration {
		g.end(EndTimeUp)
		return
	}
	if g.doubleActive && g.now.Sub(g.doubleStart) >= g.mc.DoubleDuration {
		g.doubleActive = false
		g.log.Debug("double score expired")
	}
}

// advance moves one snake a single cell.
func (g *Game) advance(m *mover) {
	head, _ := g.board.Head(m.id)

	var next board.Cell
	if m.steered() {
		m.heading = m.want
		m.steer = false
		m.route = nil
		next = head.Step(m.heading)
		if !g.board.View().Allows(m.id, next) {
			g.eliminate(m, EndCollision)
			return
		}
	} else {
		var ok bool
		next, ok = g.plan(m, head)
		if !ok {
			if food, _ := g.board.Food(); food == head {
				return
			}
			g.eliminate(m, EndNoMove)
			return
		}
		if d, adjacent := board.DirBetween(head, next); adjacent {
			m.heading = d
			m.want = d
		}
	}

	food, bonus := g.board.Food()
	eats := next == food
	g.board.Advance(m.id, next, eats)
	if eats {
		g.consume(m, bonus)
	}
}

// plan returns the next route cell for an autopilot snake. A stale route is
// dropped and computed again on the current board.
func (g *Game) plan(m *mover, head board.Cell) (board.Cell, bool) {
	v := g.board.View()
	if len(m.route) > 0 {
		next := m.route[0]
		if next.Manhattan(head) == 1 && v.Allows(m.id, next) {
			m.route = m.route[1:]
			return next, true
		}
		g.log.Debug("route invalidated", "mover", m.id, "at", next)
	}

	m.route = g.strategy.FindRoute(v, m.id)
	if len(m.route) == 0 {
		return head, false
	}
	next := m.route[0]
	m.route = m.route[1:]
	return next, true
}

// consume scores a meal, relocates the food and drops every route, all within
// the current tick.
func (g *Game) consume(m *mover, bonus bool) {
	points := 1
	if bonus {
		points = g.mc.BonusPoints
	}
	if g.doubleActive {
		points *= 2
	}
	m.score += points

	g.board.PlaceFood(g.rng, g.mc.BonusFoodChance)
	for _, other := range g.roster.movers() {
		other.route = nil
	}

	// Only the player's score drives double score and the survival ramp.
	if m.id == board.Player {
		if !g.doubleActive && g.mc.DoubleThreshold > 0 && g.mc.DoubleDuration > 0 &&
			m.score >= g.mc.DoubleThreshold {
			g.doubleActive = true
			g.doubleStart = g.now
			g.log.Debug("double score active", "score", m.score)
		}
		if g.mode == config.ModeSurvival {
			g.cooldown = g.ramp.Observe(m.score)
		}
	}
	g.log.Debug("food eaten", "mover", m.id, "points", points, "score", m.score, "bonus", bonus)
}

// eliminate removes a snake from play. Whether the episode ends with it is
// up to the roster.
func (g *Game) eliminate(m *mover, reason EndReason) {
	m.alive = false
	m.reason = reason
	m.route = nil
	g.board.Deactivate(m.id)
	g.log.Info("mover eliminated", "mover", m.id, "reason", reason, "score", m.score)

	if g.roster.endsEpisode(m) {
		g.end(reason)
	}
}

func (g *Game) end(reason EndReason) {
	g.phase = PhaseGameOver
	g.reason = reason
	for _, m := range g.roster.movers() {
		m.route = nil
	}
	g.log.Debug("episode over", "reason", reason, "ticks", g.tick)
}
