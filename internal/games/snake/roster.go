package snake

import (
	"github.com/vovakirdan/snake-pathfinder/internal/games/snake/board"
	"github.com/vovakirdan/snake-pathfinder/internal/games/snake/pathfind"
)

// mover is the engine-side state of one snake. The body itself lives on the board.
type mover struct {
	id      board.MoverID
	heading board.Dir // Direction of the last applied move
	want    board.Dir // Direction for the next manual move
	steer   bool      // A manual direction is pending for the next advance
	manual  bool      // Always steered by heading, never by the path finder
	route   pathfind.Route
	score   int
	alive   bool
	reason  EndReason
}

func newMover(id board.MoverID, heading board.Dir, manual bool) *mover {
	return &mover{
		id:      id,
		heading: heading,
		want:    heading,
		manual:  manual,
		alive:   true,
	}
}

// steered reports whether the next advance follows want instead of a route.
func (m *mover) steered() bool {
	return m.manual || m.steer
}

// roster is the set of snakes taking part in an episode.
type roster interface {
	// movers returns every snake in resolution order, player first.
	movers() []*mover
	// mover returns the snake with the given id, if it takes part.
	mover(id board.MoverID) (*mover, bool)
	// endsEpisode reports whether losing m ends the whole episode.
	endsEpisode(m *mover) bool
}

// soloRoster is a single autopilot snake that can be steered manually.
type soloRoster struct {
	player *mover
}

func (r soloRoster) movers() []*mover { return []*mover{r.player} }

func (r soloRoster) mover(id board.MoverID) (*mover, bool) {
	if id == board.Player {
		return r.player, true
	}
	return nil, false
}

func (soloRoster) endsEpisode(*mover) bool { return true }

// duelRoster pits a manually steered player against an autopilot rival.
// Losing the rival only removes it from the board.
type duelRoster struct {
	player *mover
	rival  *mover
}

func (r duelRoster) movers() []*mover { return []*mover{r.player, r.rival} }

func (r duelRoster) mover(id board.MoverID) (*mover, bool) {
	switch id {
	case board.Player:
		return r.player, true
	case board.Rival:
		return r.rival, true
	}
	return nil, false
}

func (duelRoster) endsEpisode(m *mover) bool {
	return m.id == board.Player
}
