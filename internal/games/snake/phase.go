package snake

// Phase is the lifecycle state of an episode.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Transition is a phase change requested from outside the engine.
type Transition int

const (
	TransitionStart   Transition = iota // Idle -> Running
	TransitionPause                     // Running -> Paused
	TransitionResume                    // Paused -> Running
	TransitionRestart                   // GameOver -> Idle, rebuilding every entity
)

func (t Transition) String() string {
	switch t {
	case TransitionStart:
		return "start"
	case TransitionPause:
		return "pause"
	case TransitionResume:
		return "resume"
	case TransitionRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// transitions is the table of legal phase changes.
var transitions = map[Transition]struct{ from, to Phase }{
	TransitionStart:   {PhaseIdle, PhaseRunning},
	TransitionPause:   {PhaseRunning, PhasePaused},
	TransitionResume:  {PhasePaused, PhaseRunning},
	TransitionRestart: {PhaseGameOver, PhaseIdle},
}

// EndReason records why a mover was eliminated or an episode ended.
type EndReason int

const (
	EndNone      EndReason = iota
	EndCollision           // Manual move into a wall, obstacle or body
	EndNoMove              // No enterable neighbor at all
	EndTimeUp              // Challenge countdown expired
)

func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndCollision:
		return "collision"
	case EndNoMove:
		return "no_move"
	case EndTimeUp:
		return "time_up"
	default:
		return "unknown"
	}
}

// Outcome is the result of a finished duel.
type Outcome int

const (
	OutcomeNone Outcome = iota // Episode still going, or a solo episode
	OutcomePlayer
	OutcomeRival
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayer:
		return "player"
	case OutcomeRival:
		return "rival"
	case OutcomeDraw:
		return "draw"
	default:
		return ""
	}
}
