package core

// Action represents a semantic input, abstracted from physical key presses.
// The simulation works with intents rather than raw keys.
type Action int

const (
	ActionNone            Action = iota
	ActionUp                     // W, Up arrow - steer up
	ActionDown                   // S, Down arrow - steer down
	ActionLeft                   // A, Left arrow - steer left
	ActionRight                  // D, Right arrow - steer right
	ActionConfirm                // Enter - start the episode / confirm in menu
	ActionBack                   // B, Escape - back to setup
	ActionRestart                // R - restart after game over
	ActionQuit                   // Q, Ctrl+C - exit
	ActionPause                  // P, Space - pause/resume
	ActionCycleAlgorithm         // Tab - next pathfinding strategy
	ActionCycleMode              // M - next game mode
	ActionCycleDifficulty        // N - next difficulty
	ActionToggleDuel             // V - toggle the rival snake
)

var actionNames = map[Action]string{
	ActionNone:            "None",
	ActionUp:              "Up",
	ActionDown:            "Down",
	ActionLeft:            "Left",
	ActionRight:           "Right",
	ActionConfirm:         "Confirm",
	ActionBack:            "Back",
	ActionRestart:         "Restart",
	ActionQuit:            "Quit",
	ActionPause:           "Pause",
	ActionCycleAlgorithm:  "CycleAlgorithm",
	ActionCycleMode:       "CycleMode",
	ActionCycleDifficulty: "CycleDifficulty",
	ActionToggleDuel:      "ToggleDuel",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
