package core

// Action represents a semantic input action, abstracted from physical keys.
// The platform maps keyboard input to actions; the game never sees raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionTap            // Space, Up, W - start the run or flap
	ActionRestart        // R - back to the idle screen after game over
	ActionPause          // P, Esc - pause/unpause (presentation-level)
	ActionScores         // Tab - toggle the high score table
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTap:
		return "Tap"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
