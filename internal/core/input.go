package core

// Action represents a semantic host action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionActivate          // Space - start the run
	ActionJump              // Up, W - jump
	ActionRestart           // R - new run after game over
	ActionScoreboard        // Tab - show past runs
	ActionBack              // Esc, B - back to the menu
	ActionQuit              // Q, Ctrl+C
	ActionScreenshot        // Ctrl+S
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionActivate:
		return "Activate"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}
