package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionActivate        // Space, tap - start from the welcome screen, otherwise switch color
	ActionStart           // Enter - the "start" button
	ActionRestart         // R - the "restart" button after game over
	ActionQuit            // Q, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionActivate:
		return "Activate"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
