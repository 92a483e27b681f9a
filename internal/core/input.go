package core

// Action is a semantic key press, abstracted from the physical key.
type Action int

const (
	ActionNone       Action = iota
	ActionLaunch            // Space - start, launch the ball, pause and resume
	ActionLeft              // Left arrow, A, H - move the paddle left
	ActionRight             // Right arrow, D, L - move the paddle right
	ActionPause             // P, Escape - pause and resume
	ActionQuit              // Q, Ctrl+C - leave the session
	ActionScreenshot        // Ctrl+S - save a text screenshot
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLaunch:
		return "Launch"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// KeyEvent is a single key press delivered to the screen stack.
// Repeat is set when the same action arrived again within the repeat window,
// which is how held keys show up on a terminal.
type KeyEvent struct {
	Action Action
	Repeat bool
}
