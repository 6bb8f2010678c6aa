package core

// Action is a player intent after key mapping. The engine and loop only
// ever see actions, never keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - shift piece one column left
	ActionRight          // D, Right arrow - shift piece one column right
	ActionUp             // W, Up arrow - rotate counter-clockwise (270°)
	ActionDown           // S, Down arrow - rotate clockwise (90°)
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - start a fresh game
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// Directional returns true for the four actions that steer the active piece.
func (a Action) Directional() bool {
	return a == ActionLeft || a == ActionRight || a == ActionUp || a == ActionDown
}
