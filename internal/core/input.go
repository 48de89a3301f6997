package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the session to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, Left arrow - move paddle left
	ActionRight             // D, Right arrow - move paddle right
	ActionUp                // W, Up arrow - menu navigation
	ActionDown              // S, Down arrow - menu navigation
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B - go back to menu
	ActionRestart           // R key - restart game after game over
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionPause             // P, Escape - pause/unpause game
	ActionFullscreen        // F - toggle fullscreen (window shell only)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionFullscreen:
		return "Fullscreen"
	default:
		return "Unknown"
	}
}

// InputFrame represents the player's input during one simulation tick.
//
// Pressed actions fire once (pause toggles, restart). Held actions describe
// continuous state such as a movement key being down.
type InputFrame struct {
	// Actions maps action types to whether they were pressed this frame.
	Actions map[Action]bool
	// Held maps action types to whether they are currently held down.
	Held map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld returns true if the given action is held this frame.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}
