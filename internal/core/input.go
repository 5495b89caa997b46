package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone            Action = iota
	ActionRotateLeft             // Left arrow, A - spin the tower counter-clockwise
	ActionRotateRight            // Right arrow, D - spin the tower clockwise
	ActionConfirm                // Enter, Space - start / continue
	ActionRestart                // R key - restart game after game over
	ActionQuit                   // Q, Ctrl+C - exit game
	ActionPause                  // P, Escape - pause/unpause game
	ActionSensitivityDown        // [ - lower rotation gain
	ActionSensitivityUp          // ] - raise rotation gain
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionSensitivityDown:
		return "SensitivityDown"
	case ActionSensitivityUp:
		return "SensitivityUp"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one render tick.
// It contains all actions that were triggered during this frame plus the
// horizontal pointer drag accumulated since the previous frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// DragX is the accumulated horizontal drag in cells.
	DragX float64
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

// AddDrag accumulates a horizontal drag delta.
func (f *InputFrame) AddDrag(dx float64) {
	f.DragX += dx
}

// Clear resets all actions and drag for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.DragX = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.DragX = f.DragX
	return clone
}
