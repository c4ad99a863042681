package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps configured key bindings onto these, so the game
// never sees raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Shift the falling piece one column left
	ActionRight            // Shift the falling piece one column right
	ActionRotateCW         // Rotate the falling piece clockwise
	ActionRotateACW        // Rotate the falling piece anticlockwise
	ActionSoftDrop         // Accelerate gravity for this frame
	ActionHardDrop         // Drop and lock immediately (modern mode)
	ActionHold             // Swap the falling piece with the hold slot (modern mode)
	ActionPause            // Pause/unpause the game
	ActionRestart          // Restart after game over
	ActionQuit             // Exit the session
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
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateACW:
		return "RotateACW"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionHold:
		return "Hold"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
