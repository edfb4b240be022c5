package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionRotateLeft          // A, Left arrow - turn 90° counter-clockwise
	ActionRotateRight         // D, Right arrow - turn 90° clockwise
	ActionMoveForward         // W, Up arrow - step along heading
	ActionMoveBackward        // S, Down arrow - step against heading
	ActionJump                // Space - jump
	ActionToggleCheat         // C - toggle magnet bubble
	ActionMeow                // M - stun nearby dogs
	ActionDropDecoy           // E - drop a decoy
	ActionRestart             // R key - restart game
	ActionZoomIn              // + - camera zoom in (renderer only)
	ActionZoomOut             // - - camera zoom out (renderer only)
	ActionPause               // P, Escape - pause/unpause game
	ActionQuit                // Q, Ctrl+C - exit game
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
	case ActionMoveForward:
		return "MoveForward"
	case ActionMoveBackward:
		return "MoveBackward"
	case ActionJump:
		return "Jump"
	case ActionToggleCheat:
		return "ToggleCheat"
	case ActionMeow:
		return "Meow"
	case ActionDropDecoy:
		return "DropDecoy"
	case ActionRestart:
		return "Restart"
	case ActionZoomIn:
		return "ZoomIn"
	case ActionZoomOut:
		return "ZoomOut"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction returns the action with the given name, as produced by String.
func ParseAction(name string) (Action, bool) {
	for a := ActionNone; a <= ActionQuit; a++ {
		if a.String() == name {
			return a, true
		}
	}
	return ActionNone, false
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to how many times they were triggered this frame.
	// Movement keys can repeat faster than the tick rate, so presses are counted.
	Actions map[Action]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]int),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a] > 0
}

// Count returns how many times the action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	if f.Actions == nil {
		return 0
	}
	return f.Actions[a]
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
