package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows scenes to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - move up / previous menu entry
	ActionDown              // S, Down arrow - move down / next menu entry
	ActionLeft              // A, Left arrow - move left / previous choice
	ActionRight             // D, Right arrow - move right / next choice
	ActionFast              // Shift modifier - triple movement speed
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // Escape - go back home
	ActionToggleEasy        // E - toggle collisions (pro/noob)
	ActionQuit              // Ctrl+C - exit immediately
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFast:
		return "Fast"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionToggleEasy:
		return "ToggleEasy"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Mouse carries the pointer state for one tick, in world coordinates.
type Mouse struct {
	Pos     Vec2
	Clicked bool // left button went down this tick
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions holds discrete key-down events that happened this tick.
	Actions map[Action]bool

	// Held holds actions whose keys are currently considered held down.
	Held map[Action]bool

	// Mouse is nil when the pointer did not report this tick.
	Mouse *Mouse
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

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// IsHeld returns true if the action is held or was pressed this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a] || f.Has(a)
}

// Clicked reports whether the left mouse button went down this frame.
func (f InputFrame) Clicked() bool {
	return f.Mouse != nil && f.Mouse.Clicked
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
	f.Mouse = nil
}
