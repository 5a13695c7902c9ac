package core

// Action represents a semantic game command, abstracted from physical key presses.
// The presentation layer translates device events into actions; the engine never
// inspects raw key state.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // Turn up
	ActionDown              // Turn down
	ActionLeft              // Turn left
	ActionRight             // Turn right
	ActionSpeedUp           // Raise the speed tier
	ActionSpeedDown         // Lower the speed tier
	ActionPause             // Toggle pause
	ActionRestart           // Start a fresh run
	ActionBoostStart        // Begin (or refresh) a hold-to-boost window
	ActionBoostStop         // End the boost early
	ActionStart             // Leave the menu, resuming a saved session if any
	ActionBack              // Return to the menu
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
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBoostStart:
		return "BoostStart"
	case ActionBoostStop:
		return "BoostStop"
	case ActionStart:
		return "Start"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one frame, in arrival order.
// Order matters: two heading changes between steps coalesce with the last one
// winning.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, act := range f.Actions {
		if act == a {
			return true
		}
	}
	return false
}

// Len returns the number of queued actions.
func (f InputFrame) Len() int {
	return len(f.Actions)
}

// Clear resets all actions for the next frame, keeping the backing storage.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Actions: make([]Action, len(f.Actions))}
	copy(clone.Actions, f.Actions)
	return clone
}
