package core

// Action represents a semantic game action, abstracted from physical input.
// Hosts map keys, clicks and touches onto these.
type Action int

const (
	ActionNone  Action = iota
	ActionJump         // Space, primary click, touch start - flap (or start when idle)
	ActionStart        // Enter, start button - explicit start/restart
	ActionQuit         // Q, Ctrl+C, Escape - exit the host
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerAction returns the intent of a click or touch on the play surface:
// a flap while running, otherwise the start button.
func PointerAction(running bool) Action {
	if running {
		return ActionJump
	}
	return ActionStart
}

// InputFrame holds the intents recorded between two ticks.
// Setting the same action twice is the same as setting it once.
type InputFrame struct {
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

// Empty reports whether no action is pending.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
