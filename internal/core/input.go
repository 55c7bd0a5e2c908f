package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games work with high-level intents rather than raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move ship left
	ActionRight          // D, Right arrow - move ship right
	ActionFire           // Space, W, Up - fire a bolt
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause
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
	case ActionFire:
		return "Fire"
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
	default:
		return "Unknown"
	}
}

// recordable lists the actions that affect simulation, in bit order.
// Menu and session actions are never recorded.
var recordable = [...]Action{ActionLeft, ActionRight, ActionFire, ActionPause, ActionRestart}

// InputFrame is the set of actions held during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
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

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Mask packs the simulation-relevant actions into one byte for replay logs.
func (f InputFrame) Mask() byte {
	var m byte
	for i, a := range recordable {
		if f.Has(a) {
			m |= 1 << i
		}
	}
	return m
}

// FrameFromMask rebuilds an input frame from a byte produced by Mask.
func FrameFromMask(m byte) InputFrame {
	f := NewInputFrame()
	for i, a := range recordable {
		if m&(1<<i) != 0 {
			f.Set(a)
		}
	}
	return f
}
