package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move the catcher left
	ActionRight          // D, Right arrow - move the catcher right
	ActionCatch          // Space, Enter - catch at the catcher position
	ActionWord1          // 1 - target the first word
	ActionWord2          // 2 - target the second word
	ActionWord3          // 3 - target the third word
	ActionWord4          // 4 - target the fourth word
	ActionWord5          // 5 - target the fifth word
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart round after win/loss
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
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
	case ActionCatch:
		return "Catch"
	case ActionWord1:
		return "Word1"
	case ActionWord2:
		return "Word2"
	case ActionWord3:
		return "Word3"
	case ActionWord4:
		return "Word4"
	case ActionWord5:
		return "Word5"
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

// WordIndex maps ActionWord1..ActionWord5 to a zero-based word index.
// Returns -1 for any other action.
func (a Action) WordIndex() int {
	if a >= ActionWord1 && a <= ActionWord5 {
		return int(a - ActionWord1)
	}
	return -1
}

// Pointer is a screen-space input position, used for mouse catches.
type Pointer struct {
	X, Y int
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame, plus an
// optional pointer position from a mouse click.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Click is the pointer position of a mouse press this frame, if any.
	Click *Pointer
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

// SetClick records a pointer press position for this frame.
func (f *InputFrame) SetClick(x, y int) {
	f.Click = &Pointer{X: x, Y: y}
}

// Has returns true if the given action was triggered this frame.
func (f *InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear removes all actions and the pointer, preparing for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Click = nil
}
