package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move left
	ActionRight          // Right arrow, D - move right
	ActionUp             // Up arrow, W - move up
	ActionDown           // Down arrow, S - move down
	ActionFire           // Space - fire one projectile per press
	ActionConfirm        // Enter - start or restart
	ActionPause          // P - pause/unpause game
	ActionQuit           // Q, Esc, Ctrl+C - exit
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
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four movement actions.
func (a Action) IsDirection() bool {
	return a >= ActionLeft && a <= ActionDown
}

// Directions is the set of movement directions held during one tick.
// Opposite directions may both be set; each axis applies both deltas.
type Directions struct {
	Left, Right, Up, Down bool
}

// Any returns true if at least one direction is held.
func (d Directions) Any() bool {
	return d.Left || d.Right || d.Up || d.Down
}

// InputFrame represents the input state for one simulation tick.
// Actions holds discrete key-down events; Held holds the movement state.
type InputFrame struct {
	Actions map[Action]bool
	Held    Directions
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

// Clear resets all actions and held directions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Held = Directions{}
}

// HoldTracker emulates held keys on terminals, which report presses and
// auto-repeat but never releases. A direction stays held for a fixed number
// of ticks after its most recent press.
type HoldTracker struct {
	window    int
	remaining [4]int // indexed by direction action - ActionLeft
}

// NewHoldTracker creates a tracker that keeps a direction held for
// window ticks after each press. Windows below 1 are raised to 1.
func NewHoldTracker(window int) *HoldTracker {
	if window < 1 {
		window = 1
	}
	return &HoldTracker{window: window}
}

// Press records a key press for a direction action.
// Pressing a direction releases its opposite immediately.
// Non-direction actions are ignored.
func (t *HoldTracker) Press(a Action) {
	if !a.IsDirection() {
		return
	}
	t.remaining[a-ActionLeft] = t.window
	t.remaining[opposite(a)-ActionLeft] = 0
}

// Held returns the directions currently considered held.
func (t *HoldTracker) Held() Directions {
	return Directions{
		Left:  t.remaining[ActionLeft-ActionLeft] > 0,
		Right: t.remaining[ActionRight-ActionLeft] > 0,
		Up:    t.remaining[ActionUp-ActionLeft] > 0,
		Down:  t.remaining[ActionDown-ActionLeft] > 0,
	}
}

// Advance ages every held direction by one tick.
func (t *HoldTracker) Advance() {
	for i := range t.remaining {
		if t.remaining[i] > 0 {
			t.remaining[i]--
		}
	}
}

// Release drops all held directions.
func (t *HoldTracker) Release() {
	t.remaining = [4]int{}
}

// opposite returns the direction action on the same axis.
func opposite(a Action) Action {
	switch a {
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	case ActionUp:
		return ActionDown
	default:
		return ActionUp
	}
}
