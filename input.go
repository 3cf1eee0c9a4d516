package ovl

// FocusDirection identifies where focus navigation is headed.
type FocusDirection int

const (
	// FocusNone requests focus with no direction (initial placement).
	FocusNone FocusDirection = iota
	// FocusUp moves focus upward.
	FocusUp
	// FocusDown moves focus downward.
	FocusDown
	// FocusLeft moves focus leftward.
	FocusLeft
	// FocusRight moves focus rightward.
	FocusRight
)

// String returns the string representation of the direction.
func (d FocusDirection) String() string {
	switch d {
	case FocusNone:
		return "None"
	case FocusUp:
		return "Up"
	case FocusDown:
		return "Down"
	case FocusLeft:
		return "Left"
	case FocusRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// InputMode distinguishes how the user is currently driving the overlay.
// It affects input routing only, never layout.
type InputMode int

const (
	// InputController is button/stick driven input.
	InputController InputMode = iota
	// InputTouch is direct touch input.
	InputTouch
	// InputTouchScroll is touch input interpreted as scrolling.
	InputTouchScroll
)

// String returns the string representation of the mode.
func (m InputMode) String() string {
	switch m {
	case InputController:
		return "Controller"
	case InputTouch:
		return "Touch"
	case InputTouchScroll:
		return "TouchScroll"
	default:
		return "Unknown"
	}
}

// Keys is a bitmask of controller buttons.
type Keys uint64

// Controller button bits.
const (
	KeyA Keys = 1 << iota
	KeyB
	KeyX
	KeyY
	KeyStickL
	KeyStickR
	KeyL
	KeyR
	KeyZL
	KeyZR
	KeyPlus
	KeyMinus
	KeyDLeft
	KeyDUp
	KeyDRight
	KeyDDown
	KeyStickLLeft
	KeyStickLUp
	KeyStickLRight
	KeyStickLDown
	KeyStickRLeft
	KeyStickRUp
	KeyStickRRight
	KeyStickRDown
)

// Direction aliases combining the d-pad with both analog sticks.
const (
	KeyUp    = KeyDUp | KeyStickLUp | KeyStickRUp
	KeyDown  = KeyDDown | KeyStickLDown | KeyStickRDown
	KeyLeft  = KeyDLeft | KeyStickLLeft | KeyStickRLeft
	KeyRight = KeyDRight | KeyStickLRight | KeyStickRRight
)

// Any reports whether any of the keys in mask are set.
func (k Keys) Any(mask Keys) bool {
	return k&mask != 0
}

// TouchState is the primary touch point for one tick. The zero value
// means "no touch".
type TouchState struct {
	X, Y    int32
	Pressed bool
}

// StickState is an analog stick position, each axis in [-32768, 32767].
type StickState struct {
	X, Y int16
}

// InputState is the per-tick input snapshot.
type InputState struct {
	// KeysDown holds buttons newly pressed this tick.
	KeysDown Keys

	// KeysHeld holds buttons currently held.
	KeysHeld Keys

	// Touch is the primary touch point, if any.
	Touch TouchState

	// LeftStick and RightStick are the analog stick positions.
	LeftStick  StickState
	RightStick StickState
}

// InputSource supplies the per-tick input snapshot. Poll is called at
// most once per tick, before input is dispatched to the active screen.
type InputSource interface {
	Poll() InputState
}
