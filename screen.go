package ovl

// Screen is one page of UI state: it owns one Element tree, built
// lazily on first activation, and tracks at most one focused element
// within that tree.
//
// Concrete screens embed BaseScreen and implement CreateUI; Update and
// HandleInput have no-op defaults. The unexported state method pins the
// interface to BaseScreen embedders.
type Screen interface {
	// CreateUI builds the screen's element tree root. It is invoked at
	// most once, lazily, on the screen's first frame.
	CreateUI() Element

	// Update runs once per frame after the tree exists.
	Update()

	// HandleInput reacts to the frame's input snapshot. Returning true
	// marks the input as consumed: the navigator performs no further
	// dispatch for it that tick.
	HandleInput(keysDown, keysHeld Keys, touch TouchState, leftStick, rightStick StickState) bool

	state() *BaseScreen
}

// BaseScreen carries the element tree root and focus bookkeeping shared
// by all screens. Its zero value is ready to use.
type BaseScreen struct {
	root    Element
	focused Element
}

func (b *BaseScreen) state() *BaseScreen { return b }

// Update is a no-op by default.
func (b *BaseScreen) Update() {}

// HandleInput ignores input by default.
func (b *BaseScreen) HandleInput(keysDown, keysHeld Keys, touch TouchState, leftStick, rightStick StickState) bool {
	return false
}

// Root returns the screen's element tree root, or nil before the first
// frame.
func (b *BaseScreen) Root() Element {
	return b.root
}

// FocusedElement returns the currently focused element, or nil.
func (b *BaseScreen) FocusedElement() Element {
	return b.focused
}

// RequestFocus moves focus to e: the previous focused element's flag is
// cleared, e's flag is set, and e becomes the tracked focus. A nil e
// only clears. At most one element is focused tree-wide.
func (b *BaseScreen) RequestFocus(e Element, dir FocusDirection) {
	if b.focused != nil {
		b.focused.SetFocused(false)
	}
	b.focused = e
	if b.focused != nil {
		b.focused.SetFocused(true)
	}
}

// Render paints the screen's tree into the renderer's surface. It is a
// no-op while no root exists.
func (b *BaseScreen) Render(r *Renderer) {
	if b.root != nil {
		FrameElement(r, b.root)
	}
}

// updateFrame runs one frame's update phase for s: on the first call it
// builds the tree via CreateUI, lays it out against the full surface
// dimensions, and places initial focus; every call ends with the
// screen's Update hook.
func updateFrame(s Screen, width, height int) {
	b := s.state()
	if b.root == nil {
		b.root = s.CreateUI()
		if b.root != nil {
			b.root.Layout(0, 0, width, height)
			b.RequestFocus(b.root.RequestFocus(nil, FocusNone), FocusNone)
		}
	}
	s.Update()
}

// teardown destroys the screen's owned tree and releases the focus
// reference with it, so no dangling focus survives the screen.
func (b *BaseScreen) teardown() {
	if b.focused != nil {
		b.focused.SetFocused(false)
		b.focused = nil
	}
	b.root = nil
}
