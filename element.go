package ovl

// Element is a node in a screen's UI tree. Parent-to-child references
// own the children; the child-to-parent back-reference exists only for
// invalidation propagation and never extends a lifetime.
type Element interface {
	// Draw paints the element (and its children, where applicable).
	Draw(r *Renderer)

	// Layout assigns the element's bounding box from the rectangle its
	// parent hands down. Composite elements subdivide the rectangle
	// among their children and must still end with a well-defined box
	// of their own.
	Layout(parentX, parentY, parentWidth, parentHeight int)

	// RequestFocus resolves which element should receive focus when
	// navigation in dir originates at or passes through this element.
	// oldFocus is the previously focused element, for relative
	// navigation. A nil result leaves the current focus unchanged.
	RequestFocus(oldFocus Element, dir FocusDirection) Element

	// HandleClick reacts to buttons pressed while the element is
	// focused. It returns true when the input was consumed.
	HandleClick(keys Keys) bool

	// X, Y, Width, and Height describe the bounding box set by the
	// most recent layout pass.
	X() int
	Y() int
	Width() int
	Height() int

	// SetBoundaries assigns the bounding box directly.
	SetBoundaries(x, y, w, h int)

	// Focused reports and SetFocused assigns the focus flag. Focus
	// bookkeeping lives on the Screen; elements only carry the flag.
	Focused() bool
	SetFocused(focused bool)

	// Selectable reports whether the element is a selectable item and
	// participates in focus navigation.
	Selectable() bool

	// Parent returns the non-owning parent back-reference.
	Parent() Element
	SetParent(parent Element)

	// Invalidate propagates a needs-relayout signal up the parent
	// chain. An element with no parent is the propagation root.
	Invalidate()
}

// FrameElement paints one element for the current frame: a focused
// selectable element first receives a highlight outline expanded
// 2 units beyond its box on every side, then its Draw runs.
func FrameElement(r *Renderer, e Element) {
	if e == nil {
		return
	}
	if e.Focused() && e.Selectable() {
		r.DrawRect(
			e.X()-focusHighlightInset,
			e.Y()-focusHighlightInset,
			e.Width()+2*focusHighlightInset,
			e.Height()+2*focusHighlightInset,
			ColorHighlight,
		)
	}
	e.Draw(r)
}

// BaseElement carries the state and default behavior shared by all
// elements. Concrete elements embed it and override what they need.
type BaseElement struct {
	x, y          int
	width, height int
	focused       bool
	selectable    bool
	parent        Element
	dirty         bool
}

// Layout assigns the bounding box directly from the parent-provided
// rectangle and clears the dirty flag.
func (e *BaseElement) Layout(parentX, parentY, parentWidth, parentHeight int) {
	e.x = parentX
	e.y = parentY
	e.width = parentWidth
	e.height = parentHeight
	e.dirty = false
}

// RequestFocus resolves to nothing by default: elements that are not
// selectable and have no children cannot take focus.
func (e *BaseElement) RequestFocus(oldFocus Element, dir FocusDirection) Element {
	return nil
}

// HandleClick ignores input by default.
func (e *BaseElement) HandleClick(keys Keys) bool {
	return false
}

// X returns the bounding box's left edge.
func (e *BaseElement) X() int { return e.x }

// Y returns the bounding box's top edge.
func (e *BaseElement) Y() int { return e.y }

// Width returns the bounding box width.
func (e *BaseElement) Width() int { return e.width }

// Height returns the bounding box height.
func (e *BaseElement) Height() int { return e.height }

// SetBoundaries assigns the bounding box directly.
func (e *BaseElement) SetBoundaries(x, y, w, h int) {
	e.x, e.y, e.width, e.height = x, y, w, h
}

// Focused reports the focus flag.
func (e *BaseElement) Focused() bool { return e.focused }

// SetFocused assigns the focus flag.
func (e *BaseElement) SetFocused(focused bool) { e.focused = focused }

// Selectable reports whether the element participates in focus
// navigation.
func (e *BaseElement) Selectable() bool { return e.selectable }

// SetSelectable marks the element as a selectable item.
func (e *BaseElement) SetSelectable(selectable bool) { e.selectable = selectable }

// Parent returns the non-owning parent back-reference.
func (e *BaseElement) Parent() Element { return e.parent }

// SetParent assigns the parent back-reference.
func (e *BaseElement) SetParent(parent Element) { e.parent = parent }

// Invalidate marks the element dirty and bubbles the signal up the
// parent chain.
func (e *BaseElement) Invalidate() {
	e.dirty = true
	if e.parent != nil {
		e.parent.Invalidate()
	}
}

// Dirty reports whether the element was invalidated since its last
// layout pass.
func (e *BaseElement) Dirty() bool { return e.dirty }
