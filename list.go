package ovl

// List lays out an ordered sequence of child elements vertically.
// Every child receives the full list width and its own natural height;
// vertical positions accumulate prior children's heights minus the
// scroll offset.
type List struct {
	BaseElement
	items        []Element
	scrollOffset int
}

// NewList creates an empty vertical list.
func NewList() *List {
	return &List{}
}

// AddItem appends a child element to the list and takes ownership.
func (l *List) AddItem(item Element) {
	if item == nil {
		return
	}
	item.SetParent(l)
	l.items = append(l.items, item)
	l.Invalidate()
}

// Items returns the child elements in order.
func (l *List) Items() []Element {
	return l.items
}

// ScrollOffset returns the current vertical scroll offset.
func (l *List) ScrollOffset() int {
	return l.scrollOffset
}

// Draw delegates to each child in order, framing focused children.
func (l *List) Draw(r *Renderer) {
	for _, item := range l.items {
		FrameElement(r, item)
	}
}

// Layout assigns the list its own rectangle, then stacks the children:
// full parent width, each child's natural height, vertical offsets
// accumulating minus the scroll offset.
func (l *List) Layout(parentX, parentY, parentWidth, parentHeight int) {
	l.BaseElement.Layout(parentX, parentY, parentWidth, parentHeight)
	curY := parentY - l.scrollOffset
	for _, item := range l.items {
		item.Layout(parentX, curY, parentWidth, item.Height())
		curY += item.Height()
	}
}

// RequestFocus moves focus among the selectable children. With no
// direction (or when the old focus is not one of the children) the
// first selectable child is chosen; Up and Down move relative to the
// previously focused child and clamp at the ends.
func (l *List) RequestFocus(oldFocus Element, dir FocusDirection) Element {
	cur := l.indexOf(oldFocus)

	switch dir {
	case FocusUp:
		if cur < 0 {
			return l.focusClamped(len(l.items)-1, -1)
		}
		return l.focusClamped(cur-1, -1)
	case FocusDown:
		if cur < 0 {
			return l.focusClamped(0, +1)
		}
		return l.focusClamped(cur+1, +1)
	default:
		if cur >= 0 {
			return l.items[cur]
		}
		return l.focusClamped(0, +1)
	}
}

// indexOf returns the child index of e, or -1.
func (l *List) indexOf(e Element) int {
	if e == nil {
		return -1
	}
	for i, item := range l.items {
		if item == e {
			return i
		}
	}
	return -1
}

// focusClamped scans from start in the given step direction for a
// selectable child, keeps it scrolled into view, and returns it.
// Returns nil when no selectable child exists in that direction.
func (l *List) focusClamped(start, step int) Element {
	for i := start; i >= 0 && i < len(l.items); i += step {
		if l.items[i].Selectable() {
			l.scrollTo(i)
			return l.items[i]
		}
	}
	return nil
}

// scrollTo adjusts the scroll offset so child i is fully visible, then
// restacks the children against the stored bounds.
func (l *List) scrollTo(i int) {
	top := 0
	for j := 0; j < i; j++ {
		top += l.items[j].Height()
	}
	bottom := top + l.items[i].Height()

	changed := false
	if top < l.scrollOffset {
		l.scrollOffset = top
		changed = true
	} else if l.Height() > 0 && bottom > l.scrollOffset+l.Height() {
		l.scrollOffset = bottom - l.Height()
		changed = true
	}
	if changed {
		l.Layout(l.X(), l.Y(), l.Width(), l.Height())
	}
}
