package ovl

// ListItem is a selectable row with a text label and an optional value
// aligned to the right edge. Its natural height is
// ListItemDefaultHeight unless overridden.
type ListItem struct {
	BaseElement
	label   string
	value   string
	onClick func() bool
}

// NewListItem creates a row with the given label.
func NewListItem(label string) *ListItem {
	item := &ListItem{label: label}
	item.SetSelectable(true)
	item.SetBoundaries(0, 0, 0, ListItemDefaultHeight)
	return item
}

// SetValue assigns the secondary text drawn at the row's right edge.
func (i *ListItem) SetValue(value string) {
	i.value = value
	i.Invalidate()
}

// Value returns the secondary text.
func (i *ListItem) Value() string {
	return i.value
}

// Label returns the row's label text.
func (i *ListItem) Label() string {
	return i.label
}

// SetClickListener registers fn to run when the row is activated.
// The listener's return value reports whether the click was consumed.
func (i *ListItem) SetClickListener(fn func() bool) {
	i.onClick = fn
}

// Draw paints the label, the optional value, and a separator along the
// bottom edge.
func (i *ListItem) Draw(r *Renderer) {
	r.DrawString(i.label, false, i.X()+5, i.Y()+i.Height()/2-10, 23, ColorText)
	if i.value != "" {
		w, _ := r.MeasureText(i.value, false, 20)
		r.DrawString(i.value, false, i.X()+i.Width()-w-5, i.Y()+i.Height()/2-8, 20, ColorDescription)
	}
	r.DrawRect(i.X(), i.Y()+i.Height()-1, i.Width(), 1, ColorFrame)
}

// RequestFocus resolves to the item itself: a selectable row is a leaf
// of focus navigation.
func (i *ListItem) RequestFocus(oldFocus Element, dir FocusDirection) Element {
	return i
}

// HandleClick activates the row's click listener on A.
func (i *ListItem) HandleClick(keys Keys) bool {
	if keys.Any(KeyA) && i.onClick != nil {
		return i.onClick()
	}
	return false
}
