package ovl

import "testing"

// newSelectableBox returns a selectable test element with the given
// natural height.
func newSelectableBox(height int) *boxElement {
	e := newBoxElement(height)
	e.SetSelectable(true)
	return e
}

// TestList_LayoutStacksChildren verifies children get the full list
// width and accumulate vertically by their natural heights.
func TestList_LayoutStacksChildren(t *testing.T) {
	l := NewList()
	heights := []int{70, 70, 50}
	for _, h := range heights {
		l.AddItem(newBoxElement(h))
	}

	l.Layout(0, 0, 300, 500)

	wantY := []int{0, 70, 140}
	for i, item := range l.Items() {
		if item.Y() != wantY[i] {
			t.Errorf("child %d: y = %d, want %d", i, item.Y(), wantY[i])
		}
		if item.X() != 0 || item.Width() != 300 {
			t.Errorf("child %d: x/width = %d/%d, want 0/300", i, item.X(), item.Width())
		}
		if item.Height() != heights[i] {
			t.Errorf("child %d: height = %d, want %d", i, item.Height(), heights[i])
		}
	}
}

// TestList_RequestFocusDefault verifies the first selectable child wins
// when navigation has no direction, skipping leading non-selectable
// children.
func TestList_RequestFocusDefault(t *testing.T) {
	l := NewList()
	header := newBoxElement(30)
	first := newSelectableBox(70)
	second := newSelectableBox(70)
	l.AddItem(header)
	l.AddItem(first)
	l.AddItem(second)
	l.Layout(0, 0, 300, 500)

	if got := l.RequestFocus(nil, FocusNone); got != Element(first) {
		t.Errorf("default focus = %v, want the first selectable child", got)
	}
}

// TestList_RequestFocusRelative verifies Up and Down move relative to
// the old focus and clamp at the ends.
func TestList_RequestFocusRelative(t *testing.T) {
	l := NewList()
	items := []*boxElement{newSelectableBox(70), newSelectableBox(70), newSelectableBox(70)}
	for _, it := range items {
		l.AddItem(it)
	}
	l.Layout(0, 0, 300, 500)

	if got := l.RequestFocus(items[0], FocusDown); got != Element(items[1]) {
		t.Errorf("down from first = %v, want second", got)
	}
	if got := l.RequestFocus(items[2], FocusDown); got != nil {
		t.Errorf("down past the end = %v, want nil (focus unchanged)", got)
	}
	if got := l.RequestFocus(items[1], FocusUp); got != Element(items[0]) {
		t.Errorf("up from second = %v, want first", got)
	}
	if got := l.RequestFocus(items[0], FocusUp); got != nil {
		t.Errorf("up past the start = %v, want nil (focus unchanged)", got)
	}
}

// TestList_RequestFocusSkipsNonSelectable verifies navigation steps
// over non-selectable children in between.
func TestList_RequestFocusSkipsNonSelectable(t *testing.T) {
	l := NewList()
	first := newSelectableBox(70)
	gap := newBoxElement(30)
	second := newSelectableBox(70)
	l.AddItem(first)
	l.AddItem(gap)
	l.AddItem(second)
	l.Layout(0, 0, 300, 500)

	if got := l.RequestFocus(first, FocusDown); got != Element(second) {
		t.Errorf("down over a gap = %v, want the next selectable child", got)
	}
	if got := l.RequestFocus(second, FocusUp); got != Element(first) {
		t.Errorf("up over a gap = %v, want the previous selectable child", got)
	}
}

// TestList_ScrollKeepsFocusVisible verifies focusing a child outside
// the viewport adjusts the scroll offset so its box is fully visible.
func TestList_ScrollKeepsFocusVisible(t *testing.T) {
	l := NewList()
	var items []*boxElement
	for i := 0; i < 10; i++ {
		it := newSelectableBox(70)
		items = append(items, it)
		l.AddItem(it)
	}
	l.Layout(0, 0, 300, 200) // viewport shows fewer than three rows

	// Child 5 spans rows 350..420 in content space, well below the
	// 200-unit viewport.
	got := l.RequestFocus(items[4], FocusDown)
	if got != Element(items[5]) {
		t.Fatalf("focus = %v, want child 5", got)
	}
	if want := 6*70 - 200; l.ScrollOffset() != want {
		t.Errorf("scroll offset = %d, want %d", l.ScrollOffset(), want)
	}
	if y := items[5].Y(); y+items[5].Height() > l.Y()+200 || y < l.Y() {
		t.Errorf("focused child not fully visible: y = %d", y)
	}

	// Moving back up to child 0 scrolls the list back to the top.
	for i := 5; i > 0; i-- {
		got = l.RequestFocus(items[i], FocusUp)
		if got != Element(items[i-1]) {
			t.Fatalf("focus from %d = %v, want child %d", i, got, i-1)
		}
	}
	if l.ScrollOffset() != 0 {
		t.Errorf("scroll offset after returning to the top = %d, want 0", l.ScrollOffset())
	}
}
