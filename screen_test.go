package ovl

import "testing"

// testScreen is a screen whose tree is one list of selectable rows.
type testScreen struct {
	BaseScreen
	rows      int
	createdUI int
	updates   int
}

func (s *testScreen) CreateUI() Element {
	s.createdUI++
	l := NewList()
	for i := 0; i < s.rows; i++ {
		l.AddItem(newSelectableBox(70))
	}
	return l
}

func (s *testScreen) Update() { s.updates++ }

// TestScreen_CreateUIRunsOnce verifies the tree is built lazily on the
// first frame and reused afterwards, while Update runs every frame.
func TestScreen_CreateUIRunsOnce(t *testing.T) {
	s := &testScreen{rows: 3}
	if s.Root() != nil {
		t.Fatal("tree exists before the first frame")
	}

	updateFrame(s, 448, 720)
	updateFrame(s, 448, 720)

	if s.createdUI != 1 {
		t.Errorf("CreateUI ran %d times, want 1", s.createdUI)
	}
	if s.updates != 2 {
		t.Errorf("Update ran %d times, want 2", s.updates)
	}
	if s.Root() == nil {
		t.Error("no tree after the first frame")
	}
}

// TestScreen_InitialFocus verifies the first frame places focus on the
// tree's first selectable element.
func TestScreen_InitialFocus(t *testing.T) {
	s := &testScreen{rows: 3}
	updateFrame(s, 448, 720)

	got := s.FocusedElement()
	if got == nil {
		t.Fatal("no focus after the first frame")
	}
	list := s.Root().(*List)
	if got != list.Items()[0] {
		t.Error("focus is not the first selectable element")
	}
	if !got.Focused() {
		t.Error("focused element's flag not set")
	}
}

// TestScreen_SingleFocus verifies moving focus clears the previous
// element's flag, keeping at most one element focused.
func TestScreen_SingleFocus(t *testing.T) {
	s := &testScreen{rows: 3}
	updateFrame(s, 448, 720)

	list := s.Root().(*List)
	first, second := list.Items()[0], list.Items()[1]

	s.RequestFocus(second, FocusDown)
	if first.Focused() {
		t.Error("previous element still carries the focus flag")
	}
	if !second.Focused() || s.FocusedElement() != second {
		t.Error("new element not focused")
	}

	s.RequestFocus(nil, FocusNone)
	if second.Focused() || s.FocusedElement() != nil {
		t.Error("clearing focus left a flag behind")
	}
}

// TestScreen_TeardownReleasesTree verifies teardown drops the tree and
// the focus reference together.
func TestScreen_TeardownReleasesTree(t *testing.T) {
	s := &testScreen{rows: 3}
	updateFrame(s, 448, 720)

	focused := s.FocusedElement()
	s.teardown()

	if s.Root() != nil || s.FocusedElement() != nil {
		t.Error("teardown left the tree or focus in place")
	}
	if focused.Focused() {
		t.Error("teardown left a focus flag set on the old tree")
	}
}
