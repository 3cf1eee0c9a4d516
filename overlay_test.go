package ovl

import (
	"context"
	"errors"
	"testing"
	"time"
)

// countingProvider hands out one owned surface and counts the
// acquire/release pairing. A non-nil err makes every acquisition fail.
type countingProvider struct {
	surface  *Surface
	acquires int
	releases int
	err      error
}

func newCountingProvider(w, h int) *countingProvider {
	return &countingProvider{surface: NewSurface(w, h)}
}

func (p *countingProvider) Acquire() (*Surface, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.acquires++
	return p.surface, nil
}

func (p *countingProvider) Release(s *Surface) error {
	p.releases++
	return nil
}

// scriptedInput replays a fixed sequence of input snapshots, then
// reports nothing pressed.
type scriptedInput struct {
	frames []InputState
}

func (in *scriptedInput) Poll() InputState {
	if len(in.frames) == 0 {
		return InputState{}
	}
	s := in.frames[0]
	in.frames = in.frames[1:]
	return s
}

func pressed(keys Keys) InputState {
	return InputState{KeysDown: keys, KeysHeld: keys}
}

// consumingScreen consumes every input snapshot itself.
type consumingScreen struct {
	testScreen
	handled int
}

func (s *consumingScreen) HandleInput(keysDown, keysHeld Keys, touch TouchState, leftStick, rightStick StickState) bool {
	if keysDown != 0 {
		s.handled++
	}
	return true
}

// frameScreen builds its tree from a caller-supplied closure.
type frameScreen struct {
	BaseScreen
	build func() Element
}

func (s *frameScreen) CreateUI() Element { return s.build() }

func newTestNavigator(input InputSource, opts ...NavigatorOption) (*Navigator, *countingProvider) {
	p := newCountingProvider(64, 64)
	return NewNavigator(p, input, nil, opts...), p
}

// TestNavigator_PushReplaceLeavesOne verifies replacing after a push
// leaves exactly one live screen, with the replaced screen's tree and
// focus fully torn down.
func TestNavigator_PushReplaceLeavesOne(t *testing.T) {
	n, _ := newTestNavigator(&scriptedInput{})

	first := &testScreen{rows: 2}
	n.Push(first)
	n.Tick()

	oldFocus := first.FocusedElement()
	if oldFocus == nil {
		t.Fatal("no focus on the first screen after a tick")
	}

	second := &testScreen{rows: 1}
	n.Replace(second)

	if n.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", n.Depth())
	}
	if n.Top() != Screen(second) {
		t.Error("replacement screen is not on top")
	}
	if first.Root() != nil || first.FocusedElement() != nil {
		t.Error("replaced screen's tree survived the replace")
	}
	if oldFocus.Focused() {
		t.Error("replaced screen left a focus flag set")
	}
}

// TestNavigator_ReplaceSwapsTopOnly verifies Replace swaps only the top
// screen and leaves the rest of the stack untouched.
func TestNavigator_ReplaceSwapsTopOnly(t *testing.T) {
	n, _ := newTestNavigator(&scriptedInput{})

	bottom := &testScreen{rows: 1}
	top := &testScreen{rows: 1}
	n.Push(bottom)
	n.Push(top)
	n.Tick()

	repl := &testScreen{rows: 1}
	n.Replace(repl)

	if n.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", n.Depth())
	}
	if n.Top() != Screen(repl) {
		t.Error("replacement screen is not on top")
	}
	if top.Root() != nil {
		t.Error("replaced screen's tree survived")
	}

	// The bottom screen is exposed again after popping the replacement.
	n.Pop()
	if n.Top() != Screen(bottom) {
		t.Error("bottom screen lost during the replace")
	}
}

// TestNavigator_ConsumedInputSkipsDefaults verifies a screen returning
// true from HandleInput suppresses all default dispatch, including the
// B back action.
func TestNavigator_ConsumedInputSkipsDefaults(t *testing.T) {
	n, _ := newTestNavigator(&scriptedInput{frames: []InputState{pressed(KeyB)}})

	s := &consumingScreen{testScreen: testScreen{rows: 1}}
	n.Push(s)
	n.Tick()

	if s.handled != 1 {
		t.Fatalf("screen handled %d snapshots, want 1", s.handled)
	}
	if n.Depth() != 1 || n.Closed() {
		t.Error("consumed B press still reached the default back action")
	}
}

// TestNavigator_BackWalksStack verifies B pops one screen per press and
// popping the last screen ends the session.
func TestNavigator_BackWalksStack(t *testing.T) {
	n, _ := newTestNavigator(&scriptedInput{frames: []InputState{
		pressed(KeyB),
		pressed(KeyB),
	}})

	bottom := &testScreen{rows: 1}
	top := &testScreen{rows: 1}
	n.Push(bottom)
	n.Push(top)

	n.Tick()
	if n.Depth() != 1 || n.Top() != Screen(bottom) {
		t.Fatalf("after first B: depth = %d, want the bottom screen alone", n.Depth())
	}
	if top.Root() != nil {
		t.Error("popped screen's tree survived")
	}

	n.Tick()
	if n.Depth() != 0 {
		t.Errorf("after second B: depth = %d, want 0", n.Depth())
	}
	if !n.Closed() {
		t.Error("popping the last screen did not close the session")
	}
}

// TestNavigator_DirectionMovesFocus verifies directional presses walk
// focus through the active screen's tree.
func TestNavigator_DirectionMovesFocus(t *testing.T) {
	n, _ := newTestNavigator(&scriptedInput{frames: []InputState{
		{}, // first tick builds the tree and places initial focus
		pressed(KeyDDown),
		pressed(KeyDDown), // clamped at the last row
		pressed(KeyDUp),
	}})

	s := &testScreen{rows: 2}
	n.Push(s)

	n.Tick()
	list := s.Root().(*List)
	if s.FocusedElement() != list.Items()[0] {
		t.Fatal("initial focus is not the first row")
	}

	n.Tick()
	if s.FocusedElement() != list.Items()[1] {
		t.Error("down press did not move focus to the second row")
	}

	n.Tick()
	if s.FocusedElement() != list.Items()[1] {
		t.Error("down press at the end moved focus past the last row")
	}

	n.Tick()
	if s.FocusedElement() != list.Items()[0] {
		t.Error("up press did not move focus back to the first row")
	}
}

// TestNavigator_ClickReachesFocusedElement verifies an A press fires
// the focused row's click handler before any other default dispatch.
func TestNavigator_ClickReachesFocusedElement(t *testing.T) {
	n, _ := newTestNavigator(&scriptedInput{frames: []InputState{
		{},
		pressed(KeyA),
	}})

	clicks := 0
	s := &frameScreen{build: func() Element {
		l := NewList()
		item := NewListItem("Row")
		item.SetClickListener(func() bool {
			clicks++
			return true
		})
		l.AddItem(item)
		return l
	}}
	n.Push(s)

	n.Tick()
	n.Tick()
	if clicks != 1 {
		t.Errorf("click handler ran %d times, want 1", clicks)
	}
}

// TestNavigator_SurfacePairing verifies exactly one acquire/release
// pair per drawn frame.
func TestNavigator_SurfacePairing(t *testing.T) {
	n, p := newTestNavigator(&scriptedInput{})
	n.Push(&testScreen{rows: 1})

	n.Tick()
	n.Tick()
	n.Tick()

	if p.acquires != 3 || p.releases != 3 {
		t.Errorf("acquires/releases = %d/%d, want 3/3", p.acquires, p.releases)
	}
}

// TestNavigator_AcquireFailureSkipsFrame verifies a failing surface
// acquisition skips the frame without touching the session state.
func TestNavigator_AcquireFailureSkipsFrame(t *testing.T) {
	n, p := newTestNavigator(&scriptedInput{})
	p.err = errors.New("layer busy")
	n.Push(&testScreen{rows: 1})

	n.Tick()

	if p.releases != 0 {
		t.Error("failed acquisition was released")
	}
	if n.Closed() || n.Depth() != 1 {
		t.Error("failed frame altered the session state")
	}
}

// TestNavigator_EmptyStackDrawsNothing verifies a tick with no screen
// and no factory never touches the surface.
func TestNavigator_EmptyStackDrawsNothing(t *testing.T) {
	n, p := newTestNavigator(&scriptedInput{})

	n.Tick()

	if p.acquires != 0 {
		t.Error("empty session acquired a surface")
	}
}

// TestNavigator_FactorySeedsFirstScreen verifies the screen factory
// supplies the initial screen on the first tick.
func TestNavigator_FactorySeedsFirstScreen(t *testing.T) {
	s := &testScreen{rows: 1}
	n, p := newTestNavigator(&scriptedInput{}, WithScreenFactory(func() Screen { return s }))

	n.Tick()

	if n.Top() != Screen(s) {
		t.Error("factory screen is not on top")
	}
	if p.acquires != 1 {
		t.Errorf("acquires = %d, want 1", p.acquires)
	}
}

// TestNavigator_RunStopsOnCancel verifies Run returns the context error
// once the context is canceled.
func TestNavigator_RunStopsOnCancel(t *testing.T) {
	n, _ := newTestNavigator(&scriptedInput{}, WithFrameInterval(time.Millisecond))
	n.Push(&testScreen{rows: 1})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- n.Run(ctx) }()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
}

// TestNavigator_RunStopsOnClose verifies Run returns nil once the
// session closes from within a tick.
func TestNavigator_RunStopsOnClose(t *testing.T) {
	n, _ := newTestNavigator(&scriptedInput{frames: []InputState{pressed(KeyB)}})
	n.Push(&testScreen{rows: 1})

	err := n.Run(context.Background())
	if err != nil {
		t.Errorf("Run returned %v, want nil", err)
	}
	if !n.Closed() {
		t.Error("session not closed after Run returned")
	}
}
