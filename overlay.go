package ovl

import (
	"context"
	"log/slog"
	"time"

	"github.com/ovlkit/ovl/text"
)

// ScreenFactory produces the initial screen when the navigator's stack
// is empty and a session starts.
type ScreenFactory func() Screen

// NavigatorOption configures a Navigator.
type NavigatorOption func(*Navigator)

// WithScreenFactory installs the host's initial-screen factory.
func WithScreenFactory(f ScreenFactory) NavigatorOption {
	return func(n *Navigator) {
		n.factory = f
	}
}

// WithConfig overrides the framebuffer and layer geometry.
func WithConfig(cfg Config) NavigatorOption {
	return func(n *Navigator) {
		n.cfg = cfg.validate()
	}
}

// WithFrameInterval sets the pacing for Run. Zero (the default) runs
// frames back to back, leaving pacing to the surface provider.
func WithFrameInterval(d time.Duration) NavigatorOption {
	return func(n *Navigator) {
		n.frameInterval = d
	}
}

// Navigator owns the LIFO stack of screens and drives the per-frame
// cycle: poll input, forward it to the active screen, update the
// screen, acquire the draw surface, paint, release.
//
// The top of the stack is the sole active screen. Replacing the top
// destroys the previous top's element tree (and with it the focus
// reference) before the new top is installed.
type Navigator struct {
	cfg           Config
	provider      SurfaceProvider
	input         InputSource
	renderer      *Renderer
	factory       ScreenFactory
	frameInterval time.Duration

	stack  []Screen
	closed bool
}

// NewNavigator creates a navigator rendering through the given surface
// provider, polling the given input source, and drawing text via fonts.
// input may be nil for hosts without input hardware.
func NewNavigator(provider SurfaceProvider, input InputSource, fonts *text.FontManager, opts ...NavigatorOption) *Navigator {
	n := &Navigator{
		cfg:      DefaultConfig(),
		provider: provider,
		input:    input,
		renderer: NewRenderer(fonts),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Renderer returns the navigator's renderer.
func (n *Navigator) Renderer() *Renderer {
	return n.renderer
}

// Config returns the active geometry configuration.
func (n *Navigator) Config() Config {
	return n.cfg
}

// Push makes s the active screen on top of the stack.
func (n *Navigator) Push(s Screen) {
	if s == nil {
		return
	}
	n.stack = append(n.stack, s)
	Logger().Info("screen pushed", slog.Int("depth", len(n.stack)))
}

// Replace destroys the current top screen, including its owned element
// tree, and installs s in its place. Only the top is swapped; screens
// beneath it are untouched. It is the transition used for moving
// between screens within a session.
func (n *Navigator) Replace(s Screen) {
	if top := n.Top(); top != nil {
		top.state().teardown()
		n.stack = n.stack[:len(n.stack)-1]
	}
	n.Push(s)
}

// Pop destroys the top screen and returns to the one beneath it.
// Popping the last screen ends the session.
func (n *Navigator) Pop() {
	top := n.Top()
	if top == nil {
		return
	}
	top.state().teardown()
	n.stack = n.stack[:len(n.stack)-1]
	Logger().Info("screen popped", slog.Int("depth", len(n.stack)))
	if len(n.stack) == 0 {
		n.Close()
	}
}

// Top returns the active screen, or nil while the stack is empty.
func (n *Navigator) Top() Screen {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

// Depth returns the number of screens on the stack.
func (n *Navigator) Depth() int {
	return len(n.stack)
}

// Close marks the session as finished. The driving loop observes this
// and terminates instead of rendering further frames.
func (n *Navigator) Close() {
	n.closed = true
}

// Closed reports whether the session has finished.
func (n *Navigator) Closed() bool {
	return n.closed
}

// Tick runs one frame to completion. With an empty stack it first asks
// the screen factory for an initial screen; if none is available the
// frame is skipped and nothing is drawn. All failures inside a tick are
// handled locally; the only externally observable failure state is
// "nothing drawn this frame".
func (n *Navigator) Tick() {
	if n.closed {
		return
	}
	if len(n.stack) == 0 {
		if n.factory != nil {
			n.Push(n.factory())
		}
		if len(n.stack) == 0 {
			Logger().Debug("no screen available, skipping frame")
			return
		}
	}
	top := n.stack[len(n.stack)-1]

	// Input is polled at most once per tick, before dispatch.
	var in InputState
	if n.input != nil {
		in = n.input.Poll()
	}
	if !top.HandleInput(in.KeysDown, in.KeysHeld, in.Touch, in.LeftStick, in.RightStick) {
		n.dispatchDefault(top, in)
	}
	if n.closed {
		return
	}

	// Dispatch may have popped or replaced the active screen; the rest
	// of the frame runs against whatever is on top now.
	top = n.Top()
	if top == nil {
		return
	}

	updateFrame(top, n.cfg.FramebufferWidth, n.cfg.FramebufferHeight)

	surface, err := n.provider.Acquire()
	if err != nil || surface == nil {
		Logger().Warn("surface acquisition failed, skipping frame", slog.Any("error", err))
		return
	}
	defer func() {
		n.renderer.SetSurface(nil)
		if err := n.provider.Release(surface); err != nil {
			Logger().Warn("surface release failed", slog.Any("error", err))
		}
	}()

	n.renderer.SetSurface(surface)
	n.renderer.DrawRect(0, 0, surface.Width(), surface.Height(), ColorFrameBackground)
	top.state().Render(n.renderer)
}

// dispatchDefault applies the navigator's default input handling when
// the active screen did not consume the snapshot: the focused element
// gets a chance to handle a click, B walks back through the stack, and
// directional keys move focus through the tree.
func (n *Navigator) dispatchDefault(top Screen, in InputState) {
	if in.KeysDown == 0 {
		return
	}
	b := top.state()

	if focused := b.FocusedElement(); focused != nil && focused.HandleClick(in.KeysDown) {
		return
	}
	if in.KeysDown.Any(KeyB) {
		n.Pop()
		return
	}

	var dir FocusDirection
	switch {
	case in.KeysDown.Any(KeyUp):
		dir = FocusUp
	case in.KeysDown.Any(KeyDown):
		dir = FocusDown
	case in.KeysDown.Any(KeyLeft):
		dir = FocusLeft
	case in.KeysDown.Any(KeyRight):
		dir = FocusRight
	default:
		return
	}
	if b.root == nil {
		return
	}
	if next := b.root.RequestFocus(b.FocusedElement(), dir); next != nil {
		b.RequestFocus(next, dir)
	}
}

// Run drives frames until the session closes or ctx is canceled. With a
// frame interval configured, frames are paced by a ticker; otherwise
// they run back to back and pacing is left to the surface provider.
func (n *Navigator) Run(ctx context.Context) error {
	if n.frameInterval > 0 {
		ticker := time.NewTicker(n.frameInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				n.Tick()
				if n.closed {
					return nil
				}
			}
		}
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n.Tick()
		if n.closed {
			return nil
		}
	}
}
