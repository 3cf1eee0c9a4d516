package ovl

// Geometry constants for the host display. ScreenWidth and ScreenHeight
// describe the full display; the layer limits bound the host window the
// overlay is placed in and play no part in pixel math.
const (
	ScreenWidth  = 1920
	ScreenHeight = 1080

	LayerMaxWidth  = 1280
	LayerMaxHeight = 720
)

// Config holds the framebuffer and layer geometry fixed at session
// configuration time. Every component sizing itself against the surface
// reads the framebuffer dimensions from here.
type Config struct {
	// FramebufferWidth and FramebufferHeight are the dimensions of the
	// pixel surface handed out by the SurfaceProvider.
	FramebufferWidth  int
	FramebufferHeight int

	// LayerWidth, LayerHeight, LayerPosX, and LayerPosY describe the
	// logical layer used only for host window placement.
	LayerWidth  int
	LayerHeight int
	LayerPosX   int
	LayerPosY   int
}

// DefaultConfig returns a configuration covering the full screen.
func DefaultConfig() Config {
	return Config{
		FramebufferWidth:  ScreenWidth,
		FramebufferHeight: ScreenHeight,
		LayerWidth:        LayerMaxWidth,
		LayerHeight:       LayerMaxHeight,
	}
}

// validate clamps nonsensical dimensions back to the defaults.
func (c Config) validate() Config {
	if c.FramebufferWidth <= 0 {
		c.FramebufferWidth = ScreenWidth
	}
	if c.FramebufferHeight <= 0 {
		c.FramebufferHeight = ScreenHeight
	}
	return c
}
