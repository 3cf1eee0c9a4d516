package ovl

// Default palette for overlay chrome. All colors are RGBA4444.
var (
	// ColorFrameBackground is the translucent dark backdrop painted
	// behind every frame.
	ColorFrameBackground = RGBA4(0x0, 0x0, 0x0, 0xD)

	// ColorTransparent draws nothing when blended.
	ColorTransparent = RGBA4(0x0, 0x0, 0x0, 0x0)

	// ColorHighlight outlines the focused selectable element.
	ColorHighlight = RGBA4(0x0, 0xF, 0xD, 0xF)

	// ColorFrame is used for separators and borders.
	ColorFrame = RGBA4(0x7, 0x7, 0x7, 0x7)

	// ColorText is the primary text color.
	ColorText = RGBA4(0xF, 0xF, 0xF, 0xF)

	// ColorDescription is the dimmed secondary text color.
	ColorDescription = RGBA4(0xA, 0xA, 0xA, 0xF)

	// ColorClickAnimation tints a row while its click is animating.
	ColorClickAnimation = RGBA4(0x0, 0x2, 0x2, 0xF)
)

// ListItemDefaultHeight is the natural height of a standard list row.
const ListItemDefaultHeight = 70

// focusHighlightInset is how far the focus outline extends beyond the
// focused element's box on every side.
const focusHighlightInset = 2

// Frame chrome metrics: header text placement and the content inset
// that reserves header space.
const (
	frameTitleX       = 20
	frameTitleY       = 50
	frameTitleSize    = 32
	frameSubtitleY    = 85
	frameSubtitleSize = 15

	frameContentInsetX      = 20
	frameContentInsetTop    = 100
	frameContentInsetBottom = 50
)
