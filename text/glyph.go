package text

// Glyph is a rasterized bitmap plus metrics for one codepoint at one
// size and style.
//
// A Glyph is created at most once per distinct cache key, is immutable
// afterwards, and is owned by the FontManager for the process lifetime.
// Callers must not modify the bitmap.
type Glyph struct {
	// Bitmap holds 8-bit coverage values, row-major, Width*Height
	// bytes. It is nil when the glyph covers no pixels (for example a
	// space character).
	Bitmap []byte

	// Width and Height are the bitmap dimensions in pixels.
	Width, Height int

	// XOffset and YOffset position the bitmap's top-left corner
	// relative to the text baseline origin. YOffset is typically
	// negative for glyphs that extend above the baseline.
	XOffset, YOffset int

	// XAdvance is the horizontal cursor advance in pixels, already
	// scaled to the requested font size. It may be fractional.
	XAdvance float64

	// FontSize is the pixel size the glyph was rasterized at.
	FontSize int
}

// Empty reports whether the glyph has no visible bitmap.
func (g *Glyph) Empty() bool {
	return g == nil || g.Bitmap == nil || g.Width <= 0 || g.Height <= 0
}

// CoverageAt returns the 8-bit coverage value at (x, y), or 0 when the
// coordinates fall outside the bitmap.
func (g *Glyph) CoverageAt(x, y int) byte {
	if g.Empty() || x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return 0
	}
	return g.Bitmap[y*g.Width+x]
}
