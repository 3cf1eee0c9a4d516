package ovl

import (
	"github.com/ovlkit/ovl/text"
)

// Renderer draws into the frame's Surface: clipped pixel writes, alpha
// blending, filled rectangles, and glyph-based text. It is an explicit
// object handed to every draw call rather than a process-wide singleton.
//
// The target surface is installed once per frame with SetSurface; all
// operations silently do nothing while no surface is installed.
type Renderer struct {
	surface *Surface
	fonts   *text.FontManager
}

// NewRenderer creates a renderer drawing text through the given font
// manager. A nil manager is replaced with an empty one, which renders
// no glyphs until it is initialized.
func NewRenderer(fonts *text.FontManager) *Renderer {
	if fonts == nil {
		fonts = text.NewFontManager()
	}
	return &Renderer{fonts: fonts}
}

// Fonts returns the font manager used for text drawing.
func (r *Renderer) Fonts() *text.FontManager {
	return r.fonts
}

// SetSurface installs the surface targeted by subsequent draw calls.
// Pass nil after releasing the frame's surface.
func (r *Renderer) SetSurface(s *Surface) {
	r.surface = s
}

// Surface returns the currently installed surface, or nil.
func (r *Renderer) Surface() *Surface {
	return r.surface
}

// SetPixel writes the pixel at (x, y) unconditionally if it is within
// the surface bounds, and is a no-op otherwise.
func (r *Renderer) SetPixel(x, y int, c Color) {
	if r.surface == nil {
		return
	}
	r.surface.Set(x, y, c)
}

// SetPixelBlend blends c over the destination pixel at (x, y) using
// 4-bit fixed-point arithmetic; see BlendOver. Out-of-bounds
// coordinates and fully transparent colors are no-ops.
func (r *Renderer) SetPixelBlend(x, y int, c Color) {
	s := r.surface
	if s == nil || !s.Contains(x, y) || c.A() == 0 {
		return
	}
	i := y*s.width + x
	s.pix[i] = BlendOver(s.pix[i], c)
}

// DrawRect blends a filled rectangle. The rectangle is clipped to the
// surface bounds first; a rectangle fully outside draws nothing.
func (r *Renderer) DrawRect(x, y, w, h int, c Color) {
	s := r.surface
	if s == nil {
		return
	}
	xStart := max(0, x)
	yStart := max(0, y)
	xEnd := min(s.width, x+w)
	yEnd := min(s.height, y+h)

	for yi := yStart; yi < yEnd; yi++ {
		for xi := xStart; xi < xEnd; xi++ {
			r.SetPixelBlend(xi, yi, c)
		}
	}
}

// DrawRoundedRect draws a filled rectangle. Corner rounding is not
// implemented in this toolkit; the radius is accepted for API
// compatibility and ignored.
func (r *Renderer) DrawRoundedRect(x, y, w, h int, radius float64, c Color) {
	r.DrawRect(x, y, w, h, c)
}

// DrawBorderedRoundedRect draws a filled rectangle covering the border
// area. As with DrawRoundedRect, rounding and border insets are
// accepted for API compatibility and ignored.
func (r *Renderer) DrawBorderedRoundedRect(x, y, w, h int, radius, borderWidth float64, c Color) {
	r.DrawRect(x, y, w, h, c)
}

// DrawString draws UTF-8 text with its baseline origin fontSize below
// (x, y). A newline codepoint resets the horizontal cursor to x and
// advances the vertical cursor by fontSize. Decoding stops at the first
// invalid byte; the remainder is not drawn. Glyph coverage scales the
// requested color's alpha: the coverage byte's high nibble multiplies
// the color alpha and the product is re-quantized to 4 bits.
func (r *Renderer) DrawString(s string, monospace bool, x, y, fontSize int, c Color) {
	if r.surface == nil {
		return
	}
	b := []byte(s)
	curX, curY := x, y
	for len(b) > 0 {
		cp, size := text.DecodeRune(b)
		if size == 0 {
			break
		}
		b = b[size:]

		if cp == '\n' {
			curX = x
			curY += fontSize
			continue
		}

		g := r.fonts.GetOrCreateGlyph(cp, monospace, fontSize)
		if !g.Empty() {
			for gy := 0; gy < g.Height; gy++ {
				for gx := 0; gx < g.Width; gx++ {
					cov := g.Bitmap[gy*g.Width+gx]
					if cov == 0 {
						continue
					}
					alpha := (c.A() * (cov >> 4)) >> 4
					r.SetPixelBlend(
						curX+gx+g.XOffset,
						curY+gy+g.YOffset+fontSize,
						c.WithA(alpha),
					)
				}
			}
		}
		// The cursor truncates per glyph; MeasureText applies the same
		// rule so measured widths match drawn widths exactly.
		curX += int(g.XAdvance)
	}
}

// MeasureText returns the width of the longest line and the total
// height (fontSize per line) that DrawString would produce for s.
// It uses the same decoding and advance logic without touching the
// surface, so the width always matches the horizontal cursor position
// DrawString reaches at the end of the longest line.
func (r *Renderer) MeasureText(s string, monospace bool, fontSize int) (width, height int) {
	b := []byte(s)
	lineWidth := 0
	height = fontSize
	for len(b) > 0 {
		cp, size := text.DecodeRune(b)
		if size == 0 {
			break
		}
		b = b[size:]

		if cp == '\n' {
			width = max(width, lineWidth)
			lineWidth = 0
			height += fontSize
			continue
		}

		g := r.fonts.GetOrCreateGlyph(cp, monospace, fontSize)
		lineWidth += int(g.XAdvance)
	}
	return max(width, lineWidth), height
}
