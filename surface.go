package ovl

import (
	"image"
	"image/png"
	"os"
)

// Surface is the rectangular RGBA4444 pixel buffer targeted by one
// frame's render pass. The pixel slice may be caller-supplied (a shared
// framebuffer mapping) or owned.
type Surface struct {
	width  int
	height int
	pix    []Color
}

// NewSurface creates a surface with an owned, zeroed pixel buffer.
func NewSurface(width, height int) *Surface {
	return &Surface{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// WrapSurface creates a surface over a caller-supplied pixel slice.
// The slice must hold at least width*height entries; the caller keeps
// ownership of the memory.
func WrapSurface(pix []Color, width, height int) *Surface {
	return &Surface{
		width:  width,
		height: height,
		pix:    pix,
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Pix returns the raw pixel slice.
func (s *Surface) Pix() []Color { return s.pix }

// Contains reports whether (x, y) lies within the surface bounds.
func (s *Surface) Contains(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// At returns the pixel at (x, y), or ColorTransparent out of bounds.
func (s *Surface) At(x, y int) Color {
	if !s.Contains(x, y) {
		return ColorTransparent
	}
	return s.pix[y*s.width+x]
}

// Set writes the pixel at (x, y) unconditionally; out-of-bounds
// coordinates are silently clipped.
func (s *Surface) Set(x, y int, c Color) {
	if !s.Contains(x, y) {
		return
	}
	s.pix[y*s.width+x] = c
}

// Fill overwrites every pixel with c.
func (s *Surface) Fill(c Color) {
	for i := range s.pix {
		s.pix[i] = c
	}
}

// Image expands the 4-bit channels to 8 bits (value * 17) and returns
// the surface as an image.NRGBA. Intended for hosts and tests that want
// to inspect or export a frame.
func (s *Surface) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c := s.pix[y*s.width+x]
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R() * 17
			img.Pix[i+1] = c.G() * 17
			img.Pix[i+2] = c.B() * 17
			img.Pix[i+3] = c.A() * 17
		}
	}
	return img
}

// SavePNG writes the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is host-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, s.Image())
}

// SurfaceProvider hands out the draw surface for one frame. Exactly one
// Acquire/Release pair happens per tick's render phase; the handle must
// not be used after Release.
type SurfaceProvider interface {
	// Acquire returns the frame's draw surface.
	Acquire() (*Surface, error)

	// Release submits the surface back to the host.
	Release(s *Surface) error
}
