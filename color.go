package ovl

// Color is a 16-bit packed color with four 4-bit channels.
// Bits 0-3 hold red, 4-7 green, 8-11 blue, and 12-15 alpha.
// Channel values are always in [0, 15].
type Color uint16

// RGBA4 creates a Color from 4-bit channel values.
// Each component is masked to its low 4 bits.
func RGBA4(r, g, b, a uint8) Color {
	return Color(uint16(r&0xF) | uint16(g&0xF)<<4 | uint16(b&0xF)<<8 | uint16(a&0xF)<<12)
}

// ColorFromRaw creates a Color from a raw packed 16-bit value.
func ColorFromRaw(raw uint16) Color {
	return Color(raw)
}

// Raw returns the packed 16-bit value.
func (c Color) Raw() uint16 {
	return uint16(c)
}

// R returns the red channel in [0, 15].
func (c Color) R() uint8 { return uint8(c & 0xF) }

// G returns the green channel in [0, 15].
func (c Color) G() uint8 { return uint8(c >> 4 & 0xF) }

// B returns the blue channel in [0, 15].
func (c Color) B() uint8 { return uint8(c >> 8 & 0xF) }

// A returns the alpha channel in [0, 15].
func (c Color) A() uint8 { return uint8(c >> 12 & 0xF) }

// WithA returns the color with its alpha channel replaced.
func (c Color) WithA(a uint8) Color {
	return c&0x0FFF | Color(uint16(a&0xF)<<12)
}

// BlendOver composites src over dst using 4-bit fixed-point arithmetic:
// each color channel becomes (dst*(15-a) + src*a) >> 4 with integer
// truncation. The destination's alpha channel is preserved unchanged so
// that composited overlays never alter the base surface's alpha plane.
func BlendOver(dst, src Color) Color {
	a := uint16(src.A())
	if a == 0 {
		return dst
	}
	inv := 15 - a
	return RGBA4(
		uint8((uint16(dst.R())*inv+uint16(src.R())*a)>>4),
		uint8((uint16(dst.G())*inv+uint16(src.G())*a)>>4),
		uint8((uint16(dst.B())*inv+uint16(src.B())*a)>>4),
		dst.A(),
	)
}
