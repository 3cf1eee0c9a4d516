package ovl

import "testing"

// TestRGBA4_Packing verifies channel packing and accessors.
func TestRGBA4_Packing(t *testing.T) {
	c := RGBA4(0x1, 0x2, 0x3, 0x4)
	if c.R() != 1 || c.G() != 2 || c.B() != 3 || c.A() != 4 {
		t.Errorf("channels: got (%d,%d,%d,%d), want (1,2,3,4)", c.R(), c.G(), c.B(), c.A())
	}
	if c.Raw() != 0x4321 {
		t.Errorf("raw: got %#x, want 0x4321", c.Raw())
	}
	if got := ColorFromRaw(0x4321); got != c {
		t.Errorf("ColorFromRaw: got %#x, want %#x", got.Raw(), c.Raw())
	}
}

// TestRGBA4_Masking verifies components never exceed 4 bits.
func TestRGBA4_Masking(t *testing.T) {
	c := RGBA4(0xFF, 0x1F, 0x10, 0xF0)
	if c.R() != 0xF || c.G() != 0xF || c.B() != 0x0 || c.A() != 0x0 {
		t.Errorf("channels: got (%d,%d,%d,%d), want (15,15,0,0)", c.R(), c.G(), c.B(), c.A())
	}
}

// TestColor_WithA verifies alpha replacement leaves rgb untouched.
func TestColor_WithA(t *testing.T) {
	c := RGBA4(0x5, 0x6, 0x7, 0xF).WithA(0x3)
	if c.R() != 5 || c.G() != 6 || c.B() != 7 || c.A() != 3 {
		t.Errorf("got (%d,%d,%d,%d), want (5,6,7,3)", c.R(), c.G(), c.B(), c.A())
	}
}

// TestBlendOver_TransparentSource verifies that blending a fully
// transparent color leaves the destination unchanged, for any rgb.
func TestBlendOver_TransparentSource(t *testing.T) {
	dsts := []Color{
		RGBA4(0, 0, 0, 0),
		RGBA4(15, 15, 15, 15),
		RGBA4(3, 7, 11, 13),
	}
	for _, dst := range dsts {
		for _, src := range []Color{RGBA4(0, 0, 0, 0), RGBA4(15, 8, 2, 0)} {
			if got := BlendOver(dst, src); got != dst {
				t.Errorf("BlendOver(%#x, %#x): got %#x, want destination unchanged", dst, src, got)
			}
		}
	}
}

// TestBlendOver_OpaqueSource verifies that a source with maximum alpha
// replaces the rgb channels while the destination alpha survives.
func TestBlendOver_OpaqueSource(t *testing.T) {
	dst := RGBA4(1, 2, 3, 9)
	src := RGBA4(12, 13, 14, 15)
	got := BlendOver(dst, src)
	// (dst*0 + src*15) >> 4 loses the bottom bit of src*15/16; for
	// channel v the result is (v*15)>>4, i.e. v or v-1.
	wantR := uint8(12 * 15 >> 4)
	wantG := uint8(13 * 15 >> 4)
	wantB := uint8(14 * 15 >> 4)
	if got.R() != wantR || got.G() != wantG || got.B() != wantB {
		t.Errorf("rgb: got (%d,%d,%d), want (%d,%d,%d)",
			got.R(), got.G(), got.B(), wantR, wantG, wantB)
	}
	if got.A() != dst.A() {
		t.Errorf("alpha: got %d, want destination alpha %d", got.A(), dst.A())
	}
}

// TestBlendOver_Formula spot-checks the 4-bit fixed-point formula.
func TestBlendOver_Formula(t *testing.T) {
	dst := RGBA4(8, 8, 8, 5)
	src := RGBA4(15, 0, 7, 8)
	got := BlendOver(dst, src)
	// dst' = (dst*(15-8) + src*8) >> 4
	if want := uint8((8*7 + 15*8) >> 4); got.R() != want {
		t.Errorf("R: got %d, want %d", got.R(), want)
	}
	if want := uint8((8*7 + 0*8) >> 4); got.G() != want {
		t.Errorf("G: got %d, want %d", got.G(), want)
	}
	if want := uint8((8*7 + 7*8) >> 4); got.B() != want {
		t.Errorf("B: got %d, want %d", got.B(), want)
	}
	if got.A() != 5 {
		t.Errorf("A: got %d, want 5", got.A())
	}
}
