package text

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
type ximageParsedFont struct {
	font *opentype.Font
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) uint16 {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(r rune, ppem float64) float64 {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	advance, err := f.font.GlyphAdvance(&buf, idx, floatToFixed(ppem), font.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat(advance)
}

// RasterizeGlyph implements ParsedFont.RasterizeGlyph.
// It renders the glyph through an opentype face at DPI 72, so the face
// size equals the requested ppem.
func (f *ximageParsedFont) RasterizeGlyph(r rune, ppem float64) (RasterizedGlyph, bool) {
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    ppem,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return RasterizedGlyph{}, false
	}
	defer func() {
		_ = face.Close()
	}()

	dr, mask, maskp, _, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return RasterizedGlyph{}, false
	}

	w, h := dr.Dx(), dr.Dy()
	rg := RasterizedGlyph{
		Width:  w,
		Height: h,
		Left:   dr.Min.X,
		Top:    dr.Min.Y,
	}
	if w <= 0 || h <= 0 {
		// Zero-area glyph (e.g. space): metrics only, no bitmap.
		rg.Width, rg.Height = 0, 0
		return rg, true
	}

	rg.Pix = make([]byte, w*h)
	if alpha, isAlpha := mask.(*image.Alpha); isAlpha {
		for y := 0; y < h; y++ {
			src := alpha.Pix[(maskp.Y+y-alpha.Rect.Min.Y)*alpha.Stride+(maskp.X-alpha.Rect.Min.X):]
			copy(rg.Pix[y*w:(y+1)*w], src[:w])
		}
	} else {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
				rg.Pix[y*w+x] = byte(a >> 8)
			}
		}
	}
	return rg, true
}

// floatToFixed converts a float64 pixel value to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
