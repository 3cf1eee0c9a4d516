package text

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"math"

	gtfont "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/vector"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
// Glyph outlines are rasterized with golang.org/x/image/vector.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &gotextParsedFont{face: face}, nil
}

// gotextParsedFont implements ParsedFont using a go-text font.Face.
//
// font.Face is not safe for concurrent use; the FontManager serializes
// all rasterization, which satisfies that constraint.
type gotextParsedFont struct {
	face *gtfont.Face
}

// Name implements ParsedFont.Name. The gotext backend does not expose
// name-table lookup through this wrapper; the default backend does.
func (f *gotextParsedFont) Name() string {
	return ""
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	return int(f.face.Upem())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *gotextParsedFont) GlyphIndex(r rune) uint16 {
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	return uint16(gid)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *gotextParsedFont) GlyphAdvance(r rune, ppem float64) float64 {
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	upem := float64(f.face.Upem())
	if upem == 0 {
		return 0
	}
	return float64(f.face.HorizontalAdvance(gid)) * ppem / upem
}

// RasterizeGlyph implements ParsedFont.RasterizeGlyph.
// The glyph outline is scaled from font units to pixels, flipped to a
// Y-down coordinate system, and filled with a scanline rasterizer.
// Bitmap and SVG glyphs are not supported by this backend.
func (f *gotextParsedFont) RasterizeGlyph(r rune, ppem float64) (RasterizedGlyph, bool) {
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return RasterizedGlyph{}, false
	}

	outline, ok := f.face.GlyphData(gid).(gtfont.GlyphOutline)
	if !ok {
		return RasterizedGlyph{}, false
	}
	if len(outline.Segments) == 0 {
		// Glyph exists but covers no pixels (e.g. space).
		return RasterizedGlyph{}, true
	}

	upem := float64(f.face.Upem())
	if upem == 0 {
		return RasterizedGlyph{}, false
	}
	scale := float32(ppem / upem)

	// Pixel-space bounding box over all on-curve and control points.
	// Control points give a conservative box (bezier hull property).
	minX, minY := float32(math.Inf(1)), float32(math.Inf(1))
	maxX, maxY := float32(math.Inf(-1)), float32(math.Inf(-1))
	for _, seg := range outline.Segments {
		for _, pt := range segmentPoints(seg) {
			x, y := pt.X*scale, -pt.Y*scale
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}

	left := int(math.Floor(float64(minX)))
	top := int(math.Floor(float64(minY)))
	w := int(math.Ceil(float64(maxX))) - left
	h := int(math.Ceil(float64(maxY))) - top
	if w <= 0 || h <= 0 {
		return RasterizedGlyph{Left: left, Top: top}, true
	}

	ras := vector.NewRasterizer(w, h)
	ras.DrawOp = draw.Src
	started := false
	for _, seg := range outline.Segments {
		// Translate so the bounding box's top-left lands at (0, 0).
		px := func(p gtfont.SegmentPoint) (float32, float32) {
			return p.X*scale - float32(left), -p.Y*scale - float32(top)
		}
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if started {
				ras.ClosePath()
			}
			x, y := px(seg.Args[0])
			ras.MoveTo(x, y)
			started = true
		case ot.SegmentOpLineTo:
			x, y := px(seg.Args[0])
			ras.LineTo(x, y)
		case ot.SegmentOpQuadTo:
			bx, by := px(seg.Args[0])
			cx, cy := px(seg.Args[1])
			ras.QuadTo(bx, by, cx, cy)
		case ot.SegmentOpCubeTo:
			bx, by := px(seg.Args[0])
			cx, cy := px(seg.Args[1])
			dx, dy := px(seg.Args[2])
			ras.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if started {
		ras.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	ras.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	return RasterizedGlyph{
		Pix:    dst.Pix,
		Width:  w,
		Height: h,
		Left:   left,
		Top:    top,
	}, true
}

// segmentPoints returns the points that participate in a segment.
func segmentPoints(seg gtfont.Segment) []gtfont.SegmentPoint {
	switch seg.Op {
	case ot.SegmentOpQuadTo:
		return seg.Args[:2]
	case ot.SegmentOpCubeTo:
		return seg.Args[:3]
	default:
		return seg.Args[:1]
	}
}
