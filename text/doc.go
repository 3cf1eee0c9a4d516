// Package text provides font parsing, glyph rasterization, and a glyph
// cache for the ovl overlay toolkit.
//
// # Overview
//
// The package turns an in-memory TTF/OTF blob into 8-bit coverage
// bitmaps, one per distinct (codepoint, size, monospace) triple. Glyphs
// are rasterized lazily and cached for the process lifetime; the cache
// grows monotonically and never evicts.
//
// # Quick Start
//
//	fm := text.NewFontManager()
//	if err := fm.Initialize(fontData); err != nil {
//	    // Rendering degrades to no glyphs; this is recoverable.
//	}
//	g := fm.GetOrCreateGlyph('A', false, 32)
//
// # Parser Backends
//
// Font parsing is pluggable via RegisterParser. Two backends ship with
// the package: "ximage" (the default, golang.org/x/image/font/opentype)
// and "gotext" (github.com/go-text/typesetting with an outline
// rasterizer built on golang.org/x/image/vector).
package text
