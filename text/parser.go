package text

import "sync"

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (e.g., golang.org/x/image/font/opentype vs go-text/typesetting).
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file. It abstracts the underlying
// font representation so that the FontManager never touches a concrete
// parsing library.
type ParsedFont interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 (the .notdef glyph) if the rune is not covered.
	GlyphIndex(r rune) uint16

	// GlyphAdvance returns the horizontal advance for the rune's glyph
	// in pixels at the given ppem (pixels per em).
	GlyphAdvance(r rune, ppem float64) float64

	// RasterizeGlyph renders the rune's glyph at the given ppem into an
	// 8-bit coverage bitmap. The second return value is false when the
	// glyph cannot be rasterized at all; a true return with a nil Pix
	// means the glyph exists but covers no pixels.
	RasterizeGlyph(r rune, ppem float64) (RasterizedGlyph, bool)
}

// RasterizedGlyph couples an 8-bit coverage bitmap with its placement
// relative to the text baseline origin.
type RasterizedGlyph struct {
	// Pix holds coverage values, row-major, Width*Height bytes.
	// Nil when the glyph covers no pixels.
	Pix []byte

	// Width and Height are the bitmap dimensions in pixels.
	Width, Height int

	// Left and Top are the offsets of the bitmap's top-left corner from
	// the baseline origin. Top is negative for glyphs that extend above
	// the baseline.
	Left, Top int
}

// parserRegistry holds registered font parsers.
// The default parser is "ximage" (golang.org/x/image).
var (
	parserMu       sync.RWMutex
	parserRegistry = map[string]FontParser{
		"ximage": &ximageParser{},
		"gotext": &gotextParser{},
	}
)

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser under the given name.
// Registering a parser with an existing name replaces it.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or nil if not registered.
// An empty name selects the default parser.
func getParser(name string) FontParser {
	parserMu.RLock()
	defer parserMu.RUnlock()
	if name == "" {
		name = defaultParserName
	}
	return parserRegistry[name]
}
