package text

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// GlyphKey uniquely identifies a cached glyph.
//
// The key is an explicit composite with structural equality: identical
// (Codepoint, Size, Monospace) triples always map to the same cached
// Glyph, and distinct triples never collide.
type GlyphKey struct {
	// Codepoint is the Unicode scalar value.
	Codepoint rune

	// Size is the requested pixel size.
	Size int32

	// Monospace selects the monospace style variant.
	Monospace bool
}

// Pack returns the key folded into a single uint64: codepoint in bits
// 32..62 plus size in bits 0..31, monospace in bit 63. It is collision
// free for any 32-bit codepoint and any size representable in 31 bits,
// and is used for compact logging and diagnostics.
func (k GlyphKey) Pack() uint64 {
	v := uint64(uint32(k.Codepoint))<<32 | uint64(uint32(k.Size))
	if k.Monospace {
		v |= 1 << 63
	}
	return v
}

// FontManagerStats holds cache statistics.
type FontManagerStats struct {
	Hits           atomic.Uint64
	Misses         atomic.Uint64
	Rasterizations atomic.Uint64
}

// FontManager owns the font source and the glyph cache.
//
// Glyphs are rasterized lazily, exactly once per distinct GlyphKey, and
// cached for the process lifetime with no eviction. The overlay render
// loop is single-threaded, but insertion is still guarded by a mutex so
// that a future background rasterizer only needs to share the manager.
type FontManager struct {
	mu     sync.Mutex
	source *FontSource
	glyphs map[GlyphKey]*Glyph
	stats  FontManagerStats
}

// NewFontManager creates an empty, uninitialized FontManager.
// Call Initialize with font data before the first glyph lookup;
// an uninitialized manager serves only blank sentinel glyphs.
func NewFontManager() *FontManager {
	return &FontManager{
		glyphs: make(map[GlyphKey]*Glyph),
	}
}

// Initialize parses the given font data and prepares the manager.
// It is idempotent: once a font has been installed, further calls are
// no-ops returning nil. On failure the manager stays uninitialized and
// all lookups fail closed with blank glyphs.
func (m *FontManager) Initialize(fontData []byte, opts ...SourceOption) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.source != nil {
		return nil
	}

	source, err := NewFontSource(fontData, opts...)
	if err != nil {
		Logger().Warn("font initialization failed, rendering degrades to no glyphs",
			slog.Any("error", err))
		return err
	}
	m.source = source
	Logger().Info("font initialized",
		slog.String("family", source.Name()),
		slog.Int("units_per_em", source.Parsed().UnitsPerEm()))
	return nil
}

// Initialized reports whether a font source has been installed.
func (m *FontManager) Initialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.source != nil
}

// Source returns the installed font source, or nil.
func (m *FontManager) Source() *FontSource {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.source
}

// GetOrCreateGlyph returns the shared Glyph for the given codepoint,
// style, and pixel size, rasterizing and caching it on first use.
//
// The read path has no side effects beyond statistics: a cached key
// always returns the identical *Glyph. When the manager is not
// initialized the call fails closed, returning a blank sentinel glyph
// with no bitmap and zero advance.
func (m *FontManager) GetOrCreateGlyph(cp rune, monospace bool, fontSize int) *Glyph {
	key := GlyphKey{Codepoint: cp, Size: int32(fontSize), Monospace: monospace}

	m.mu.Lock()
	defer m.mu.Unlock()

	if g, ok := m.glyphs[key]; ok {
		m.stats.Hits.Add(1)
		return g
	}
	m.stats.Misses.Add(1)

	if m.source == nil {
		// Fail closed: not cached, so a later Initialize still works.
		return &Glyph{FontSize: fontSize}
	}

	g := m.rasterizeLocked(cp, fontSize)
	m.glyphs[key] = g
	m.stats.Rasterizations.Add(1)
	return g
}

// rasterizeLocked renders a new Glyph. Caller holds m.mu.
func (m *FontManager) rasterizeLocked(cp rune, fontSize int) *Glyph {
	parsed := m.source.parsed
	ppem := float64(fontSize)

	g := &Glyph{
		XAdvance: parsed.GlyphAdvance(cp, ppem),
		FontSize: fontSize,
	}

	rg, ok := parsed.RasterizeGlyph(cp, ppem)
	if !ok {
		Logger().Debug("glyph rasterization failed",
			slog.Int("codepoint", int(cp)),
			slog.Int("size", fontSize))
		return g
	}
	if rg.Width > 0 && rg.Height > 0 {
		g.Bitmap = rg.Pix
		g.Width = rg.Width
		g.Height = rg.Height
	}
	g.XOffset = rg.Left
	g.YOffset = rg.Top
	return g
}

// Len returns the number of cached glyphs.
func (m *FontManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.glyphs)
}

// Stats returns cache statistics.
func (m *FontManager) Stats() (hits, misses, rasterizations uint64) {
	return m.stats.Hits.Load(), m.stats.Misses.Load(), m.stats.Rasterizations.Load()
}
