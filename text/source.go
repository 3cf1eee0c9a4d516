package text

import (
	"fmt"
	"os"
)

// sourceConfig holds FontSource configuration assembled from options.
type sourceConfig struct {
	parserName string
}

// SourceOption configures a FontSource.
type SourceOption func(*sourceConfig)

// WithParser selects the font parser backend by registered name.
// The default is "ximage" (golang.org/x/image/font/opentype); "gotext"
// selects the go-text/typesetting backend.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// FontSource represents a loaded font file.
// It is heavyweight and should be shared; the FontManager holds exactly
// one for the process lifetime.
type FontSource struct {
	data   []byte
	parsed ParsedFont
	name   string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	var config sourceConfig
	for _, opt := range opts {
		opt(&config)
	}

	parser := getParser(config.parserName)
	if parser == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, config.parserName)
	}
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	return &FontSource{
		data:   dataCopy,
		parsed: parsed,
		name:   parsed.Name(),
	}, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- font file path is provided by the host intentionally
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Name returns the font family name, or "" if the backend does not
// expose it.
func (s *FontSource) Name() string {
	return s.name
}

// Parsed returns the parsed font backing this source.
func (s *FontSource) Parsed() ParsedFont {
	return s.parsed
}
