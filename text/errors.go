package text

import "errors"

// Sentinel errors for the text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownParser is returned when a source option names a parser
	// backend that has not been registered.
	ErrUnknownParser = errors.New("text: unknown font parser")

	// ErrNotInitialized is returned by operations that require a parsed
	// font before Initialize has succeeded.
	ErrNotInitialized = errors.New("text: font manager not initialized")
)
