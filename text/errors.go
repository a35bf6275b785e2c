package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrGlyphNotFound is returned when the font has no glyph for a rune.
	ErrGlyphNotFound = errors.New("text: glyph not found")

	// ErrInvalidSize is returned for non-positive glyph sizes.
	ErrInvalidSize = errors.New("text: invalid size")
)

// FontError wraps a parse failure with the backend that reported it.
type FontError struct {
	Backend string
	Err     error
}

func (e *FontError) Error() string {
	return fmt.Sprintf("text: %s: %v", e.Backend, e.Err)
}

func (e *FontError) Unwrap() error {
	return e.Err
}
