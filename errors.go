package fontatlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for rectangle placement. Both are recoverable by the
// builder, which escalates to a fresh page and retries once.
var (
	// ErrNodeFull is returned when inserting into a region whose space
	// is already occupied.
	ErrNodeFull = errors.New("fontatlas: node full")

	// ErrDoesNotFit is returned when a rectangle is larger than the
	// free region it was offered.
	ErrDoesNotFit = errors.New("fontatlas: rectangle does not fit")
)

// RasterizeError reports that the rasterizer failed for a character,
// typically because the font has no glyph for it. It aborts the whole
// build pass; no partial atlas is produced.
type RasterizeError struct {
	Char rune
	Err  error
}

func (e *RasterizeError) Error() string {
	return fmt.Sprintf("fontatlas: rasterize %q: %v", e.Char, e.Err)
}

func (e *RasterizeError) Unwrap() error {
	return e.Err
}

// GlyphTooLargeError reports that a padded glyph bitmap failed to fit
// even a brand-new empty page. The configured page size is too small
// for the glyph; additional pages cannot help.
type GlyphTooLargeError struct {
	Char   rune
	Width  int // padded width in pixels
	Height int // padded height in pixels
}

func (e *GlyphTooLargeError) Error() string {
	return fmt.Sprintf("fontatlas: glyph %q (%dx%d padded) exceeds page size", e.Char, e.Width, e.Height)
}
