package fontatlas

import "sort"

// GlyphMetrics describes a glyph's geometry in integer pixel units.
type GlyphMetrics struct {
	// Width and Height are the bitmap dimensions without padding.
	Width  int
	Height int

	// BearingX is the horizontal offset from the pen position to the
	// bitmap's left edge.
	BearingX int

	// BearingY is the distance from the baseline up to the bitmap's
	// top edge.
	BearingY int

	// Advance is how far the pen moves after drawing the glyph.
	Advance int
}

// Placement records where one packed glyph landed.
type Placement struct {
	// PageIndex identifies the atlas page holding the glyph.
	PageIndex int

	// Rect is the glyph's pixel rectangle inside the page, with
	// padding already stripped. UV normalization against the page
	// dimensions is the consumer's responsibility.
	Rect Rect

	// Metrics holds the glyph's layout metrics.
	Metrics GlyphMetrics
}

// Atlas is the finished result of a build pass: the ordered packed
// pages plus the per-character placement registry. An Atlas is
// immutable once returned by Builder.Build and safe for concurrent
// reads.
type Atlas struct {
	pages      []*Page
	entries    map[rune]Placement
	pageWidth  int
	pageHeight int
}

// Lookup returns the placement for a character and whether the atlas
// contains it.
func (a *Atlas) Lookup(r rune) (Placement, bool) {
	entry, ok := a.entries[r]
	return entry, ok
}

// NumGlyphs returns the number of packed glyphs.
func (a *Atlas) NumGlyphs() int {
	return len(a.entries)
}

// NumPages returns the number of atlas pages.
func (a *Atlas) NumPages() int {
	return len(a.pages)
}

// Page returns the i-th atlas page. Pages appear in allocation order;
// every Placement.PageIndex is a valid argument.
func (a *Atlas) Page(i int) *Page {
	return a.pages[i]
}

// PageWidth returns the width of every page in pixels.
func (a *Atlas) PageWidth() int {
	return a.pageWidth
}

// PageHeight returns the height of every page in pixels.
func (a *Atlas) PageHeight() int {
	return a.pageHeight
}

// Runes returns the packed characters in ascending order.
func (a *Atlas) Runes() []rune {
	runes := make([]rune, 0, len(a.entries))
	for r := range a.entries {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}
