package fontatlas

import "fmt"

// Rect is an axis-aligned rectangle in pixel units, addressed by its
// top-left corner. All fields are non-negative; a zero width or height
// is legal and represents an empty region (for example the bitmap of a
// space character).
type Rect struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// NewRect returns a rectangle at (top, left) with the given dimensions.
func NewRect(top, left, width, height int) Rect {
	return Rect{Top: top, Left: left, Width: width, Height: height}
}

// Right returns the exclusive right edge (Left + Width).
func (r Rect) Right() int {
	return r.Left + r.Width
}

// Bottom returns the exclusive bottom edge (Top + Height).
func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// Area returns Width * Height.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// FitsWithin reports whether r fits inside other, comparing sizes only.
// Position is ignored.
func (r Rect) FitsWithin(other Rect) bool {
	return r.Width <= other.Width && r.Height <= other.Height
}

// SameSize reports whether r and other have identical dimensions.
func (r Rect) SameSize(other Rect) bool {
	return r.Width == other.Width && r.Height == other.Height
}

// String returns a compact representation for logging and test output.
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.Top, r.Left, r.Width, r.Height)
}
