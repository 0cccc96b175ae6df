package fontatlas

// Padding is the reserved border around each packed bitmap, in pixels.
// It keeps texture sampling from bleeding into neighboring glyphs.
// Padding is added before packing and stripped from the stored
// placement.
type Padding struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// UniformPadding returns padding with the same margin on all sides.
func UniformPadding(n int) Padding {
	return Padding{Left: n, Right: n, Top: n, Bottom: n}
}

// Horizontal returns the combined left and right margins.
func (p Padding) Horizontal() int {
	return p.Left + p.Right
}

// Vertical returns the combined top and bottom margins.
func (p Padding) Vertical() int {
	return p.Top + p.Bottom
}

// BuilderOption configures a Builder.
type BuilderOption func(*builderConfig)

// builderConfig holds configuration for Builder.
type builderConfig struct {
	pageWidth  int
	pageHeight int
	padding    Padding
}

// defaultBuilderConfig returns the default builder configuration:
// 1024x1024 pages with one pixel of padding on every side.
func defaultBuilderConfig() builderConfig {
	return builderConfig{
		pageWidth:  1024,
		pageHeight: 1024,
		padding:    UniformPadding(1),
	}
}

// WithPageSize sets the atlas page dimensions in pixels.
// Every page of a build pass has identical size.
func WithPageSize(width, height int) BuilderOption {
	return func(c *builderConfig) {
		c.pageWidth = width
		c.pageHeight = height
	}
}

// WithPadding sets the padding margins reserved around each glyph.
func WithPadding(p Padding) BuilderOption {
	return func(c *builderConfig) {
		c.padding = p
	}
}
