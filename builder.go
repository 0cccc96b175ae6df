package fontatlas

// RasterizedGlyph is the product of a Rasterizer for one character:
// the coverage bitmap and the glyph's layout metrics.
type RasterizedGlyph struct {
	Bitmap  Bitmap
	Metrics GlyphMetrics
}

// Rasterizer renders a character into a bitmap with metrics. It is the
// builder's collaborator for font loading and outline rasterization;
// the builder treats it as a black box.
//
// An error means the font cannot produce a usable glyph for the rune.
// A zero-area bitmap is not an error: it is a legitimate empty glyph
// such as a space.
type Rasterizer interface {
	Rasterize(r rune) (*RasterizedGlyph, error)
}

// Builder packs rasterized glyphs into fixed-size atlas pages.
//
// Builds are strictly sequential: each glyph's placement depends on
// the packing-tree state left by all prior glyphs, so a pass cannot be
// parallelized. A Builder is not safe for concurrent use, but distinct
// Builder instances are independent and may run in parallel.
type Builder struct {
	rasterizer Rasterizer
	config     builderConfig
}

// NewBuilder creates a builder that obtains glyphs from the given
// rasterizer. By default pages are 1024x1024 with one pixel of padding
// around each glyph; see WithPageSize and WithPadding.
func NewBuilder(r Rasterizer, opts ...BuilderOption) *Builder {
	config := defaultBuilderConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Builder{
		rasterizer: r,
		config:     config,
	}
}

// Build rasterizes and packs every rune of chars, in order, and
// returns the finished atlas. Input order affects packing locality but
// not correctness; a later occurrence of a rune overwrites its earlier
// placement.
//
// When the current page cannot hold a glyph, one fresh page is
// allocated and the placement retried exactly once. A glyph that fails
// on a brand-new empty page can never fit, so that case aborts with a
// *GlyphTooLargeError. A rasterizer failure aborts with a
// *RasterizeError. On any error no atlas is returned; pages populated
// before the failure are discarded.
func (b *Builder) Build(chars string) (*Atlas, error) {
	logger := Logger()
	pad := b.config.padding

	pages := []*Page{NewPage(b.config.pageWidth, b.config.pageHeight)}
	entries := make(map[rune]Placement)

	for _, c := range chars {
		glyph, err := b.rasterizer.Rasterize(c)
		if err != nil {
			return nil, &RasterizeError{Char: c, Err: err}
		}

		padded := NewRect(0, 0,
			glyph.Bitmap.NominalWidth()+pad.Horizontal(),
			glyph.Bitmap.Height+pad.Vertical())

		page := len(pages) - 1
		placed, err := pages[page].Place(padded)
		if err != nil {
			// Escalate once: allocate a fresh page and retry. Failing
			// on an empty page means no page can ever hold the glyph.
			pages = append(pages, NewPage(b.config.pageWidth, b.config.pageHeight))
			page = len(pages) - 1
			logger.Info("fontatlas: page allocated",
				"page", page,
				"width", b.config.pageWidth,
				"height", b.config.pageHeight)

			placed, err = pages[page].Place(padded)
			if err != nil {
				return nil, &GlyphTooLargeError{Char: c, Width: padded.Width, Height: padded.Height}
			}
		}

		dst := NewRect(placed.Top+pad.Top, placed.Left+pad.Left,
			placed.Width-pad.Horizontal(), placed.Height-pad.Vertical())

		pages[page].Blit(dst, glyph.Bitmap.RGB())
		entries[c] = Placement{PageIndex: page, Rect: dst, Metrics: glyph.Metrics}

		logger.Debug("fontatlas: glyph placed",
			"char", string(c),
			"page", page,
			"rect", dst.String())
	}

	return &Atlas{
		pages:      pages,
		entries:    entries,
		pageWidth:  b.config.pageWidth,
		pageHeight: b.config.pageHeight,
	}, nil
}
