package fontatlas

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// XImageRasterizer renders glyphs with golang.org/x/image/font/opentype.
// It produces FormatGray bitmaps.
//
// XImageRasterizer is not safe for concurrent use: the underlying
// font.Face carries internal rasterization buffers. Builds are
// sequential anyway; create one rasterizer per builder.
type XImageRasterizer struct {
	face font.Face
}

// NewXImageRasterizer parses TTF/OTF font data and prepares a face at
// the given size in points and resolution in dots per inch.
func NewXImageRasterizer(fontData []byte, size, dpi float64) (*XImageRasterizer, error) {
	parsed, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("fontatlas: parse font: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fontatlas: create face: %w", err)
	}

	return &XImageRasterizer{face: face}, nil
}

// NewXImageRasterizerFromFile loads the font file at path and delegates
// to NewXImageRasterizer.
func NewXImageRasterizerFromFile(path string, size, dpi float64) (*XImageRasterizer, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fontatlas: read font file: %w", err)
	}
	return NewXImageRasterizer(data, size, dpi)
}

// Close releases the underlying font face.
func (x *XImageRasterizer) Close() error {
	return x.face.Close()
}

// Rasterize implements Rasterizer. Glyphs with empty outlines (such as
// the space) produce a zero-area bitmap with a nonzero advance. Runes
// the font's character map lacks render as the font's .notdef glyph;
// filter them out beforehand with CoveredChars if that is unwanted.
func (x *XImageRasterizer) Rasterize(r rune) (*RasterizedGlyph, error) {
	bounds, advance, ok := x.face.GlyphBounds(r)
	if !ok {
		return nil, fmt.Errorf("fontatlas: font has no glyph for %q", r)
	}

	// Glyph bounds are fixed-point with y growing downward and the
	// origin on the baseline. Snap outward to whole pixels.
	minX := bounds.Min.X.Floor()
	minY := bounds.Min.Y.Floor()
	maxX := bounds.Max.X.Ceil()
	maxY := bounds.Max.Y.Ceil()
	width := maxX - minX
	height := maxY - minY

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	if width > 0 && height > 0 {
		d := &font.Drawer{
			Dst:  mask,
			Src:  image.White,
			Face: x.face,
			Dot:  fixed.Point26_6{X: fixed.I(-minX), Y: fixed.I(-minY)},
		}
		d.DrawString(string(r))
	}

	return &RasterizedGlyph{
		Bitmap: Bitmap{
			Pix:    mask.Pix,
			Width:  width,
			Height: height,
			Stride: mask.Stride,
			Format: FormatGray,
		},
		Metrics: GlyphMetrics{
			Width:    width,
			Height:   height,
			BearingX: minX,
			BearingY: -minY, // top of the bitmap sits -minY above the baseline
			Advance:  advance.Round(),
		},
	}, nil
}
