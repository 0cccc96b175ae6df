package fontatlas

// PixelFormat identifies the pixel encoding of a rasterized bitmap.
type PixelFormat int

const (
	// FormatGray is 8-bit grayscale coverage, one byte per pixel.
	FormatGray PixelFormat = iota

	// FormatLCD is subpixel-rendered coverage for LCD displays: three
	// bytes per pixel at triple horizontal resolution, one byte per
	// RGB stripe.
	FormatLCD
)

// String returns the string representation of the pixel format.
func (f PixelFormat) String() string {
	switch f {
	case FormatGray:
		return "Gray"
	case FormatLCD:
		return "LCD"
	default:
		return "Unknown"
	}
}

// BytesPerPixel returns the number of source bytes per bitmap pixel.
func (f PixelFormat) BytesPerPixel() int {
	if f == FormatLCD {
		return 3
	}
	return 1
}

// Bitmap is a rasterized glyph image as reported by a Rasterizer.
//
// Width is the rasterizer-reported width: for FormatLCD this is the
// subpixel count, three times the nominal pixel width. Stride is the
// number of bytes per source row and may exceed the tightly packed row
// size; it must be honored when indexing rows.
type Bitmap struct {
	Pix    []byte
	Width  int
	Height int
	Stride int
	Format PixelFormat
}

// NominalWidth returns the bitmap width in whole pixels.
func (b Bitmap) NominalWidth() int {
	if b.Format == FormatLCD {
		return b.Width / 3
	}
	return b.Width
}

// RGB converts the bitmap into tightly packed RGB8 samples at nominal
// width, three bytes per pixel. Grayscale coverage is replicated into
// all three channels; LCD subpixel stripes map directly onto R, G and
// B. A zero-area bitmap yields an empty result (a legitimate empty
// glyph such as a space), not an error. Panics on an unknown
// PixelFormat, which is a programming error.
func (b Bitmap) RGB() []byte {
	width := b.NominalWidth()
	if width <= 0 || b.Height <= 0 {
		return nil
	}

	out := make([]byte, width*b.Height*3)
	switch b.Format {
	case FormatGray:
		for y := 0; y < b.Height; y++ {
			row := b.Pix[y*b.Stride:]
			for x := 0; x < width; x++ {
				v := row[x]
				i := (y*width + x) * 3
				out[i+0] = v
				out[i+1] = v
				out[i+2] = v
			}
		}
	case FormatLCD:
		for y := 0; y < b.Height; y++ {
			row := b.Pix[y*b.Stride:]
			for x := 0; x < width; x++ {
				i := (y*width + x) * 3
				out[i+0] = row[x*3+0]
				out[i+1] = row[x*3+1]
				out[i+2] = row[x*3+2]
			}
		}
	default:
		panic("fontatlas: unknown pixel format")
	}
	return out
}
