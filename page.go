package fontatlas

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gogpu/gputypes"
)

// pageBytesPerPixel is the canonical page encoding: tightly packed
// RGB8, three bytes per sample.
const pageBytesPerPixel = 3

// Page is one fixed-size atlas canvas: a packed RGB8 pixel buffer plus
// the packing tree that assigns regions of it. A page is exclusively
// owned by the builder while a pass is in progress and read-only
// afterwards.
//
// Page implements image.Image for direct inspection and encoding.
type Page struct {
	width  int
	height int
	pix    []byte
	tree   *PackTree
}

// NewPage creates an empty page with the given dimensions.
func NewPage(width, height int) *Page {
	return &Page{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*pageBytesPerPixel),
		tree:   NewPackTree(NewRect(0, 0, width, height)),
	}
}

// Width returns the page width in pixels.
func (p *Page) Width() int {
	return p.width
}

// Height returns the page height in pixels.
func (p *Page) Height() int {
	return p.height
}

// Pix returns the raw pixel data: tightly packed RGB8, three bytes per
// pixel, row-major from the top-left corner.
func (p *Page) Pix() []byte {
	return p.pix
}

// Place reserves a region for the given padded rectangle and returns
// its position in the page. It returns ErrNodeFull or ErrDoesNotFit
// when the page has no room left for it.
func (p *Page) Place(padded Rect) (Rect, error) {
	return p.tree.Insert(padded)
}

// Blit copies tightly packed RGB8 samples into the page at dst's
// origin. dst must lie fully inside the page and rgb must hold exactly
// dst.Width*dst.Height samples; a violation is a programming error and
// panics. A zero-area dst is a no-op.
func (p *Page) Blit(dst Rect, rgb []byte) {
	if dst.Empty() {
		return
	}
	if dst.Left < 0 || dst.Top < 0 || dst.Right() > p.width || dst.Bottom() > p.height {
		panic("fontatlas: blit rectangle outside page")
	}
	if len(rgb) != dst.Width*dst.Height*pageBytesPerPixel {
		panic("fontatlas: blit source size mismatch")
	}

	rowLen := dst.Width * pageBytesPerPixel
	for y := 0; y < dst.Height; y++ {
		di := ((dst.Top+y)*p.width + dst.Left) * pageBytesPerPixel
		copy(p.pix[di:di+rowLen], rgb[y*rowLen:(y+1)*rowLen])
	}
}

// ColorModel implements the image.Image interface.
func (p *Page) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements the image.Image interface.
func (p *Page) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// At implements the image.Image interface. Pixels outside the page are
// transparent black.
func (p *Page) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * pageBytesPerPixel
	return color.RGBA{R: p.pix[i+0], G: p.pix[i+1], B: p.pix[i+2], A: 0xFF}
}

// Image returns a copy of the page as an image.RGBA with opaque alpha.
func (p *Page) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		si := y * p.width * pageBytesPerPixel
		di := y * img.Stride
		for x := 0; x < p.width; x++ {
			img.Pix[di+0] = p.pix[si+0]
			img.Pix[di+1] = p.pix[si+1]
			img.Pix[di+2] = p.pix[si+2]
			img.Pix[di+3] = 0xFF
			si += pageBytesPerPixel
			di += 4
		}
	}
	return img
}

// RGBA returns the page pixels expanded to RGBA8 with opaque alpha,
// ready for texture upload in the format reported by Format.
func (p *Page) RGBA() []byte {
	out := make([]byte, p.width*p.height*4)
	for i, j := 0, 0; i < len(p.pix); i, j = i+pageBytesPerPixel, j+4 {
		out[j+0] = p.pix[i+0]
		out[j+1] = p.pix[i+1]
		out[j+2] = p.pix[i+2]
		out[j+3] = 0xFF
	}
	return out
}

// Format returns the texture format matching the buffer produced by
// RGBA.
func (p *Page) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// SavePNG writes the page to a PNG file.
func (p *Page) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.Image())
}
