package fontatlas

import (
	"fmt"
	"image"
)

// RenderText composites text into a standalone image using the glyph
// pixels already packed in the atlas. It is intended for debugging and
// golden-image inspection rather than production rendering; a real
// renderer consumes placements via AppendTextVertices or Lookup.
//
// Every character of text must have an atlas entry.
func RenderText(atlas *Atlas, text string) (*image.RGBA, error) {
	// First pass: measure the bounding box around the baseline.
	var top, bottom, left, right int
	advance := 0
	for _, c := range text {
		entry, ok := atlas.Lookup(c)
		if !ok {
			return nil, fmt.Errorf("fontatlas: no atlas entry for %q", c)
		}
		m := entry.Metrics

		top = max(top, m.BearingY)
		bottom = max(bottom, m.Height-m.BearingY)
		left = max(left, -(advance + m.BearingX))
		right = max(right, advance+m.BearingX+m.Width)

		advance += m.Advance
	}

	img := image.NewRGBA(image.Rect(0, 0, right+left+1, top+bottom+1))

	// Second pass: copy glyph pixels from their pages.
	advance = 0
	for _, c := range text {
		entry, _ := atlas.Lookup(c)
		m := entry.Metrics
		page := atlas.Page(entry.PageIndex)

		for y := 0; y < entry.Rect.Height; y++ {
			for x := 0; x < entry.Rect.Width; x++ {
				srcX := entry.Rect.Left + x
				srcY := entry.Rect.Top + y
				si := (srcY*page.Width() + srcX) * pageBytesPerPixel

				dstX := x + left + advance + m.BearingX
				dstY := y + top - m.BearingY
				di := dstY*img.Stride + dstX*4

				img.Pix[di+0] = page.pix[si+0]
				img.Pix[di+1] = page.pix[si+1]
				img.Pix[di+2] = page.pix[si+2]
				img.Pix[di+3] = 0xFF
			}
		}

		advance += m.Advance
	}

	return img, nil
}
