package fontatlas

// TextVertex is one vertex of a textured glyph quad.
type TextVertex struct {
	// Position is the vertex position in pixels, y-up, relative to the
	// caller's coordinate system.
	Position [2]float32

	// UV is the texture coordinate normalized against the glyph's
	// page, with V=0 at the bottom edge (OpenGL convention).
	UV [2]float32

	// Layer is the atlas page index, for sampling from a texture
	// array. Always zero for single-page atlases.
	Layer float32
}

// AppendTextVertices appends two textured triangles (six vertices) per
// glyph of text to dst and returns the extended slice. The pen starts
// at (x, y) on the baseline and advances per glyph; positions grow
// upward from the baseline.
//
// Characters missing from the atlas fall back to the space glyph; when
// the atlas has no space glyph either they are skipped.
func AppendTextVertices(dst []TextVertex, atlas *Atlas, text string, x, y int) []TextVertex {
	pageWidth := float32(atlas.PageWidth())
	pageHeight := float32(atlas.PageHeight())

	advance := 0
	for _, c := range text {
		entry, ok := atlas.Lookup(c)
		if !ok {
			if entry, ok = atlas.Lookup(' '); !ok {
				continue
			}
		}
		m := entry.Metrics

		left := float32(x + advance + m.BearingX)
		right := float32(x + advance + m.BearingX + m.Width)
		top := float32(y + m.BearingY)
		bottom := float32(y + m.BearingY - m.Height)

		uvLeft := float32(entry.Rect.Left) / pageWidth
		uvRight := float32(entry.Rect.Right()) / pageWidth
		uvTop := (pageHeight - float32(entry.Rect.Top)) / pageHeight
		uvBottom := (pageHeight - float32(entry.Rect.Bottom())) / pageHeight

		layer := float32(entry.PageIndex)

		dst = append(dst,
			TextVertex{Position: [2]float32{left, bottom}, UV: [2]float32{uvLeft, uvBottom}, Layer: layer},
			TextVertex{Position: [2]float32{right, bottom}, UV: [2]float32{uvRight, uvBottom}, Layer: layer},
			TextVertex{Position: [2]float32{left, top}, UV: [2]float32{uvLeft, uvTop}, Layer: layer},
			TextVertex{Position: [2]float32{right, bottom}, UV: [2]float32{uvRight, uvBottom}, Layer: layer},
			TextVertex{Position: [2]float32{right, top}, UV: [2]float32{uvRight, uvTop}, Layer: layer},
			TextVertex{Position: [2]float32{left, top}, UV: [2]float32{uvLeft, uvTop}, Layer: layer},
		)

		advance += m.Advance
	}
	return dst
}
