// Package fontatlas packs variable-sized glyph bitmaps into fixed-size
// texture pages for GPU-rendered text.
//
// # Overview
//
// A Builder drives a Rasterizer one character at a time, reserves space
// on the current page with a recursive guillotine packing tree, converts
// the rasterized bitmap into canonical RGB8 samples and composites it
// into the page buffer. When a page fills up the builder allocates a new
// one, so an atlas may span several pages. The result is an Atlas: the
// packed pages plus a character-to-placement registry a text renderer
// uses to address the texture.
//
// # Quick Start
//
//	import "github.com/gogpu/fontatlas"
//
//	data, _ := os.ReadFile("Roboto-Regular.ttf")
//	rasterizer, err := fontatlas.NewXImageRasterizer(data, 24, 72)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rasterizer.Close()
//
//	builder := fontatlas.NewBuilder(rasterizer,
//	    fontatlas.WithPageSize(1024, 1024),
//	    fontatlas.WithPadding(fontatlas.UniformPadding(1)))
//
//	atlas, err := builder.Build(fontatlas.DefaultCharset)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	entry, _ := atlas.Lookup('A')
//	_ = entry.Rect // pixel rectangle inside atlas.Page(entry.PageIndex)
//
// # Rasterizer Backends
//
// Rasterization is abstracted behind the Rasterizer interface.
// XImageRasterizer, built on golang.org/x/image/font/opentype, is the
// default grayscale backend. Backends that produce subpixel-rendered
// (LCD) bitmaps plug in the same way: the packing pipeline normalizes
// both encodings through Bitmap.RGB.
//
// # Determinism
//
// Packing is strictly sequential and placement is depth-first with a
// fixed tie-break, so identical character sequences always produce
// bit-identical atlases.
package fontatlas
