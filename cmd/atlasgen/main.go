// Command atlasgen packs a font's glyphs into atlas pages and writes
// them as PNG images.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/fontatlas"
)

func main() {
	var (
		fontPath   = flag.String("font", "", "path to a TTF/OTF font file")
		size       = flag.Float64("size", 24, "font size in points")
		dpi        = flag.Float64("dpi", 72, "resolution in dots per inch")
		pageWidth  = flag.Int("page-width", 1024, "atlas page width in pixels")
		pageHeight = flag.Int("page-height", 1024, "atlas page height in pixels")
		padding    = flag.Int("padding", 1, "padding around each glyph in pixels")
		chars      = flag.String("chars", fontatlas.DefaultCharset, "characters to pack")
		text       = flag.String("text", "", "derive the character set from this text instead of -chars")
		out        = flag.String("out", "atlas", "output prefix; pages are written as <prefix>-N.png")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *fontPath == "" {
		fmt.Fprintln(os.Stderr, "atlasgen: -font is required")
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	fontatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	data, err := os.ReadFile(*fontPath)
	if err != nil {
		log.Fatalf("atlasgen: %v", err)
	}

	charset := *chars
	if *text != "" {
		charset = fontatlas.CharsForText(*text)
	}

	covered, err := fontatlas.CoveredChars(data, charset)
	if err != nil {
		log.Fatalf("atlasgen: %v", err)
	}
	if skipped := len([]rune(charset)) - len([]rune(covered)); skipped > 0 {
		log.Printf("atlasgen: font lacks %d of the requested characters, skipping them", skipped)
	}

	rasterizer, err := fontatlas.NewXImageRasterizer(data, *size, *dpi)
	if err != nil {
		log.Fatalf("atlasgen: %v", err)
	}
	defer func() {
		_ = rasterizer.Close()
	}()

	builder := fontatlas.NewBuilder(rasterizer,
		fontatlas.WithPageSize(*pageWidth, *pageHeight),
		fontatlas.WithPadding(fontatlas.UniformPadding(*padding)))

	atlas, err := builder.Build(covered)
	if err != nil {
		log.Fatalf("atlasgen: %v", err)
	}

	for i := 0; i < atlas.NumPages(); i++ {
		path := fmt.Sprintf("%s-%d.png", *out, i)
		if err := atlas.Page(i).SavePNG(path); err != nil {
			log.Fatalf("atlasgen: save %s: %v", path, err)
		}
		log.Printf("atlasgen: wrote %s", path)
	}

	log.Printf("atlasgen: packed %d glyphs into %d page(s)", atlas.NumGlyphs(), atlas.NumPages())
}
