package fontatlas

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	"golang.org/x/text/unicode/norm"
)

// DefaultCharset is a printable-ASCII glyph repertoire suitable for
// terminal-style text. It is caller-side configuration: Build accepts
// any character sequence.
const DefaultCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789\\|/?.>,<`!@#$%^&*()_-=+[]{};:'\" "

// CharsForText returns the character set needed to render text:
// NFC-normalized and deduplicated, preserving first-seen order.
// Normalizing first means composed forms are looked up in the font's
// character map the way shapers emit them.
func CharsForText(text string) string {
	normalized := norm.NFC.String(text)
	seen := make(map[rune]bool, len(normalized))
	out := make([]rune, 0, len(normalized))
	for _, r := range normalized {
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return string(out)
}

// CoveredChars filters chars down to the runes the font's character map
// actually covers, preserving order. Building from the filtered set
// avoids aborting the pass on the first uncovered rune.
//
// fontData is raw TTF/OTF bytes; parsing errors are returned as-is.
func CoveredChars(fontData []byte, chars string) (string, error) {
	face, err := font.ParseTTF(bytes.NewReader(fontData))
	if err != nil {
		return "", fmt.Errorf("fontatlas: parse font: %w", err)
	}

	out := make([]rune, 0, len(chars))
	for _, r := range chars {
		if _, ok := face.NominalGlyph(r); ok {
			out = append(out, r)
		}
	}
	return string(out), nil
}
