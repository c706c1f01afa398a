// Package font provides packed bitmap fonts for LED dot-matrix panels.
//
// A Font is a read-only byte table in the DMD font format: a six byte header
// followed by glyph data. The header holds, in order, a two byte table length
// (zero for fixed-width fonts), the fixed glyph width, the glyph height, the
// first character code and the character count. Variable-width fonts insert a
// per-glyph width table between the header and the bitmaps.
//
// Glyph bitmaps are column-major: for every column one byte per 8 vertical
// pixels, bit 0 at the top. Fonts taller than 8 pixels store the final
// row-byte top-aligned at row height-8, so the decoder exposes that offset
// through Glyph instead of pretending the byte starts at a multiple of 8.
package font

import "image"

// Header byte offsets.
const (
	ofsLength     = 0 // two bytes, zero means fixed width
	ofsFixedWidth = 2
	ofsHeight     = 3
	ofsFirstChar  = 4
	ofsCharCount  = 5
	ofsWidthTable = 6
)

// Font is a packed glyph catalog. The underlying bytes are caller-owned,
// immutable, compile-time data; a Font is selected by reference and never
// copied.
type Font []byte

// valid reports whether the table is at least large enough to hold a header.
func (f Font) valid() bool {
	return len(f) > ofsWidthTable
}

// Fixed reports whether the font is fixed-width. A zero length field is the
// flag: fixed-width tables carry no per-glyph width entries.
func (f Font) Fixed() bool {
	return f.valid() && f[ofsLength] == 0 && f[ofsLength+1] == 0
}

// Height returns the glyph height in pixels.
func (f Font) Height() int {
	if !f.valid() {
		return 0
	}
	return int(f[ofsHeight])
}

// FirstChar returns the lowest character code the font covers.
func (f Font) FirstChar() byte {
	if !f.valid() {
		return 0
	}
	return f[ofsFirstChar]
}

// CharCount returns the number of glyphs in the font.
func (f Font) CharCount() int {
	if !f.valid() {
		return 0
	}
	return int(f[ofsCharCount])
}

// byteRows returns the number of row-bytes per glyph column.
func (f Font) byteRows() int {
	return (f.Height() + 7) / 8
}

// CharWidth returns the width in pixels of the glyph for c, or 0 when c is
// outside the font's range. Space is measured as the width of 'n', an
// approximation for fonts that do not carry a usable space glyph.
func (f Font) CharWidth(c byte) int {
	if c == ' ' {
		c = 'n'
	}
	if !f.valid() {
		return 0
	}
	first := f.FirstChar()
	if c < first || int(c-first) >= f.CharCount() {
		return 0
	}
	if f.Fixed() {
		return int(f[ofsFixedWidth])
	}
	return int(f[ofsWidthTable+int(c-first)])
}

// Glyph is a decoded view into a Font's bitmap for one character.
type Glyph struct {
	Width  int
	Height int
	data   []byte // Width*byteRows bytes, column-major
}

// Column returns the row-byte i of column j. Byte 0 covers rows 0-7; the last
// byte of a glyph taller than 8 pixels covers rows starting at RowOffset of
// that byte.
func (g Glyph) Column(j, i int) byte {
	return g.data[j+i*g.Width]
}

// RowOffset returns the pixel row covered by bit 0 of row-byte i. For every
// byte but the last it is i*8; the final byte of a tall glyph is top-aligned
// at height-8 so that the remainder rows land at the bottom without phantom
// rows past the glyph height.
func (g Glyph) RowOffset(i int) int {
	if rows := (g.Height + 7) / 8; i == rows-1 && rows > 1 {
		return g.Height - 8
	}
	return i * 8
}

// ByteRows returns the number of row-bytes per column.
func (g Glyph) ByteRows() int {
	return (g.Height + 7) / 8
}

// Glyph returns the decoded glyph for c. ok is false when c is outside the
// font's range or the table is truncated.
func (f Font) Glyph(c byte) (g Glyph, ok bool) {
	if !f.valid() {
		return Glyph{}, false
	}
	first := f.FirstChar()
	if c < first || int(c-first) >= f.CharCount() {
		return Glyph{}, false
	}
	idx := int(c - first)
	rows := f.byteRows()

	var width, offset int
	if f.Fixed() {
		width = int(f[ofsFixedWidth])
		offset = idx*rows*width + ofsWidthTable
	} else {
		// Sum the widths of all preceding glyphs to locate the bitmap.
		sum := 0
		for i := 0; i < idx; i++ {
			sum += int(f[ofsWidthTable+i])
		}
		offset = sum*rows + f.CharCount() + ofsWidthTable
		width = int(f[ofsWidthTable+idx])
	}
	if offset+width*rows > len(f) {
		return Glyph{}, false
	}
	return Glyph{
		Width:  width,
		Height: f.Height(),
		data:   f[offset : offset+width*rows],
	}, true
}

// StringWidth returns the width in pixels of s rendered in f, including one
// column of spacing after every glyph.
func (f Font) StringWidth(s string) int {
	w := 0
	for i := 0; i < len(s); i++ {
		w += f.CharWidth(s[i]) + 1
	}
	return w
}

// Bounds returns the bounding box of a single glyph cell for fixed-width
// fonts, or the tallest possible cell for variable-width fonts.
func (f Font) Bounds() image.Rectangle {
	w := 0
	if f.Fixed() && f.valid() {
		w = int(f[ofsFixedWidth])
	}
	return image.Rect(0, 0, w, f.Height())
}
