package font

import "testing"

// tiny fixed-width 2x7 test font: '0' and '1'.
var fixed2x7 = Font{
	0x00, 0x00, 0x02, 0x07, '0', 0x02,
	0x7F, 0x41, // '0'
	0x00, 0x7F, // '1'
}

// tiny variable-width test font: 'A' (width 3) and 'B' (width 1), height 7.
var var3x7 = Font{
	0x0C, 0x00, 0x00, 0x07, 'A', 0x02,
	0x03, 0x01, // width table
	0x7E, 0x09, 0x7E, // 'A'
	0x7F, // 'B'
}

// 8x14 test font: single glyph '0', two row-bytes per column, the second
// top-aligned at row 6.
var tall8x14 = Font{
	0x00, 0x00, 0x08, 0x0E, '0', 0x01,
	0xFF, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0xFF, // rows 0-7
	0xFC, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0xFC, // rows 8-13 (bits 2-7)
}

func TestFixed(t *testing.T) {
	tests := []struct {
		name string
		f    Font
		want bool
	}{
		{"fixed test font", fixed2x7, true},
		{"variable test font", var3x7, false},
		{"System5x7", System5x7, true},
		{"Prop5x7", Prop5x7, false},
		{"Digits10x14", Digits10x14, true},
		{"nil font", nil, false},
		{"truncated", Font{0, 0, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Fixed(); got != tt.want {
				t.Errorf("Fixed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHeaderFields(t *testing.T) {
	tests := []struct {
		name   string
		f      Font
		height int
		first  byte
		count  int
	}{
		{"fixed test font", fixed2x7, 7, '0', 2},
		{"variable test font", var3x7, 7, 'A', 2},
		{"System5x7", System5x7, 7, ' ', 95},
		{"Prop5x7", Prop5x7, 7, ' ', 95},
		{"Digits10x14", Digits10x14, 14, '0', 11},
		{"nil font", nil, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Height(); got != tt.height {
				t.Errorf("Height() = %d, want %d", got, tt.height)
			}
			if got := tt.f.FirstChar(); got != tt.first {
				t.Errorf("FirstChar() = %d, want %d", got, tt.first)
			}
			if got := tt.f.CharCount(); got != tt.count {
				t.Errorf("CharCount() = %d, want %d", got, tt.count)
			}
		})
	}
}

func TestCharWidth(t *testing.T) {
	tests := []struct {
		name string
		f    Font
		c    byte
		want int
	}{
		{"fixed in range", fixed2x7, '0', 2},
		{"fixed out of range", fixed2x7, 'x', 0},
		{"variable first", var3x7, 'A', 3},
		{"variable second", var3x7, 'B', 1},
		{"variable out of range", var3x7, 'z', 0},
		{"system font", System5x7, 'A', 5},
		{"prop font narrow", Prop5x7, '!', 1},
		{"prop font wide", Prop5x7, 'A', 5},
		{"digits", Digits10x14, '7', 10},
		{"digits out of range", Digits10x14, 'A', 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.CharWidth(tt.c); got != tt.want {
				t.Errorf("CharWidth(%q) = %d, want %d", tt.c, got, tt.want)
			}
		})
	}
}

func TestCharWidthSpaceUsesN(t *testing.T) {
	// Space is measured as 'n' even when the font has a space glyph.
	if got, want := Prop5x7.CharWidth(' '), Prop5x7.CharWidth('n'); got != want {
		t.Errorf("CharWidth(' ') = %d, want width of 'n' = %d", got, want)
	}
	if got := System5x7.CharWidth(' '); got != 5 {
		t.Errorf("CharWidth(' ') = %d, want 5", got)
	}
}

func TestGlyphFixed(t *testing.T) {
	g, ok := fixed2x7.Glyph('1')
	if !ok {
		t.Fatal("Glyph('1') not found")
	}
	if g.Width != 2 || g.Height != 7 {
		t.Fatalf("Glyph('1') = %dx%d, want 2x7", g.Width, g.Height)
	}
	if g.Column(0, 0) != 0x00 || g.Column(1, 0) != 0x7F {
		t.Errorf("Glyph('1') columns = 0x%02X, 0x%02X, want 0x00, 0x7F",
			g.Column(0, 0), g.Column(1, 0))
	}
}

func TestGlyphVariable(t *testing.T) {
	g, ok := var3x7.Glyph('B')
	if !ok {
		t.Fatal("Glyph('B') not found")
	}
	if g.Width != 1 {
		t.Fatalf("Glyph('B').Width = %d, want 1", g.Width)
	}
	// 'B' bitmap starts after the 'A' bitmap (3 columns in).
	if g.Column(0, 0) != 0x7F {
		t.Errorf("Glyph('B').Column(0, 0) = 0x%02X, want 0x7F", g.Column(0, 0))
	}
}

func TestGlyphOutOfRange(t *testing.T) {
	if _, ok := fixed2x7.Glyph('2'); ok {
		t.Error("Glyph('2') should not be found")
	}
	if _, ok := fixed2x7.Glyph(0); ok {
		t.Error("Glyph(0) should not be found")
	}
	if _, ok := Font(nil).Glyph('A'); ok {
		t.Error("nil font should have no glyphs")
	}
}

func TestGlyphRowOffset(t *testing.T) {
	g, ok := tall8x14.Glyph('0')
	if !ok {
		t.Fatal("Glyph('0') not found")
	}
	if g.ByteRows() != 2 {
		t.Fatalf("ByteRows() = %d, want 2", g.ByteRows())
	}
	if got := g.RowOffset(0); got != 0 {
		t.Errorf("RowOffset(0) = %d, want 0", got)
	}
	// The final byte is top-aligned at height-8 = 6, so its bits 2-7 land on
	// rows 8-13.
	if got := g.RowOffset(1); got != 6 {
		t.Errorf("RowOffset(1) = %d, want 6", got)
	}
}

func TestGlyphRowOffsetSingleByte(t *testing.T) {
	g, _ := fixed2x7.Glyph('0')
	if got := g.RowOffset(0); got != 0 {
		t.Errorf("RowOffset(0) = %d, want 0 for single row-byte glyphs", got)
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		name string
		f    Font
		s    string
		want int
	}{
		{"empty", System5x7, "", 0},
		{"one glyph", System5x7, "A", 6},
		{"two glyphs", System5x7, "AB", 12},
		{"variable", var3x7, "AB", 6},
		{"with space", System5x7, "A B", 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.StringWidth(tt.s); got != tt.want {
				t.Errorf("StringWidth(%q) = %d, want %d", tt.s, got, tt.want)
			}
		})
	}
}

func TestShippedFontTableSizes(t *testing.T) {
	// Fixed fonts: header + count*width*byteRows bytes.
	if want := 6 + 95*5; len(System5x7) != want {
		t.Errorf("len(System5x7) = %d, want %d", len(System5x7), want)
	}
	if want := 6 + 11*10*2; len(Digits10x14) != want {
		t.Errorf("len(Digits10x14) = %d, want %d", len(Digits10x14), want)
	}
	// Variable font: header + width table + sum of widths, and the length
	// field records the total table size.
	sum := 0
	for c := byte(' '); c <= '~'; c++ {
		sum += Prop5x7.CharWidth(c)
	}
	// CharWidth(' ') reports the 'n' width; the stored space glyph is 2 wide.
	sum += 2 - Prop5x7.CharWidth('n')
	if want := 6 + 95 + sum; len(Prop5x7) != want {
		t.Errorf("len(Prop5x7) = %d, want %d", len(Prop5x7), want)
	}
	if got := int(Prop5x7[0]) | int(Prop5x7[1])<<8; got != len(Prop5x7) {
		t.Errorf("Prop5x7 length field = %d, want %d", got, len(Prop5x7))
	}
}

func TestShippedFontGlyphsDecodable(t *testing.T) {
	for _, f := range []struct {
		name string
		font Font
	}{
		{"System5x7", System5x7},
		{"Prop5x7", Prop5x7},
		{"Digits10x14", Digits10x14},
	} {
		first := f.font.FirstChar()
		for i := 0; i < f.font.CharCount(); i++ {
			c := first + byte(i)
			g, ok := f.font.Glyph(c)
			if !ok {
				t.Errorf("%s: Glyph(%d) not decodable", f.name, c)
				continue
			}
			if g.Width <= 0 {
				t.Errorf("%s: Glyph(%d).Width = %d", f.name, c, g.Width)
			}
		}
	}
}
