package vma419

import "github.com/flavioheleno/vma419/font"

// SelectFont swaps the active font. The font bytes are caller-owned and must
// outlive the device; nothing is copied.
func (d *Dev) SelectFont(f font.Font) {
	d.font = f
}

// CharWidth returns the width in pixels of c in the active font, or 0 when
// no font is selected or c is outside the font's range.
func (d *Dev) CharWidth(c byte) int {
	return d.font.CharWidth(c)
}

// DrawChar draws a single glyph with its top-left corner at (x, y) and
// returns its width so the caller can advance the cursor.
//
// A code outside the active font's range returns 0 and draws nothing. A
// glyph entirely off the left or top edge returns its width without drawing,
// so layout still advances. A start position past the right or bottom edge
// returns -1, which DrawString uses to stop early. Space is rendered as an
// inverse-filled box of the 'n' width.
func (d *Dev) DrawChar(x, y int, c byte, mode GraphicsMode) int {
	if d.font == nil {
		return 0
	}
	if x > d.rect.Max.X || y > d.rect.Max.Y {
		return -1
	}

	height := d.font.Height()
	if c == ' ' {
		w := d.CharWidth(' ')
		d.DrawFilledBox(x, y, x+w, y+height, GraphicsInverse)
		return w
	}

	g, ok := d.font.Glyph(c)
	if !ok {
		return 0
	}
	if x < -g.Width || y < -height {
		return g.Width
	}

	rows := g.ByteRows()
	for j := 0; j < g.Width; j++ {
		for i := rows - 1; i >= 0; i-- {
			data := g.Column(j, i)
			offset := g.RowOffset(i)
			for k := 0; k < 8; k++ {
				// The last row-byte of a tall glyph overlaps the one
				// before it; skip the overlap and anything past the
				// glyph height.
				if offset+k < i*8 || offset+k > height {
					continue
				}
				d.WritePixel(x+j, y+offset+k, mode, data&(1<<k) != 0)
			}
		}
	}
	return g.Width
}

// DrawString draws text left to right starting at (x, y). A one column
// separator follows every glyph, drawn in inverse mode so the gap is cleared
// regardless of what was underneath. Drawing stops at the right edge.
func (d *Dev) DrawString(x, y int, text string, mode GraphicsMode) {
	if d.font == nil {
		return
	}
	if x >= d.rect.Max.X || y >= d.rect.Max.Y {
		return
	}
	height := d.font.Height()
	if y+height < 0 {
		return
	}

	width := 0
	d.DrawLine(x-1, y, x-1, y+height, GraphicsInverse)
	for i := 0; i < len(text); i++ {
		w := d.DrawChar(x+width, y, text[i], mode)
		if w < 0 {
			return
		}
		if w > 0 {
			width += w
			d.DrawLine(x+width, y, x+width, y+height, GraphicsInverse)
			width++
		}
		if x+width >= d.rect.Max.X {
			return
		}
	}
}
