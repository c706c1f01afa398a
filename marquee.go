package vma419

// marqueeState tracks the scrolling text set by DrawMarquee.
type marqueeState struct {
	text   string
	width  int // pixel width of the whole string, separators included
	height int // font height when the marquee was set
	x, y   int // current top-left position, may be off-screen
}

// DrawMarquee sets up text to scroll with StepMarquee and draws it at
// (left, top). The position may start off-screen on either side. Returns
// false when no font is selected or the text is empty.
func (d *Dev) DrawMarquee(text string, left, top int) bool {
	if d.font == nil || len(text) == 0 {
		return false
	}

	width := 0
	for i := 0; i < len(text); i++ {
		width += d.CharWidth(text[i]) + 1
	}

	d.marquee = marqueeState{
		text:   text,
		width:  width,
		height: d.font.Height(),
		x:      left,
		y:      top,
	}
	d.DrawString(left, top, text, GraphicsNormal)
	return true
}

// StepMarquee moves the marquee text by (dx, dy) pixels and redraws it.
// When the text has fully scrolled off an edge it wraps around to the
// opposite side and the display is cleared; wrapped reports that.
//
// Single-pixel horizontal steps shift the whole frame buffer in place and
// only redraw the glyph entering at the edge, which is much cheaper than a
// full string render. Any other step re-renders the string.
func (d *Dev) StepMarquee(dx, dy int) (wrapped bool) {
	m := &d.marquee
	m.x += dx
	m.y += dy

	if m.x < -m.width {
		m.x = d.rect.Max.X
		d.Clear()
		wrapped = true
	} else if m.x > d.rect.Max.X {
		m.x = -m.width
		d.Clear()
		wrapped = true
	}
	if m.y < -m.height {
		m.y = d.rect.Max.Y
		d.Clear()
		wrapped = true
	} else if m.y > d.rect.Max.Y {
		m.y = -m.height
		d.Clear()
		wrapped = true
	}

	switch {
	case dy == 0 && dx == -1:
		d.shiftLeft()
		// Redraw the glyph straddling the right edge.
		sw := m.x
		for i := 0; i < len(m.text); i++ {
			cw := d.CharWidth(m.text[i])
			if sw+cw >= d.rect.Max.X {
				d.DrawChar(sw, m.y, m.text[i], GraphicsNormal)
				return wrapped
			}
			sw += cw + 1
		}
	case dy == 0 && dx == 1:
		d.shiftRight()
		// Redraw the glyph straddling the left edge.
		sw := m.x
		for i := 0; i < len(m.text); i++ {
			cw := d.CharWidth(m.text[i])
			if sw+cw >= 0 {
				d.DrawChar(sw, m.y, m.text[i], GraphicsNormal)
				return wrapped
			}
			sw += cw + 1
		}
	default:
		d.DrawString(m.x, m.y, m.text, GraphicsNormal)
	}
	return wrapped
}

// shiftLeft moves every pixel one column to the left. The rightmost column
// of each buffer row fills with the dark state.
func (d *Dev) shiftLeft() {
	var fill byte
	if d.polarity == ActiveLow {
		fill = 1
	}
	seg := d.panelsWide * bytesAcross
	for i := 0; i < len(d.buf); i++ {
		if i%seg == seg-1 {
			d.buf[i] = d.buf[i]<<1 | fill
		} else {
			d.buf[i] = d.buf[i]<<1 | (d.buf[i+1]&0x80)>>7
		}
	}
}

// shiftRight moves every pixel one column to the right. The leftmost column
// of each buffer row fills with the dark state.
func (d *Dev) shiftRight() {
	var fill byte
	if d.polarity == ActiveLow {
		fill = 0x80
	}
	seg := d.panelsWide * bytesAcross
	for i := len(d.buf) - 1; i >= 0; i-- {
		if i%seg == 0 {
			d.buf[i] = d.buf[i]>>1 | fill
		} else {
			d.buf[i] = d.buf[i]>>1 | (d.buf[i-1]&1)<<7
		}
	}
}
