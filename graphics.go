package vma419

// DrawLine draws a line from (x1, y1) to (x2, y2) using Bresenham's
// algorithm. Out-of-range segments clip silently.
func (d *Dev) DrawLine(x1, y1, x2, y2 int, mode GraphicsMode) {
	dy := y2 - y1
	dx := x2 - x1
	stepx, stepy := 1, 1

	if dy < 0 {
		dy = -dy
		stepy = -1
	}
	if dx < 0 {
		dx = -dx
		stepx = -1
	}
	dy <<= 1
	dx <<= 1

	d.WritePixel(x1, y1, mode, true)
	if dx > dy {
		fraction := dy - (dx >> 1)
		for x1 != x2 {
			if fraction >= 0 {
				y1 += stepy
				fraction -= dx
			}
			x1 += stepx
			fraction += dy
			d.WritePixel(x1, y1, mode, true)
		}
	} else {
		fraction := dx - (dy >> 1)
		for y1 != y2 {
			if fraction >= 0 {
				x1 += stepx
				fraction -= dy
			}
			y1 += stepy
			fraction += dx
			d.WritePixel(x1, y1, mode, true)
		}
	}
}

// DrawCircle draws a circle of the given radius centered at (x, y) using the
// midpoint algorithm.
func (d *Dev) DrawCircle(x, y, radius int, mode GraphicsMode) {
	cx := 0
	cy := radius
	p := (5 - radius*4) / 4

	d.circleOctants(x, y, cx, cy, mode)
	for cx < cy {
		cx++
		if p < 0 {
			p += 2*cx + 1
		} else {
			cy--
			p += 2*(cx-cy) + 1
		}
		d.circleOctants(x, y, cx, cy, mode)
	}
}

// circleOctants mirrors one computed point into all eight circle octants.
func (d *Dev) circleOctants(cx, cy, x, y int, mode GraphicsMode) {
	switch {
	case x == 0:
		d.WritePixel(cx, cy+y, mode, true)
		d.WritePixel(cx, cy-y, mode, true)
		d.WritePixel(cx+y, cy, mode, true)
		d.WritePixel(cx-y, cy, mode, true)
	case x == y:
		d.WritePixel(cx+x, cy+y, mode, true)
		d.WritePixel(cx-x, cy+y, mode, true)
		d.WritePixel(cx+x, cy-y, mode, true)
		d.WritePixel(cx-x, cy-y, mode, true)
	case x < y:
		d.WritePixel(cx+x, cy+y, mode, true)
		d.WritePixel(cx-x, cy+y, mode, true)
		d.WritePixel(cx+x, cy-y, mode, true)
		d.WritePixel(cx-x, cy-y, mode, true)
		d.WritePixel(cx+y, cy+x, mode, true)
		d.WritePixel(cx-y, cy+x, mode, true)
		d.WritePixel(cx+y, cy-x, mode, true)
		d.WritePixel(cx-y, cy-x, mode, true)
	}
}

// DrawBox draws a single-pixel rectangle outline between (x1, y1) and
// (x2, y2).
func (d *Dev) DrawBox(x1, y1, x2, y2 int, mode GraphicsMode) {
	d.DrawLine(x1, y1, x2, y1, mode)
	d.DrawLine(x2, y1, x2, y2, mode)
	d.DrawLine(x2, y2, x1, y2, mode)
	d.DrawLine(x1, y2, x1, y1, mode)
}

// DrawFilledBox draws a filled rectangle between (x1, y1) and (x2, y2).
func (d *Dev) DrawFilledBox(x1, y1, x2, y2 int, mode GraphicsMode) {
	for x := x1; x <= x2; x++ {
		d.DrawLine(x, y1, x, y2, mode)
	}
}

// Pattern selects a test pattern for DrawTestPattern.
type Pattern uint8

const (
	// PatternAlt0 checkers single pixels, top-left pixel lit.
	PatternAlt0 Pattern = iota
	// PatternAlt1 checkers single pixels, top-left pixel dark.
	PatternAlt1
	// PatternStripe0 draws vertical stripes, first column lit.
	PatternStripe0
	// PatternStripe1 draws vertical stripes, first column dark.
	PatternStripe1
)

// DrawTestPattern fills the whole display with a diagnostic pattern.
func (d *Dev) DrawTestPattern(p Pattern) {
	for y := 0; y < d.rect.Max.Y; y++ {
		for x := 0; x < d.rect.Max.X; x++ {
			var on bool
			switch p {
			case PatternAlt0:
				on = (x+y)%2 == 0
			case PatternAlt1:
				on = (x+y)%2 != 0
			case PatternStripe0:
				on = x%2 == 0
			case PatternStripe1:
				on = x%2 != 0
			}
			d.SetPixel(x, y, on)
		}
	}
}
