package vma419

import "testing"

func TestDrawLine(t *testing.T) {
	d := newBufferDev(1, 1, ActiveLow, RowMapDirect)

	d.DrawLine(0, 0, 7, 0, GraphicsNormal)
	for x := 0; x <= 7; x++ {
		if !d.Pixel(x, 0) {
			t.Errorf("horizontal line missing pixel at x=%d", x)
		}
	}
	if d.Pixel(8, 0) {
		t.Error("horizontal line overshot")
	}

	d.Clear()
	d.DrawLine(3, 2, 3, 9, GraphicsNormal)
	for y := 2; y <= 9; y++ {
		if !d.Pixel(3, y) {
			t.Errorf("vertical line missing pixel at y=%d", y)
		}
	}

	d.Clear()
	d.DrawLine(0, 0, 5, 5, GraphicsNormal)
	for i := 0; i <= 5; i++ {
		if !d.Pixel(i, i) {
			t.Errorf("diagonal missing pixel at (%d, %d)", i, i)
		}
	}

	// Reversed endpoints draw the same line.
	d.Clear()
	d.DrawLine(5, 5, 0, 0, GraphicsNormal)
	for i := 0; i <= 5; i++ {
		if !d.Pixel(i, i) {
			t.Errorf("reversed diagonal missing pixel at (%d, %d)", i, i)
		}
	}
}

func TestDrawLineClips(t *testing.T) {
	d := newBufferDev(1, 1, ActiveLow, RowMapDirect)
	d.DrawLine(-5, 8, 40, 8, GraphicsNormal)
	for x := 0; x < 32; x++ {
		if !d.Pixel(x, 8) {
			t.Errorf("clipped line missing pixel at x=%d", x)
		}
	}
}

func TestDrawBox(t *testing.T) {
	d := newBufferDev(1, 1, ActiveLow, RowMapDirect)
	d.DrawBox(2, 2, 10, 9, GraphicsNormal)

	for x := 2; x <= 10; x++ {
		if !d.Pixel(x, 2) || !d.Pixel(x, 9) {
			t.Errorf("box edge missing at x=%d", x)
		}
	}
	for y := 2; y <= 9; y++ {
		if !d.Pixel(2, y) || !d.Pixel(10, y) {
			t.Errorf("box edge missing at y=%d", y)
		}
	}
	if d.Pixel(5, 5) {
		t.Error("box interior should stay dark")
	}
}

func TestDrawFilledBox(t *testing.T) {
	d := newBufferDev(1, 1, ActiveLow, RowMapDirect)
	d.DrawFilledBox(1, 1, 6, 4, GraphicsNormal)

	for y := 1; y <= 4; y++ {
		for x := 1; x <= 6; x++ {
			if !d.Pixel(x, y) {
				t.Errorf("fill missing at (%d, %d)", x, y)
			}
		}
	}
	if d.Pixel(0, 0) || d.Pixel(7, 5) {
		t.Error("fill spilled outside the box")
	}
}

func TestDrawCircle(t *testing.T) {
	d := newBufferDev(1, 1, ActiveLow, RowMapDirect)
	d.DrawCircle(16, 8, 5, GraphicsNormal)

	// The four cardinal points are always on the circle.
	for _, pt := range [][2]int{{16, 3}, {16, 13}, {11, 8}, {21, 8}} {
		if !d.Pixel(pt[0], pt[1]) {
			t.Errorf("cardinal point (%d, %d) missing", pt[0], pt[1])
		}
	}
	if d.Pixel(16, 8) {
		t.Error("circle center should stay dark")
	}
	if d.Pixel(16, 4) {
		t.Error("circle should be an outline, not a disc")
	}
}

func TestDrawTestPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
		lit     func(x, y int) bool
	}{
		{"alt0", PatternAlt0, func(x, y int) bool { return (x+y)%2 == 0 }},
		{"alt1", PatternAlt1, func(x, y int) bool { return (x+y)%2 != 0 }},
		{"stripe0", PatternStripe0, func(x, y int) bool { return x%2 == 0 }},
		{"stripe1", PatternStripe1, func(x, y int) bool { return x%2 != 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newBufferDev(1, 1, ActiveLow, RowMapDirect)
			d.DrawTestPattern(tt.pattern)
			for y := 0; y < 16; y++ {
				for x := 0; x < 32; x++ {
					if d.Pixel(x, y) != tt.lit(x, y) {
						t.Fatalf("pixel (%d, %d) = %v, want %v",
							x, y, d.Pixel(x, y), tt.lit(x, y))
					}
				}
			}
		})
	}
}
