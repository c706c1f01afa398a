package vma419

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/flavioheleno/vma419/font"
	"github.com/flavioheleno/vma419/image1bit"
)

// Panel geometry. One physical panel is a 32x16 grid, 4 bytes per pixel row.
const (
	pixelsAcross = 32
	pixelsDown   = 16
	bytesAcross  = pixelsAcross / 8
	panelBytes   = bytesAcross * pixelsDown // 64 bytes per panel
)

// GraphicsMode selects how a pixel write combines with the buffer's current
// bit. Modes are stateless and chosen per draw call.
type GraphicsMode uint8

const (
	// GraphicsNormal sets the pixel to the written value.
	GraphicsNormal GraphicsMode = iota
	// GraphicsInverse sets the pixel to the opposite of the written value.
	GraphicsInverse
	// GraphicsToggle flips the pixel when the written value is true.
	GraphicsToggle
	// GraphicsOr turns pixels on only; a false write leaves the pixel alone.
	GraphicsOr
	// GraphicsNor turns already-lit pixels off only; it never sets a pixel.
	GraphicsNor
)

// Polarity is the frame buffer bit convention of the panel revision. It is
// fixed at construction; every component above the buffer speaks logical
// on/off and the buffer layer applies the polarity exactly once.
type Polarity uint8

const (
	// ActiveLow means a set bit is a dark pixel. The stock DMD shift
	// registers use this convention; bytes are inverted on the wire.
	ActiveLow Polarity = iota
	// ActiveHigh means a set bit is a lit pixel and bytes go out raw.
	ActiveHigh
)

// RowMapping selects how logical rows map onto the panel's 4 row groups.
// The two policies correspond to hardware revisions whose row-select decoder
// is wired differently; pick the one that matches the panel, never mix.
type RowMapping uint8

const (
	// RowMapDirect is the identity mapping: row group n lights on phase n.
	RowMapDirect RowMapping = iota
	// RowMapShifted permutes row groups {0->3, 1->0, 2->1, 3->2} in both
	// the buffer layout and the row-select encoding, for the revision with
	// the rotated select decoder.
	RowMapShifted
)

// rowMapShift is the group permutation applied by RowMapShifted.
var rowMapShift = [4]int{3, 0, 1, 2}

// group maps a row-group index through the policy.
func (m RowMapping) group(g int) int {
	if m == RowMapShifted {
		return rowMapShift[g&3]
	}
	return g & 3
}

// pixelMask indexes the bit for a pixel within its byte, MSB first.
var pixelMask = [8]byte{0x80, 0x40, 0x20, 0x10, 0x08, 0x04, 0x02, 0x01}

// Pins are the panel control lines besides the serial bus. All four are
// required.
type Pins struct {
	A     gpio.PinOut // row-select address bit 0
	B     gpio.PinOut // row-select address bit 1
	Latch gpio.PinOut // strobe moving shift-register contents to the drivers
	OE    gpio.PinOut // output enable; high blanks the display
}

// Opts is the configuration for the panel chain.
type Opts struct {
	// Panel tiling, left-to-right then top-to-bottom (default: 1x1).
	PanelsWide int
	PanelsHigh int

	// Hardware revision knobs.
	RowMap   RowMapping
	Polarity Polarity

	// LatchPulse is how long the latch line is held high. The shift
	// registers need a minimum pulse width; the default of 1us is safely
	// above it.
	LatchPulse time.Duration

	// OtherCS is the active-low chip select of another device sharing the
	// serial bus. When it reads low during a scan call the whole call is
	// skipped and retried on the next one. Optional.
	OtherCS gpio.PinIn
}

// DefaultOpts is the default configuration: a single panel with the stock
// DMD shift registers and direct row mapping.
var DefaultOpts = Opts{PanelsWide: 1, PanelsHigh: 1}

// Dev is the device handle for a chain of VMA419 panels.
//
// Dev is not safe for concurrent use: drawing calls and ScanQuarter share
// the frame buffer without a lock and must not run at the same time. Draw a
// frame, then refresh it; callers mixing a render goroutine with a scan
// goroutine (or an interrupt-style timer) need their own critical section.
type Dev struct {
	// Communication
	c       conn.Conn   // serial connection to the shift registers
	pins    Pins        // row-select, latch and output-enable lines
	otherCS gpio.PinIn  // optional shared-bus busy signal

	// Display geometry
	panelsWide int
	panelsHigh int
	rect       image.Rectangle
	rowStride  int // bytes per buffer row = panelsWide*panelsHigh*4

	// Hardware revision
	rowMap     RowMapping
	polarity   Polarity
	latchPulse time.Duration

	// Pixel buffer; allocated once, never reallocated.
	buf []byte

	// Scan engine state
	phase int // current scan phase, 0..3

	// Active font, caller-owned.
	font font.Font

	// Marquee state
	marquee marqueeState

	// State
	halted bool
}

// New creates a device for a chain of panels connected via SPI plus the four
// control lines in pins.
//
// The SPI port is configured for 4MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. opts can be nil to use DefaultOpts.
func New(p spi.Port, pins Pins, opts *Opts) (*Dev, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}

	wide, high := opts.PanelsWide, opts.PanelsHigh
	if wide == 0 {
		wide = 1
	}
	if high == 0 {
		high = 1
	}
	if wide < 0 || high < 0 {
		return nil, errors.New("vma419: panel counts must be positive")
	}
	if pins.A == nil || pins.B == nil || pins.Latch == nil || pins.OE == nil {
		return nil, errors.New("vma419: A, B, Latch and OE pins are all required")
	}

	latchPulse := opts.LatchPulse
	if latchPulse <= 0 {
		latchPulse = time.Microsecond
	}

	// The DMD shift registers clock reliably at 4MHz on the stock cabling.
	c, err := p.Connect(4*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("vma419: failed to connect SPI: %w", err)
	}

	d := &Dev{
		c:          c,
		pins:       pins,
		otherCS:    opts.OtherCS,
		panelsWide: wide,
		panelsHigh: high,
		rect:       image.Rect(0, 0, wide*pixelsAcross, high*pixelsDown),
		rowStride:  wide * high * bytesAcross,
		rowMap:     opts.RowMap,
		polarity:   opts.Polarity,
		latchPulse: latchPulse,
		buf:        make([]byte, wide*high*panelBytes),
	}

	if err := d.initLines(); err != nil {
		return nil, err
	}
	d.Clear()
	return d, nil
}

// initLines drives every control line to its idle level: output blanked, row
// group 0 selected, latch released.
func (d *Dev) initLines() error {
	if err := d.pins.OE.Out(gpio.High); err != nil {
		return fmt.Errorf("vma419: failed to blank output: %w", err)
	}
	if err := d.pins.A.Out(gpio.Low); err != nil {
		return fmt.Errorf("vma419: failed to drive row-select A: %w", err)
	}
	if err := d.pins.B.Out(gpio.Low); err != nil {
		return fmt.Errorf("vma419: failed to drive row-select B: %w", err)
	}
	if err := d.pins.Latch.Out(gpio.Low); err != nil {
		return fmt.Errorf("vma419: failed to release latch: %w", err)
	}
	if d.otherCS != nil {
		if err := d.otherCS.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return fmt.Errorf("vma419: failed to configure bus-busy input: %w", err)
		}
	}
	return nil
}

// offByte is the buffer byte with all 8 pixels dark.
func (d *Dev) offByte() byte {
	if d.polarity == ActiveLow {
		return 0xFF
	}
	return 0x00
}

// translate maps a logical pixel coordinate to its byte offset and bit mask
// inside the frame buffer. ok is false when the coordinate is outside the
// display; callers treat that as a silent no-op, never an error.
func (d *Dev) translate(x, y int) (offset int, mask byte, ok bool) {
	if x < 0 || y < 0 || x >= d.rect.Max.X || y >= d.rect.Max.Y {
		return 0, 0, false
	}
	if d.rowMap == RowMapShifted {
		y = y&^3 | rowMapShift[y&3]
	}
	panel := x/pixelsAcross + d.panelsWide*(y/pixelsDown)
	px := x%pixelsAcross + panel*pixelsAcross
	offset = px/8 + (y%pixelsDown)*d.rowStride
	if offset >= len(d.buf) {
		return 0, 0, false
	}
	return offset, pixelMask[px&7], true
}

// Clear sets every pixel to the dark state.
func (d *Dev) Clear() {
	off := d.offByte()
	for i := range d.buf {
		d.buf[i] = off
	}
}

// SetPixel turns the pixel at (x, y) on or off. Out-of-range coordinates are
// silently ignored.
func (d *Dev) SetPixel(x, y int, on bool) {
	d.WritePixel(x, y, GraphicsNormal, on)
}

// WritePixel writes one pixel through the given compositing mode.
// Out-of-range coordinates are silently ignored.
func (d *Dev) WritePixel(x, y int, mode GraphicsMode, value bool) {
	offset, mask, ok := d.translate(x, y)
	if !ok {
		return
	}

	lit := d.buf[offset]&mask != 0
	if d.polarity == ActiveLow {
		lit = !lit
	}

	switch mode {
	case GraphicsNormal:
		lit = value
	case GraphicsInverse:
		lit = !value
	case GraphicsToggle:
		if !value {
			return
		}
		lit = !lit
	case GraphicsOr:
		if !value {
			return
		}
		lit = true
	case GraphicsNor:
		if !value || !lit {
			return
		}
		lit = false
	default:
		return
	}

	set := lit
	if d.polarity == ActiveLow {
		set = !lit
	}
	if set {
		d.buf[offset] |= mask
	} else {
		d.buf[offset] &^= mask
	}
}

// Pixel reports whether the pixel at (x, y) is lit. Out-of-range coordinates
// read as dark.
func (d *Dev) Pixel(x, y int) bool {
	offset, mask, ok := d.translate(x, y)
	if !ok {
		return false
	}
	lit := d.buf[offset]&mask != 0
	if d.polarity == ActiveLow {
		lit = !lit
	}
	return lit
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Write writes a raw frame in the device's native buffer layout with a set
// bit meaning a lit pixel. The data must be exactly one frame long.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errHalted
	}
	if len(pixels) != len(d.buf) {
		return 0, errors.New("vma419: invalid buffer size")
	}
	if d.polarity == ActiveHigh {
		copy(d.buf, pixels)
	} else {
		for i, b := range pixels {
			d.buf[i] = ^b
		}
	}
	return len(pixels), nil
}

// Draw draws an image onto the display. The dst rectangle selects the
// destination region; src is positioned at sp within it.
//
// A full-frame *image1bit.HorizontalMSB on a single-panel-high chain is
// copied directly; anything else goes through per-pixel conversion.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}

	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	// Fast path: matching layout, whole frame.
	if img, ok := src.(*image1bit.HorizontalMSB); ok && d.panelsHigh == 1 {
		zeroPoint := image.Point{}
		if dst == d.rect && sp == zeroPoint && img.Rect == d.rect && img.Stride == d.rowStride {
			if d.polarity == ActiveHigh {
				copy(d.buf, img.Pix)
			} else {
				for i, b := range img.Pix {
					d.buf[i] = ^b
				}
			}
			return nil
		}
	}

	for y := dst.Min.Y; y < dst.Max.Y; y++ {
		for x := dst.Min.X; x < dst.Max.X; x++ {
			c := src.At(x-dst.Min.X+sp.X, y-dst.Min.Y+sp.Y)
			bit := image1bit.BitModel.Convert(c).(image1bit.Bit)
			d.SetPixel(x, y, bool(bit))
		}
	}
	return nil
}

// Halt blanks the display and releases it. After calling Halt the device
// refuses further bus operations until recreated with New.
func (d *Dev) Halt() error {
	d.halted = true
	return d.pins.OE.Out(gpio.High)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("vma419.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

var errHalted = errors.New("vma419: halted")

var _ display.Drawer = &Dev{}
