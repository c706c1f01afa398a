package vma419

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// One shift-register load feeds 4 physical rows at once, so the 16 bytes of
// a panel's quarter-frame leave in a fixed interleave, not sequentially.
// scanLane is the byte lane (column byte 0-3) and scanBank the row bank
// (0 = scan row, 1 = scan row+4, 2 = +8, 3 = +12) of each transmitted byte,
// matching the panel's internal fan-out wiring bit for bit.
var (
	scanLane = [16]int{0, 0, 1, 1, 0, 0, 1, 1, 2, 2, 3, 3, 2, 2, 3, 3}
	scanBank = [16]int{3, 2, 3, 2, 1, 0, 1, 0, 3, 2, 3, 2, 1, 0, 1, 0}
)

// ScanQuarter refreshes one quarter of the display: it streams the buffer
// rows of the current scan phase to the shift registers, latches them and
// lights the selected row group. Call it at a steady cadence on all four
// phases (about 250Hz, roughly 1ms per call) to get a flicker-free image;
// the cadence is the caller's responsibility.
//
// Phases advance strictly 0, 1, 2, 3, 0... one per successful call. When
// another device holds the shared bus (OtherCS reads low) the whole call is
// skipped without touching a line or advancing the phase; the same quarter
// is retried on the next call.
func (d *Dev) ScanQuarter() error {
	if d.halted {
		return errHalted
	}
	// Deliberate non-fatal backoff, not an error.
	if d.otherCS != nil && d.otherCS.Read() == gpio.Low {
		return nil
	}

	// Blank the output first so the row switch is not visible.
	if err := d.pins.OE.Out(gpio.High); err != nil {
		return fmt.Errorf("vma419: failed to blank output: %w", err)
	}
	if err := d.selectRows(d.phase); err != nil {
		return err
	}
	if err := d.c.Tx(d.quarterFrame(d.phase), nil); err != nil {
		return fmt.Errorf("vma419: failed to stream quarter frame: %w", err)
	}
	if err := d.latch(); err != nil {
		return err
	}
	if err := d.pins.OE.Out(gpio.Low); err != nil {
		return fmt.Errorf("vma419: failed to enable output: %w", err)
	}

	d.phase = (d.phase + 1) & 3
	return nil
}

// selectRows drives the two row-select lines to the encoding of the given
// phase, mapped through the same row-group policy as the buffer layout.
func (d *Dev) selectRows(phase int) error {
	sel := d.rowMap.group(phase)
	if err := d.pins.A.Out(gpio.Level(sel&1 != 0)); err != nil {
		return fmt.Errorf("vma419: failed to drive row-select A: %w", err)
	}
	if err := d.pins.B.Out(gpio.Level(sel&2 != 0)); err != nil {
		return fmt.Errorf("vma419: failed to drive row-select B: %w", err)
	}
	return nil
}

// quarterFrame assembles the bytes of one scan phase in transmission order:
// 16 bytes per panel, panels in tiling order, each panel interleaved per
// scanLane/scanBank. ActiveLow buffers are inverted on the wire so that a
// set line bit always means a lit LED.
func (d *Dev) quarterFrame(phase int) []byte {
	bank := d.rowStride * 4 // one row bank is 4 buffer rows down
	out := make([]byte, 0, 16*d.panelsWide*d.panelsHigh)
	for p := 0; p < d.panelsWide*d.panelsHigh; p++ {
		base := d.rowStride*phase + p*bytesAcross
		for i := 0; i < 16; i++ {
			b := d.buf[base+scanLane[i]+scanBank[i]*bank]
			if d.polarity == ActiveLow {
				b = ^b
			}
			out = append(out, b)
		}
	}
	return out
}

// latch pulses the latch line, holding it for the configured minimum pulse
// width so the shift registers move their contents to the output drivers.
func (d *Dev) latch() error {
	if err := d.pins.Latch.Out(gpio.High); err != nil {
		return fmt.Errorf("vma419: failed to assert latch: %w", err)
	}
	time.Sleep(d.latchPulse)
	if err := d.pins.Latch.Out(gpio.Low); err != nil {
		return fmt.Errorf("vma419: failed to release latch: %w", err)
	}
	return nil
}
