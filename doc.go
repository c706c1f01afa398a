// Package vma419 controls a chain of VMA419 32×16 LED dot-matrix panels via SPI.
//
// The VMA419 (also sold as the Freetronics DMD) is a monochrome LED panel
// driven by daisy-chained serial shift registers. Rows are multiplexed in 4
// groups, so the panel has no persistent image: the host must continuously
// scan it, one quarter of the frame at a time. This driver implements the
// display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - Monochrome, 1 bit per pixel
// - 32×16 pixels per panel, tileable horizontally and vertically
// - 1/4 row multiplexing: only 4 of 16 rows are lit at any instant
// - No controller RAM; the frame lives in host memory and is streamed out
//
// # Hardware Connection
//
// Connect the panel's HUB12-style input connector to your system:
//
//	Panel Pin → System Pin
//	GND       → GND
//	A         → GPIO (row-select bit 0)
//	B         → GPIO (row-select bit 1)
//	CLK       → SPI Clock (SCLK)
//	R         → SPI Data (MOSI)
//	SCLK      → GPIO (latch)
//	nOE       → GPIO (output enable)
//
// Additional panels chain from the output connector of the previous one.
// Panel LED power (5V, several amps at full brightness) is supplied
// separately.
//
// # Basic Usage
//
// Example of creating and scanning the display:
//
//	package main
//
//	import (
//		"time"
//
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//
//		"github.com/flavioheleno/vma419"
//		"github.com/flavioheleno/vma419/font"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Create device
//		dev, _ := vma419.New(spiBus, vma419.Pins{
//			A:     gpioreg.ByName("GPIO22"),
//			B:     gpioreg.ByName("GPIO23"),
//			Latch: gpioreg.ByName("GPIO24"),
//			OE:    gpioreg.ByName("GPIO18"),
//		}, nil)
//		defer dev.Halt()
//
//		// Draw some text
//		dev.SelectFont(font.System5x7)
//		dev.DrawString(0, 4, "Hello", vma419.GraphicsNormal)
//
//		// Keep the panel refreshed. Each call lights one quarter of the
//		// rows; four calls make a full frame.
//		for {
//			dev.ScanQuarter()
//			time.Sleep(time.Millisecond)
//		}
//	}
//
// # Scanning
//
// The panel shows nothing unless ScanQuarter is called continuously. Calling
// it every millisecond yields a 250Hz frame rate; anything above roughly
// 200μs per call is flicker-free. Longer gaps dim the display, and stopping
// entirely freezes one row group on, which can overheat the LED drivers.
// Halt blanks the output and is safe to leave in place indefinitely.
//
// # Compositing Modes
//
// Every drawing call takes a GraphicsMode that decides how the written
// pixels combine with the frame buffer:
//
//	GraphicsNormal  // overwrite
//	GraphicsInverse // overwrite with the opposite value
//	GraphicsToggle  // flip pixels where the source is set
//	GraphicsOr      // only turn pixels on
//	GraphicsNor     // only turn lit pixels off
//
// # Fonts and Marquee
//
// The font subpackage ships three packed bitmap fonts (System5x7, Prop5x7,
// Digits10x14) in the format produced by the common GLCD font tools.
// SelectFont installs one; DrawChar and DrawString render with it.
//
// DrawMarquee plus repeated StepMarquee calls scroll text across the
// display, wrapping around the edges. Single-pixel horizontal steps use an
// in-place frame buffer shift instead of re-rendering the whole string.
//
// # Hardware Revisions
//
// Panel revisions differ in two ways, both selected in Opts:
//
//	Polarity // ActiveLow (stock shift registers) or ActiveHigh
//	RowMap   // RowMapDirect or RowMapShifted row-select decoding
//
// The defaults match the stock VMA419. If rows appear in the wrong order try
// RowMapShifted; if the image is inverted try ActiveHigh.
//
// # Concurrency
//
// Dev is not safe for concurrent use. Drawing calls and ScanQuarter share
// the frame buffer; run them from one goroutine or serialize them yourself.
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// It can be used with any periph.io tool or library expecting a display.Drawer.
package vma419
