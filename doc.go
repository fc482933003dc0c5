// Package ssd1331 controls a SSD1331 OLED display via SPI.
//
// The SSD1331 is a 96×64 pixel, 16-bit (RGB565) color OLED controller.
// This driver implements the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - 65k colors, RGB565, 2 bytes per pixel, most significant byte first
// - Fixed 96×64 resolution
// - Rotation in 90° steps using the controller's remap register
// - Hardware scrolling (horizontal and vertical)
// - Per-channel contrast, display inversion
//
// # Hardware Connection
//
// Connect the SSD1331 display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → SPI Clock (SCLK)
//	SDA         → SPI Data (MOSI)
//	D/C         → GPIO (any available pin)
//	CS          → SPI Chip Select
//	RES         → GPIO for hardware reset (recommended)
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/ssd1331"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		spiBus, _ := spireg.Open("")
//		dcPin := gpioreg.ByName("GPIO24")
//		rstPin := gpioreg.ByName("GPIO25")
//
//		dev, _ := ssd1331.NewSPI(spiBus, dcPin, &ssd1331.Opts{
//			Rotation: ssd1331.Rotate0,
//			RST:      rstPin,
//		})
//		defer dev.Halt()
//
//		// Pure red in the top left corner.
//		dev.SetPixel(0, 0, 0xF800)
//		dev.Flush()
//	}
//
// # Low Level Control
//
// New performs no I/O. The caller is then responsible for the bring-up
// sequence:
//
//	dev := ssd1331.New(c, dc, ssd1331.Rotate90)
//	dev.Reset(rst)
//	dev.Init()
//	dev.Flush()
//
// # Framebuffer
//
// The driver owns a 12288 byte framebuffer laid out in native panel order.
// SetPixel writes into it, Clear zeroes it and Flush sends all of it after
// resetting the draw window to the whole panel. Nothing reaches the display
// until Flush (or Draw, which flushes).
//
// SetPixel silently ignores coordinates outside the display. It never
// returns an error and never panics, so it can be called from tight
// rendering loops.
//
// # Rotation
//
// Rotation is implemented by the controller, not by reshaping the
// framebuffer. SetRotation therefore sends a remap command immediately and
// can fail. Dimensions and Bounds reflect the new rotation at once.
//
// # Drawing Modes
//
// ## Framebuffer
//
// Use SetPixel, Draw or a tinygo drivers.Displayer (see Displayer) to draw
// into the framebuffer:
//
//	tinydraw.Circle(dev.Displayer(), 48, 32, 16, color.RGBA{G: 255, A: 255})
//	dev.Flush()
//
// ## Raw Window Writes
//
// Write streams RGB565 bytes straight into the draw window set by
// SetDrawArea, bypassing the framebuffer:
//
//	dev.SetDrawArea(image.Pt(10, 10), image.Pt(20, 20))
//	dev.Write(pixels) // 10×10×2 bytes
//
// # Errors
//
// Transport failures are returned as *CommunicationError and GPIO failures
// as *PinError. Neither is retried. A failed Init leaves the controller in an
// unknown state; call Init again.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1331_1.2.pdf
package ssd1331
