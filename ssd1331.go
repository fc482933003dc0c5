// Package ssd1331 controls a SSD1331 96x64 RGB565 OLED display via SPI.
//
// The driver keeps a full framebuffer in memory. Pixels are set with SetPixel
// (or Draw) and sent to the panel with Flush.
//
// See the examples for how to use this package.
package ssd1331

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
	"periph.io/x/devices/v3/ssd1331/image565"
)

const (
	// Width is the native panel width in pixels.
	Width = 96
	// Height is the native panel height in pixels.
	Height = 64

	bufferSize = Width * Height * 2
)

// Opts is the configuration for the SSD1331 display.
type Opts struct {
	// Initial rotation of the logical coordinate space
	Rotation Rotation

	// Optional hardware reset pin
	RST gpio.PinOut // Reset pin (optional, nil if not used)
}

// Dev is the device handle for the SSD1331 display.
//
// Dev is not safe for concurrent use. Each panel needs its own Dev with its
// own connection and DC pin.
type Dev struct {
	// Communication
	c         conn.Conn   // SPI connection
	dc        gpio.PinOut // Data/Command pin
	maxTxSize int         // 0 when the connection reports no limit

	// Pixel buffer, native panel order, 2 bytes per pixel (big-endian RGB565)
	buffer [bufferSize]byte

	rotation Rotation
	sleep    func(time.Duration)

	// State
	halted bool
}

// New returns a Dev using c as transport and dc as the Data/Command line.
//
// No I/O is performed: call Reset (on real hardware) and Init before
// drawing. The framebuffer starts out all black.
func New(c conn.Conn, dc gpio.PinOut, rot Rotation) *Dev {
	d := &Dev{
		c:        c,
		dc:       dc,
		rotation: rot,
		sleep:    time.Sleep,
	}
	if l, ok := c.(conn.Limits); ok {
		d.maxTxSize = l.MaxTxSize()
	}
	return d
}

// NewSPI creates a new SSD1331 device connected via SPI.
//
// The SPI port is configured for 6MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. The dc (Data/Command) GPIO pin must be provided.
//
// If opts.RST is set the panel is hardware reset first. The display is then
// initialized and cleared. opts can be nil to use defaults.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	if opts.Rotation > Rotate270 {
		return nil, errors.New("ssd1331: invalid rotation")
	}
	if dc == nil {
		return nil, errors.New("ssd1331: dc pin is required")
	}

	// SSD1331 serial clock cycle is 150ns minimum.
	c, err := p.Connect(6*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ssd1331: failed to connect over spi: %w", err)
	}

	d := New(c, dc, opts.Rotation)
	if opts.RST != nil {
		if err := d.Reset(opts.RST); err != nil {
			return nil, err
		}
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	if err := d.Flush(); err != nil {
		return nil, err
	}
	return d, nil
}

// Reset drives the hardware reset line high, low, then high again.
//
// It must be called before Init on real hardware. The first pin failure is
// returned as a *PinError and aborts the sequence.
func (d *Dev) Reset(rst gpio.PinOut) error {
	if err := rst.Out(gpio.High); err != nil {
		return &PinError{Err: err}
	}
	d.sleep(time.Millisecond)
	if err := rst.Out(gpio.Low); err != nil {
		return &PinError{Err: err}
	}
	d.sleep(10 * time.Millisecond)
	if err := rst.Out(gpio.High); err != nil {
		return &PinError{Err: err}
	}
	return nil
}

// Init sends the initialization sequence and turns the display on.
//
// The current rotation is applied as part of the sequence; an invalid
// rotation is rejected before any I/O. A failure aborts
// the sequence and leaves the controller partially configured; run Init
// again to recover.
func (d *Dev) Init() error {
	if d.rotation > Rotate270 {
		return fmt.Errorf("ssd1331: invalid rotation %v", d.rotation)
	}
	cmds := []Command{
		DisplayOn(false),
		DisplayClockDiv{Osc: 0x8, Div: 0x0},
		Multiplex(Height - 1),
		DisplayOffset(0),
		StartLine(0),
		d.rotation.remap(),
		Contrast{A: 0x91, B: 0x50, C: 0x7D},
		PreChargePeriod{Phase1: 0x1, Phase2: 0xF},
		VcomhDeselect(V071),
		AllOn(false),
		Invert(false),
		DisplayOn(true),
	}
	for _, cmd := range cmds {
		if err := d.send(cmd); err != nil {
			return err
		}
	}
	d.halted = false
	return nil
}

// Clear sets every pixel of the framebuffer to black. Call Flush to update
// the display.
func (d *Dev) Clear() {
	d.buffer = [bufferSize]byte{}
}

// SetPixel sets the pixel at logical coordinates (x, y) to the RGB565 value v.
// Call Flush to update the display.
//
// Coordinates outside the display are silently ignored: SetPixel never fails
// and never panics. Only one axis is checked against the panel width per
// rotation family; the other is caught by the framebuffer bounds check.
func (d *Dev) SetPixel(x, y int, v uint16) {
	if x < 0 || y < 0 || x >= bufferSize || y >= bufferSize {
		return
	}
	var i int
	if d.rotation.swapsAxes() {
		if y >= Width {
			return
		}
		i = (y*Height + x) * 2
	} else {
		if x >= Width {
			return
		}
		i = (y*Width + x) * 2
	}
	if i >= len(d.buffer)-1 {
		return
	}
	d.buffer[i] = byte(v >> 8)
	d.buffer[i+1] = byte(v)
}

// SetDrawArea sets the controller draw window to the columns start.X to
// end.X-1 and rows start.Y to end.Y-1, in native panel coordinates.
//
// ErrInvalidRegion is returned without any I/O when the window is empty,
// reversed or not within the panel.
func (d *Dev) SetDrawArea(start, end image.Point) error {
	r := image.Rectangle{Min: start, Max: end}
	if start.X < 0 || start.Y < 0 || end.X <= start.X || end.Y <= start.Y || end.X > Width || end.Y > Height {
		return fmt.Errorf("%w: %v", ErrInvalidRegion, r)
	}
	if err := d.send(ColumnAddress{Start: byte(start.X), End: byte(end.X - 1)}); err != nil {
		return err
	}
	return d.send(RowAddress{Start: byte(start.Y), End: byte(end.Y - 1)})
}

// Flush sends the full framebuffer to the display.
//
// The draw window is reset to the whole panel first so that a previous
// SetDrawArea cannot offset the frame. The framebuffer is never modified.
func (d *Dev) Flush() error {
	if err := d.SetDrawArea(image.Point{}, image.Pt(Width, Height)); err != nil {
		return err
	}
	return d.sendData(d.buffer[:])
}

// Write streams raw big-endian RGB565 pixels into the current draw window,
// as set by SetDrawArea. The framebuffer is not modified.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, ErrHalted
	}
	if len(pixels)%2 != 0 {
		return 0, errors.New("ssd1331: pixel data must be a whole number of 16-bit pixels")
	}
	if err := d.sendData(pixels); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Dimensions returns the logical width and height, swapped for 90° and 270°
// rotations.
func (d *Dev) Dimensions() (int, int) {
	if d.rotation.swapsAxes() {
		return Height, Width
	}
	return Width, Height
}

// Rotation returns the current rotation.
func (d *Dev) Rotation() Rotation {
	return d.rotation
}

// SetRotation changes the rotation and immediately sends the matching remap
// command so the controller stays in sync with the logical coordinates.
//
// The new rotation is recorded even when sending the command fails; the
// caller must retry or re-run Init to bring the controller back in line.
func (d *Dev) SetRotation(rot Rotation) error {
	if rot > Rotate270 {
		return fmt.Errorf("ssd1331: invalid rotation %v", rot)
	}
	d.rotation = rot
	return d.send(rot.remap())
}

// Release returns the connection and DC pin. The display is left as is; the
// Dev must not be used afterwards.
func (d *Dev) Release() (conn.Conn, gpio.PinOut) {
	c, dc := d.c, d.dc
	d.c, d.dc = nil, nil
	return c, dc
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image565.Model
}

// Bounds returns the logical bounds of the display for the current rotation.
func (d *Dev) Bounds() image.Rectangle {
	w, h := d.Dimensions()
	return image.Rect(0, 0, w, h)
}

// Image returns a copy of the framebuffer as a logical-size image.
func (d *Dev) Image() *image565.Image {
	img := image565.NewImage(d.Bounds())
	copy(img.Pix, d.buffer[:])
	return img
}

// Draw draws src into the framebuffer and flushes it to the display.
// The dst rectangle specifies the destination region on the display; src is
// read starting at sp.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}

	delta := sp.Sub(dst.Min)
	dst = dst.Intersect(d.Bounds())
	if dst.Empty() {
		return nil
	}

	// Fast path: full frame already in wire format. The framebuffer is
	// row-major in logical coordinates for every rotation.
	if img, ok := src.(*image565.Image); ok && dst == d.Bounds() && delta == (image.Point{}) && img.Rect == dst && img.Stride == 2*dst.Dx() {
		copy(d.buffer[:], img.Pix)
		return d.Flush()
	}

	for y := dst.Min.Y; y < dst.Max.Y; y++ {
		for x := dst.Min.X; x < dst.Max.X; x++ {
			c := image565.Model.Convert(src.At(x+delta.X, y+delta.Y)).(image565.Color)
			d.SetPixel(x, y, c.Uint16())
		}
	}
	return d.Flush()
}

// SetContrast sets the contrast of color channels A, B and C.
func (d *Dev) SetContrast(a, b, c byte) error {
	if d.halted {
		return ErrHalted
	}
	return d.send(Contrast{A: a, B: b, C: c})
}

// Invert inverts the display colors.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return ErrHalted
	}
	return d.send(Invert(invert))
}

// Scroll starts continuous hardware scrolling. Each step moves the display
// by horizontal columns and vertical rows; only rows [startRow,
// startRow+rows) scroll horizontally.
func (d *Dev) Scroll(horizontal, startRow, rows, vertical byte, speed ScrollSpeed) error {
	if d.halted {
		return ErrHalted
	}
	if int(horizontal) >= Width || int(vertical) >= Height || int(startRow)+int(rows) > Height {
		return errors.New("ssd1331: scroll parameters out of range")
	}
	// Scrolling must be stopped before it is reconfigured.
	if err := d.send(ScrollActivate(false)); err != nil {
		return err
	}
	if err := d.send(ScrollSetup{Horizontal: horizontal, StartRow: startRow, Rows: rows, Vertical: vertical, Speed: speed}); err != nil {
		return err
	}
	return d.send(ScrollActivate(true))
}

// StopScroll stops hardware scrolling. RAM must be rewritten (Flush) after
// scrolling is stopped.
func (d *Dev) StopScroll() error {
	if d.halted {
		return ErrHalted
	}
	return d.send(ScrollActivate(false))
}

// Halt turns the display off.
// Once display off has been sent, drawing operations fail with ErrHalted
// until Init is called again.
func (d *Dev) Halt() error {
	if err := d.send(DisplayOn(false)); err != nil {
		return err
	}
	d.halted = true
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	w, h := d.Dimensions()
	return fmt.Sprintf("ssd1331.Dev{%dx%d, %v}", w, h, d.rotation)
}

// send sends a single command.
func (d *Dev) send(cmd Command) error {
	return Send(d.c, d.dc, cmd)
}

// sendData sends pixel data, split into chunks when the connection limits
// the transaction size.
func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return &PinError{Err: err}
	}
	chunk := len(data)
	if d.maxTxSize > 0 && d.maxTxSize < chunk {
		chunk = d.maxTxSize
	}
	for len(data) > 0 {
		n := min(chunk, len(data))
		if err := d.c.Tx(data[:n], nil); err != nil {
			return &CommunicationError{Err: err}
		}
		data = data[n:]
	}
	return nil
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
