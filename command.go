package ssd1331

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// Command is a controller configuration or addressing command.
//
// The set of commands is closed: only the types declared in this package
// implement it. Encode returns the exact bytes sent on the bus.
type Command interface {
	command()
}

// ColorMode selects the pixel color depth in the remap register.
type ColorMode byte

const (
	ColorMode256  ColorMode = 0x00 // 8 bits per pixel
	ColorMode65k  ColorMode = 0x01 // 16 bits per pixel, RGB565
	ColorMode65k2 ColorMode = 0x02 // 16 bits per pixel, second format
)

// AddressIncrementMode selects whether the RAM address advances along
// columns or rows after each pixel.
type AddressIncrementMode byte

const (
	Horizontal AddressIncrementMode = 0x00
	Vertical   AddressIncrementMode = 0x01
)

// VcomhLevel is the COM deselect voltage as a fraction of Vcc.
type VcomhLevel byte

const (
	V044 VcomhLevel = 0x00 // 0.44 x Vcc
	V052 VcomhLevel = 0x10 // 0.52 x Vcc
	V061 VcomhLevel = 0x20 // 0.61 x Vcc
	V071 VcomhLevel = 0x30 // 0.71 x Vcc
	V083 VcomhLevel = 0x3E // 0.83 x Vcc
)

// ScrollSpeed defines the interval between scroll steps.
type ScrollSpeed byte

const (
	// Scroll step interval (in frames)
	Speed6Frames   ScrollSpeed = 0x00
	Speed10Frames  ScrollSpeed = 0x01
	Speed100Frames ScrollSpeed = 0x02
	Speed200Frames ScrollSpeed = 0x03
)

// DisplayOn turns the panel on (true) or puts it to sleep (false).
type DisplayOn bool

// DisplayClockDiv sets the oscillator frequency (Osc) and the display clock
// divide ratio (Div). Only the low nibble of each is used.
type DisplayClockDiv struct {
	Osc, Div byte
}

// Multiplex sets the multiplex ratio (number of active rows - 1).
type Multiplex byte

// DisplayOffset sets the vertical display offset.
type DisplayOffset byte

// StartLine sets the RAM row mapped to the first display row.
type StartLine byte

// RemapAndColorDepth configures the address remapping, COM scan direction,
// color depth and address increment direction.
type RemapAndColorDepth struct {
	ColumnRemap  bool // Map column 95 to SEG0
	ComScanRemap bool // Scan from COM[N-1] to COM0
	Color        ColorMode
	Increment    AddressIncrementMode
}

// Contrast sets the contrast of color channels A, B and C.
type Contrast struct {
	A, B, C byte
}

// PreChargePeriod sets the phase 1 and phase 2 periods in DCLKs. Only the
// low nibble of each is used.
type PreChargePeriod struct {
	Phase1, Phase2 byte
}

// VcomhDeselect sets the COM deselect voltage level.
type VcomhDeselect VcomhLevel

// AllOn forces every pixel on, ignoring RAM contents.
type AllOn bool

// Invert displays RAM contents inverted.
type Invert bool

// ColumnAddress sets the start and end column of the draw window.
type ColumnAddress struct {
	Start, End byte
}

// RowAddress sets the start and end row of the draw window.
type RowAddress struct {
	Start, End byte
}

// ScrollSetup configures continuous scrolling. Horizontal and Vertical are
// the offsets applied at each step; StartRow and Rows select the region that
// scrolls horizontally.
type ScrollSetup struct {
	Horizontal byte
	StartRow   byte
	Rows       byte
	Vertical   byte
	Speed      ScrollSpeed
}

// ScrollActivate starts (true) or stops (false) the configured scroll.
type ScrollActivate bool

func (DisplayOn) command()          {}
func (DisplayClockDiv) command()    {}
func (Multiplex) command()          {}
func (DisplayOffset) command()      {}
func (StartLine) command()          {}
func (RemapAndColorDepth) command() {}
func (Contrast) command()           {}
func (PreChargePeriod) command()    {}
func (VcomhDeselect) command()      {}
func (AllOn) command()              {}
func (Invert) command()             {}
func (ColumnAddress) command()      {}
func (RowAddress) command()         {}
func (ScrollSetup) command()        {}
func (ScrollActivate) command()     {}

// Encode returns the opcode and operand bytes for cmd.
func Encode(cmd Command) []byte {
	switch c := cmd.(type) {
	case DisplayOn:
		if c {
			return []byte{0xAF}
		}
		return []byte{0xAE}
	case DisplayClockDiv:
		return []byte{0xB3, (c.Osc&0x0F)<<4 | c.Div&0x0F}
	case Multiplex:
		return []byte{0xA8, byte(c)}
	case DisplayOffset:
		return []byte{0xA2, byte(c)}
	case StartLine:
		return []byte{0xA1, byte(c)}
	case RemapAndColorDepth:
		// Bit 5 enables the odd/even COM split used by all SSD1331 modules.
		remap := byte(0x20) | byte(c.Color&0x03)<<6 | byte(c.Increment&0x01)
		if c.ColumnRemap {
			remap |= 1 << 1
		}
		if c.ComScanRemap {
			remap |= 1 << 4
		}
		return []byte{0xA0, remap}
	case Contrast:
		return []byte{0x81, c.A, 0x82, c.B, 0x83, c.C}
	case PreChargePeriod:
		return []byte{0xB1, (c.Phase2&0x0F)<<4 | c.Phase1&0x0F}
	case VcomhDeselect:
		return []byte{0xBE, byte(c)}
	case AllOn:
		if c {
			return []byte{0xA5}
		}
		return []byte{0xA4}
	case Invert:
		if c {
			return []byte{0xA7}
		}
		return []byte{0xA6}
	case ColumnAddress:
		return []byte{0x15, c.Start, c.End}
	case RowAddress:
		return []byte{0x75, c.Start, c.End}
	case ScrollSetup:
		return []byte{0x27, c.Horizontal, c.StartRow, c.Rows, c.Vertical, byte(c.Speed)}
	case ScrollActivate:
		if c {
			return []byte{0x2F}
		}
		return []byte{0x2E}
	}
	panic(fmt.Sprintf("ssd1331: unknown command %T", cmd))
}

// Send writes cmd to the controller. The DC line is driven low (command mode)
// before the bytes are written. Failures are returned as *PinError or
// *CommunicationError and are never retried.
func Send(c conn.Conn, dc gpio.PinOut, cmd Command) error {
	if err := dc.Out(gpio.Low); err != nil {
		return &PinError{Err: err}
	}
	if err := c.Tx(Encode(cmd), nil); err != nil {
		return &CommunicationError{Err: err}
	}
	return nil
}
