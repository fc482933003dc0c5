package ssd1331

import (
	"fmt"

	"tinygo.org/x/drivers"
)

// Rotation is the clockwise rotation of the logical coordinate space
// relative to the panel's native orientation.
type Rotation uint8

const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

func (r Rotation) String() string {
	switch r {
	case Rotate0:
		return "Rotate0"
	case Rotate90:
		return "Rotate90"
	case Rotate180:
		return "Rotate180"
	case Rotate270:
		return "Rotate270"
	}
	return fmt.Sprintf("Rotation(%d)", uint8(r))
}

// swapsAxes reports whether the logical width and height are swapped.
func (r Rotation) swapsAxes() bool {
	return r == Rotate90 || r == Rotate270
}

// remap returns the remap register setting that implements r in hardware.
// The framebuffer layout is never reshaped; the controller's row/column
// remap and increment direction do the rotation.
func (r Rotation) remap() RemapAndColorDepth {
	switch r {
	case Rotate90:
		return RemapAndColorDepth{ColumnRemap: true, Color: ColorMode65k, Increment: Vertical}
	case Rotate180:
		return RemapAndColorDepth{ColumnRemap: true, ComScanRemap: true, Color: ColorMode65k, Increment: Horizontal}
	case Rotate270:
		return RemapAndColorDepth{ComScanRemap: true, Color: ColorMode65k, Increment: Vertical}
	default:
		return RemapAndColorDepth{Color: ColorMode65k, Increment: Horizontal}
	}
}

// RotationFromDrivers converts a tinygo drivers rotation. Mirrored rotations
// are not supported by the remap table and return an error.
func RotationFromDrivers(r drivers.Rotation) (Rotation, error) {
	switch r {
	case drivers.Rotation0:
		return Rotate0, nil
	case drivers.Rotation90:
		return Rotate90, nil
	case drivers.Rotation180:
		return Rotate180, nil
	case drivers.Rotation270:
		return Rotate270, nil
	}
	return 0, fmt.Errorf("ssd1331: unsupported rotation %d", r)
}
