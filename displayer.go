package ssd1331

import (
	"image/color"

	"periph.io/x/devices/v3/ssd1331/image565"
	"tinygo.org/x/drivers"
)

// Displayer returns a drivers.Displayer view of d, so that tinygo rendering
// packages such as tinydraw and tinyfont can draw into the framebuffer.
// Display flushes the framebuffer.
func (d *Dev) Displayer() drivers.Displayer {
	return displayer{d}
}

type displayer struct {
	d *Dev
}

func (p displayer) Size() (x, y int16) {
	w, h := p.d.Dimensions()
	return int16(w), int16(h)
}

// SetPixel ignores alpha; any pixel drawn is fully opaque.
func (p displayer) SetPixel(x, y int16, c color.RGBA) {
	v := image565.Model.Convert(c).(image565.Color)
	p.d.SetPixel(int(x), int(y), v.Uint16())
}

func (p displayer) Display() error {
	return p.d.Flush()
}
