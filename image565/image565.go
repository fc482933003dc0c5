package image565

import (
	"image"
	"image/color"
)

// Color is a 16-bit RGB565 color. R and B use their lower 5 bits, G its
// lower 6 bits.
type Color struct {
	R, G, B uint8
}

// FromUint16 unpacks a 16-bit RGB565 value.
func FromUint16(v uint16) Color {
	return Color{
		R: uint8(v>>11) & 0x1F,
		G: uint8(v>>5) & 0x3F,
		B: uint8(v) & 0x1F,
	}
}

// Uint16 packs the color into its 16-bit wire value.
func (c Color) Uint16() uint16 {
	return uint16(c.R&0x1F)<<11 | uint16(c.G&0x3F)<<5 | uint16(c.B&0x1F)
}

// RGBA implements color.Color. Channels are scaled to the full 16-bit range
// by bit replication so that full intensity maps to 0xFFFF.
func (c Color) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c.R & 0x1F)
	g6 := uint32(c.G & 0x3F)
	b5 := uint32(c.B & 0x1F)
	r = r5<<11 | r5<<6 | r5<<1 | r5>>4
	g = g6<<10 | g6<<4 | g6>>2
	b = b5<<11 | b5<<6 | b5<<1 | b5>>4
	return r, g, b, 0xFFFF
}

func toRGB565(c color.Color) color.Color {
	if v, ok := c.(Color); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 11), G: uint8(g >> 10), B: uint8(b >> 11)}
}

// Model converts colors to Color. Alpha is ignored; the panel has no
// transparency.
var Model = color.ModelFunc(toRGB565)

// Image is an RGB565 image stored as big-endian 16-bit words.
type Image struct {
	Pix    []byte          // Pixel data, 2 bytes per pixel
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewImage returns a new Image with the given bounds.
func NewImage(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &Image{Rect: r}
	}
	return &Image{
		Pix:    make([]byte, 2*w*h),
		Stride: 2 * w,
		Rect:   r,
	}
}

func (p *Image) ColorModel() color.Model {
	return Model
}

func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the color of the pixel at (x, y), or the zero Color when
// outside the bounds.
func (p *Image) RGB565At(x, y int) Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Color{}
	}
	i := p.PixOffset(x, y)
	return FromUint16(uint16(p.Pix[i])<<8 | uint16(p.Pix[i+1]))
}

// Set implements draw.Image.
func (p *Image) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, Model.Convert(c).(Color))
}

// SetRGB565 sets the pixel at (x, y) without color conversion.
func (p *Image) SetRGB565(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	v := c.Uint16()
	p.Pix[i] = byte(v >> 8)
	p.Pix[i+1] = byte(v)
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}
