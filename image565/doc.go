// Package image565 provides a 16-bit RGB565 image format for the SSD1331
// display controller.
//
// Each pixel occupies two bytes, most significant byte first:
//
//	bit  15..11  10..5  4..0
//	     red     green  blue
//
// Memory layout example for a 2-pixel row (pure red, pure blue):
//
//	Pixels: 0          1
//	Value:  0xF800     0x001F
//	Bytes:  0xF8 0x00  0x00 0x1F
//
// This package provides:
//
// - Color: a color type holding the 5-bit red, 6-bit green and 5-bit blue channels
// - Model: a color model converting standard Go colors to Color
// - Image: an image.Image / draw.Image implementation whose Pix can be streamed to the display
//
// Example usage:
//
//	img := image565.NewImage(image.Rect(0, 0, 96, 64))
//	img.SetRGB565(10, 20, image565.FromUint16(0xF800))
//	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
package image565
