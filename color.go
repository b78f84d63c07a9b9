package pixbuf

import "image/color"

// Color is a packed 4-channel pixel value, exactly 4 bytes wide with no
// padding. The byte order matches the Pix layout of image.RGBA, so a []Color
// reinterprets losslessly as an RGBA byte stream.
type Color struct {
	R, G, B, A uint8
}

var _ color.Color = Color{}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// RGBA returns a color with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBA implements image/color.Color, with the same alpha-premultiplied
// convention as color.RGBA.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = uint32(c.A)
	a |= a << 8
	return
}
