// Package pixbuf holds decoded raster images as flat arrays of packed
// 4-channel colors, independent of the encoding they were loaded from, and
// provides loading, sub-region selection, resizing and blitting on top of
// that single in-memory representation.
package pixbuf

import (
	"fmt"
	"image"
	"unsafe"

	"golang.org/x/image/draw"
)

// Image is an owned, row-major pixel buffer. The backing slice always holds
// exactly width*height colors; every constructor enforces this.
type Image struct {
	w, h int
	pix  []Color
}

var _ Surface = (*Image)(nil)

// New returns a buffer filled with opaque black. Dimensions of zero or less
// yield a valid empty buffer.
func New(width, height int) *Image {
	return FromColor(width, height, RGB(0, 0, 0))
}

// FromColor returns a buffer with every pixel set to c.
func FromColor(width, height int, c Color) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	pix := make([]Color, width*height)
	for i := range pix {
		pix[i] = c
	}
	im, _ := FromData(width, height, pix) // length matches by construction
	return im
}

// FromData wraps caller-supplied pixel data in a buffer, taking exclusive
// ownership of pix. The caller must not keep a mutable alias. Fails with
// ErrDimensionMismatch if the data length disagrees with width*height.
func FromData(width, height int, pix []Color) (*Image, error) {
	if width < 0 || height < 0 || len(pix) != width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrDimensionMismatch, len(pix), width, height)
	}
	return &Image{w: width, h: height, pix: pix}, nil
}

// FromImage converts any stdlib image into a buffer, copying the pixels.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	im := New(b.Dx(), b.Dy())
	rgba := im.rgba()
	draw.Draw(rgba, rgba.Rect, src, b.Min, draw.Src)
	return im
}

// Width returns the width of the image in pixels.
func (im *Image) Width() int {
	return im.w
}

// Height returns the height of the image in pixels.
func (im *Image) Height() int {
	return im.h
}

// Data returns the backing pixels for reading.
func (im *Image) Data() []Color {
	return im.pix
}

// DataMut returns the backing pixels for writing. The caller has exclusive
// access for the duration of use; the library does no locking.
func (im *Image) DataMut() []Color {
	return im.pix
}

// Sync implements Surface. A software buffer has nothing to flush.
func (im *Image) Sync() bool {
	return true
}

// Draw copies the whole buffer onto s with its top-left corner at (x, y).
func (im *Image) Draw(s Surface, x, y int) {
	s.Image(x, y, im.w, im.h, im.pix)
}

// Image implements the Surface blit primitive: a clipped copy of a w×h block
// of pix onto the buffer at (x, y). Rows in pix are w pixels apart; a short
// final row is copied as far as it reaches.
func (im *Image) Image(x, y, w, h int, pix []Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := max(x, 0)
	x1 := min(x+w, im.w)
	if x0 >= x1 {
		return
	}
	for row := 0; row < h; row++ {
		dy := y + row
		if dy < 0 {
			continue
		}
		if dy >= im.h {
			break
		}
		src := row*w + (x0 - x)
		if src >= len(pix) {
			break
		}
		n := min(x1-x0, len(pix)-src)
		copy(im.pix[dy*im.w+x0:], pix[src:src+n])
	}
}

// rgba exposes the buffer as an image.RGBA sharing the same memory. Color is
// exactly 4 bytes in RGBA order, so the reinterpretation is lossless.
func (im *Image) rgba() *image.RGBA {
	rgba := &image.RGBA{
		Stride: 4 * im.w,
		Rect:   image.Rect(0, 0, im.w, im.h),
	}
	if len(im.pix) > 0 {
		rgba.Pix = unsafe.Slice((*uint8)(unsafe.Pointer(&im.pix[0])), 4*len(im.pix))
	}
	return rgba
}
