package pixbuf

// Roi is a rectangular window into an Image, used for partial blits. It
// borrows the image rather than copying pixels, so it must not be retained
// across mutations of its source; construct one, draw it, discard it.
type Roi struct {
	X, Y, W, H int

	image *Image
}

// Roi returns a view of the requested rectangle clamped into the image
// bounds. Out-of-range requests are truncated, possibly to a zero-sized
// region; the call never fails.
func (im *Image) Roi(x, y, w, h int) Roi {
	x1 := min(max(x, 0), im.w)
	y1 := min(max(y, 0), im.h)
	x2 := max(x1, min(x+w, im.w))
	y2 := max(y1, min(y+h, im.h))
	return Roi{X: x1, Y: y1, W: x2 - x1, H: y2 - y1, image: im}
}

// Draw copies the region onto s with its top-left corner at (x, y), one scan
// line at a time. Each line is W contiguous pixels out of the source buffer;
// the source offset advances by the full source stride between lines, since
// the region is a strided window into the owning array, not a compacted copy.
func (r Roi) Draw(s Surface, x, y int) {
	if r.W <= 0 {
		return
	}
	stride := r.image.w
	pix := r.image.pix
	offset := r.Y*stride + r.X
	last := min((r.Y+r.H)*stride+r.X, len(pix))
	for offset < last {
		end := min(offset+r.W, len(pix))
		s.Image(x, y, r.W, 1, pix[offset:end])
		offset += stride
		y++
	}
}
