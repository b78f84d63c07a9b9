package pixbuf

// Surface is the minimal contract a rendering target must satisfy for an
// Image or Roi to draw onto it. Image itself satisfies it, so buffers can be
// blitted onto each other the same way they are blitted onto a window.
type Surface interface {
	Width() int
	Height() int

	// Data returns the backing pixels for reading.
	Data() []Color

	// DataMut returns the backing pixels for writing. The caller has
	// exclusive access for the duration of use.
	DataMut() []Color

	// Sync flushes pending output to the device, returning true on success.
	Sync() bool

	// Image copies a w×h block of packed pixels onto the surface with its
	// top-left corner at (x, y). Rows in pix are w pixels apart. Writes
	// falling outside the surface are clipped.
	Image(x, y, w, h int, pix []Color)
}
