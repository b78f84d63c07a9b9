package pixbuf

// recordingSurface forwards blits to a backing Image while logging every
// Image call, so tests can verify blit geometry as well as pixel values.
type recordingSurface struct {
	buf   *Image
	calls []blitCall
}

type blitCall struct {
	x, y, w, h int
	pix        []Color
}

var _ Surface = (*recordingSurface)(nil)

func newRecordingSurface(w, h int) *recordingSurface {
	return &recordingSurface{buf: New(w, h)}
}

func (s *recordingSurface) Width() int       { return s.buf.Width() }
func (s *recordingSurface) Height() int      { return s.buf.Height() }
func (s *recordingSurface) Data() []Color    { return s.buf.Data() }
func (s *recordingSurface) DataMut() []Color { return s.buf.DataMut() }
func (s *recordingSurface) Sync() bool       { return s.buf.Sync() }

func (s *recordingSurface) Image(x, y, w, h int, pix []Color) {
	s.calls = append(s.calls, blitCall{x: x, y: y, w: w, h: h, pix: pix})
	s.buf.Image(x, y, w, h, pix)
}
