package pixbuf

import (
	"fmt"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Filter selects the resampling algorithm used by Resize. The first four are
// backed by the golang.org/x/image/draw scalers, the higher-order filters by
// github.com/nfnt/resize.
type Filter int

const (
	NearestNeighbor Filter = iota
	ApproxBiLinear
	Bilinear
	CatmullRom
	MitchellNetravali
	Lanczos2
	Lanczos3
)

var filterNames = map[Filter]string{
	NearestNeighbor:   "nearest",
	ApproxBiLinear:    "approx-bilinear",
	Bilinear:          "bilinear",
	CatmullRom:        "catmullrom",
	MitchellNetravali: "mitchell",
	Lanczos2:          "lanczos2",
	Lanczos3:          "lanczos3",
}

func (f Filter) String() string {
	if name, ok := filterNames[f]; ok {
		return name
	}
	return fmt.Sprintf("filter(%d)", int(f))
}

// ParseFilter maps a filter name, as printed by String, back to its Filter.
func ParseFilter(name string) (Filter, error) {
	for f, n := range filterNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown resize filter %q", name)
}

func (f Filter) scaler() draw.Scaler {
	switch f {
	case NearestNeighbor:
		return draw.NearestNeighbor
	case ApproxBiLinear:
		return draw.ApproxBiLinear
	case Bilinear:
		return draw.BiLinear
	case CatmullRom:
		return draw.CatmullRom
	}
	return nil
}

func (f Filter) interp() (resize.InterpolationFunction, bool) {
	switch f {
	case MitchellNetravali:
		return resize.MitchellNetravali, true
	case Lanczos2:
		return resize.Lanczos2, true
	case Lanczos3:
		return resize.Lanczos3, true
	}
	return 0, false
}

// Resize returns a resampled copy of the buffer with exactly width*height
// pixels. A zero-area target yields an empty buffer without touching the
// engine; a nonzero target from an empty source fails with ErrResize, as does
// an unknown filter. The source is never modified.
func (im *Image) Resize(width, height int, filter Filter) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: invalid target %dx%d", ErrResize, width, height)
	}
	if width == 0 || height == 0 {
		return New(width, height), nil
	}
	if im.w == 0 || im.h == 0 {
		return nil, fmt.Errorf("%w: source %dx%d is empty", ErrResize, im.w, im.h)
	}

	// The destination starts zeroed so a partial engine write never exposes
	// indeterminate data. Both buffers are handed to the engine as RGBA byte
	// views over the same memory.
	dst := New(width, height)
	dstRGBA := dst.rgba()
	srcRGBA := im.rgba()

	if scaler := filter.scaler(); scaler != nil {
		scaler.Scale(dstRGBA, dstRGBA.Rect, srcRGBA, srcRGBA.Rect, draw.Src, nil)
	} else if interp, ok := filter.interp(); ok {
		out := resize.Resize(uint(width), uint(height), srcRGBA, interp)
		draw.Draw(dstRGBA, dstRGBA.Rect, out, out.Bounds().Min, draw.Src)
	} else {
		return nil, fmt.Errorf("%w: unknown filter %d", ErrResize, int(filter))
	}

	res, err := FromData(width, height, dst.pix)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResize, err)
	}
	return res, nil
}
