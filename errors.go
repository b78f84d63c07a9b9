package pixbuf

import "errors"

// Sentinel errors returned by the constructors and the resize adapter. All are
// wrapped with operation context via fmt.Errorf, so callers match them with
// errors.Is. File read failures are not translated: FromPath returns the
// wrapped os error so fs.ErrNotExist and friends stay matchable.
var (
	// ErrDimensionMismatch means the supplied pixel data disagrees with the
	// requested width and height.
	ErrDimensionMismatch = errors.New("pixel data does not match dimensions")

	// ErrUnsupportedFormat means the file extension is missing or has no
	// registered decoder.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrInvalidPath means the file extension is not valid text.
	ErrInvalidPath = errors.New("invalid image path")

	// ErrDecode wraps a failure reported by a format decoder.
	ErrDecode = errors.New("could not decode image")

	// ErrResize means the resampling engine could not produce the requested
	// output.
	ErrResize = errors.New("could not resize image")
)
