package pixbuf

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/bmp"
)

// DecodeFunc parses a complete encoded image file into a buffer.
type DecodeFunc func(data []byte) (*Image, error)

// formats maps a lower-cased file extension, without the dot, to its decoder.
var formats = map[string]DecodeFunc{
	"bmp":  stdDecoder(bmp.Decode),
	"jpg":  stdDecoder(jpeg.Decode),
	"jpeg": stdDecoder(jpeg.Decode),
	"png":  stdDecoder(png.Decode),
}

// RegisterFormat adds or replaces the decoder for a file extension, given
// without the dot and matched case-insensitively. Not safe to call
// concurrently with FromPath; register formats at startup.
func RegisterFormat(ext string, decode DecodeFunc) {
	formats[strings.ToLower(ext)] = decode
}

func stdDecoder(decode func(io.Reader) (image.Image, error)) DecodeFunc {
	return func(data []byte) (*Image, error) {
		img, err := decode(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return FromImage(img), nil
	}
}

// FromPath reads the whole file into memory and decodes it with the decoder
// registered for its extension. Read failures come back as the wrapped os
// error; a missing or unregistered extension fails with ErrUnsupportedFormat,
// an extension that is not valid text with ErrInvalidPath, and a decoder
// failure with ErrDecode. The format is trusted from the extension alone; no
// magic-byte sniffing takes place.
func FromPath(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read image: %w", err)
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil, fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}
	if !utf8.ValidString(ext) {
		return nil, fmt.Errorf("%w: extension of %q is not valid text", ErrInvalidPath, path)
	}
	decode, ok := formats[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, strings.ToLower(ext))
	}
	im, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrDecode, path, err)
	}
	return im, nil
}
