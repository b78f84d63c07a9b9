// pixscan inspects and sorts image files through the pixbuf library.
package main

import (
	"bytes"
	"image"
	"io"
	"log/slog"
	"os"

	"pixbuf"

	"github.com/alecthomas/kong"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

type CLI struct {
	Info   InfoCmd   `cmd:"" help:"Report dimensions of every image in a folder"`
	Orient OrientCmd `cmd:"" help:"Sort images into portrait and landscape folders"`
}

// registerExtraFormats widens the decoder registry beyond the built-in set.
func registerExtraFormats() {
	for ext, decode := range map[string]func(io.Reader) (image.Image, error){
		"tif":  tiff.Decode,
		"tiff": tiff.Decode,
		"webp": webp.Decode,
	} {
		pixbuf.RegisterFormat(ext, func(data []byte) (*pixbuf.Image, error) {
			img, err := decode(bytes.NewReader(data))
			if err != nil {
				return nil, err
			}
			return pixbuf.FromImage(img), nil
		})
	}
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("pixscan"),
		kong.Description("Inspect and sort image files."),
	)

	registerExtraFormats()

	if err := kctx.Run(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
