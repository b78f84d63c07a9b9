package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"pixbuf"
	"pixbuf/parallel"

	"github.com/alecthomas/kong"
)

type InfoCmd struct {
	Scan    string `help:"Source folder to scan" default:"."`
	Workers int    `help:"Number of parallel decoders, 0 for one per CPU" default:"0"`
	Resize  string `help:"Resample each image to WxH after decoding and report timing" placeholder:"WxH"`
	Filter  string `help:"Resize filter" enum:"nearest,approx-bilinear,bilinear,catmullrom,mitchell,lanczos2,lanczos3" default:"catmullrom"`

	filter           pixbuf.Filter
	resizeW, resizeH int
}

func (c *InfoCmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if c.Resize != "" {
		if n, err := fmt.Sscanf(c.Resize, "%dx%d", &c.resizeW, &c.resizeH); err != nil || n < 2 {
			return fmt.Errorf("invalid resize dimensions %q, should be WxH", c.Resize)
		}
		if c.resizeW < 0 || c.resizeH < 0 {
			return fmt.Errorf("invalid resize dimensions %q", c.Resize)
		}
	}

	if c.filter, err = pixbuf.ParseFilter(c.Filter); err != nil {
		return err
	}

	return nil
}

func (c *InfoCmd) Run() error {
	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	pool := parallel.Start(c.Workers)
	var okCount, errCount atomic.Uint64
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		filePath := filepath.Join(c.Scan, file.Name())
		pool.Submit(func() {
			logger := slog.Default().With("file", filePath)

			img, err := pixbuf.FromPath(filePath)
			if err != nil {
				errCount.Add(1)
				logger.Error("could not load image", "error", err)
				return
			}
			logger.Info("image", "width", img.Width(), "height", img.Height())

			if c.Resize != "" {
				start := time.Now()
				resized, err := img.Resize(c.resizeW, c.resizeH, c.filter)
				if err != nil {
					errCount.Add(1)
					logger.Error("could not resize image", "error", err)
					return
				}
				logger.Info("resized", "width", resized.Width(), "height", resized.Height(),
					"filter", c.filter, "elapsed", time.Since(start))
			}
			okCount.Add(1)
		})
	}
	pool.Wait()

	processed := okCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors, "total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}
