package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"pixbuf"

	"github.com/alecthomas/kong"
)

type OrientParams struct {
	Scan      string `help:"Source folder to scan" default:"."`
	Portrait  string `help:"Destination folder for portrait images" default:"portrait"`
	Landscape string `help:"Destination folder for landscape images" default:"landscape"`
}

type OrientCmd struct {
	Cp OrientCpCmd `cmd:"" help:"Copy images into their orientation folders"`
	Mv OrientMvCmd `cmd:"" help:"Move images into their orientation folders"`
}

type OrientCpCmd struct {
	OrientParams
}

func (c *OrientCpCmd) Run() error {
	return c.run(copyFile)
}

type OrientMvCmd struct {
	OrientParams
}

func (c *OrientMvCmd) Run() error {
	return c.run(moveFile)
}

func (p *OrientParams) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(p.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", p.Scan, err)
	}
	p.Scan = scanDir

	if !filepath.IsAbs(p.Portrait) {
		p.Portrait = filepath.Join(scanDir, p.Portrait)
	}

	if !filepath.IsAbs(p.Landscape) {
		p.Landscape = filepath.Join(scanDir, p.Landscape)
	}

	return nil
}

func (p *OrientParams) run(fileOp func(string, string) error) error {
	if err := os.MkdirAll(p.Portrait, os.ModeDir); err != nil {
		return fmt.Errorf("unable to create portrait destination folder %q: %w", p.Portrait, err)
	}

	if err := os.MkdirAll(p.Landscape, os.ModeDir); err != nil {
		return fmt.Errorf("unable to create landscape destination folder %q: %w", p.Landscape, err)
	}

	files, err := os.ReadDir(p.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", p.Scan, err)
	}

	var portraitCount, landscapeCount, errCount int
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		name := filepath.Join(p.Scan, file.Name())
		img, err := pixbuf.FromPath(name)
		if err != nil {
			errCount++
			slog.Error("could not load image", "file", name, "error", err)
			continue
		}

		isPortrait := img.Height() > img.Width()
		var dest string
		if isPortrait {
			portraitCount++
			dest = filepath.Join(p.Portrait, file.Name())
		} else {
			landscapeCount++
			dest = filepath.Join(p.Landscape, file.Name())
		}

		if err = fileOp(name, dest); err != nil {
			errCount++
			slog.Error("could not operate image", "from", name, "to", dest, "error", err)
		}
	}

	slog.Info("stats", "portraits", portraitCount, "landscapes", landscapeCount, "errors", errCount, "total",
		portraitCount+landscapeCount)

	if errCount > 0 {
		return fmt.Errorf("error processing %d files", errCount)
	}
	return nil
}
