package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
)

func copyFile(src, dest string) error {
	slog.Info("copying", "from", src, "to", dest)

	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("cannot stat source file %q: %w", src, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("cannot copy non-regular file %q: %s", src, info.Mode())
	}

	inFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("could not open source file %q: %w", src, err)
	}
	defer func() {
		if closeErr := inFile.Close(); closeErr != nil {
			slog.Error("could not close source file", "name", src, "error", closeErr)
		}
	}()

	// O_EXCL refuses to clobber a file already sorted into the destination.
	outFile, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("could not create destination file %q: %w", dest, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			slog.Error("could not close destination file", "name", dest, "error", closeErr)
		}
	}()

	if _, err = io.Copy(outFile, inFile); err != nil {
		return fmt.Errorf("could not copy from %q to %q: %w", src, dest, err)
	}

	if err = outFile.Sync(); err != nil {
		return fmt.Errorf("could not flush destination file %q: %w", dest, err)
	}
	return nil
}

func moveFile(src, dest string) error {
	slog.Info("moving", "from", src, "to", dest)

	// Rename would silently replace an existing destination.
	if _, err := os.Stat(dest); err == nil {
		return fmt.Errorf("destination file already exists: %q", dest)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot stat destination file %q: %w", dest, err)
	}

	return os.Rename(src, dest)
}
