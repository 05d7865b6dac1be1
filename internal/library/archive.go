package library

import (
	"archive/tar"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// BuildArchive bundles every regular file at the top level of dir into a
// gzip-compressed tar archive and returns the complete buffer.
//
// Files are stored under their base name only; subdirectories and their
// contents are skipped. The build is all-or-nothing: an unreadable directory,
// an unreadable member file or a failed finalize each abort the whole
// operation and discard partial output, so callers see either a complete
// archive or an error.
func BuildArchive(dir string) ([]byte, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read audiobook directory %s: %w", dir, err)
	}

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		if err := appendFile(tw, filepath.Join(dir, entry.Name())); err != nil {
			return nil, err
		}
	}

	if err := tw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	if err := gw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize compression: %w", err)
	}

	return buf.Bytes(), nil
}

// appendFile writes one file into the archive under its base name.
func appendFile(tw *tar.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("failed to build header for %s: %w", path, err)
	}
	header.Name = info.Name()

	if err := tw.WriteHeader(header); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", path, err)
	}
	if _, err := io.Copy(tw, f); err != nil {
		return fmt.Errorf("failed to archive file %s: %w", path, err)
	}

	return nil
}
