package library

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/paulchambaz/illiad/internal/models"
	"github.com/paulchambaz/illiad/internal/shared"
)

// bookInfo is the schema of an audiobook's info.toml metadata file.
type bookInfo struct {
	Title  string `toml:"title"`
	Author string `toml:"author"`
}

// Scan lists the immediate subdirectories of root and reads each one's
// info.toml into a catalog candidate. The scan is shallow and stateless:
// every call re-reads the filesystem, and results come back in directory
// listing order.
//
// A subdirectory with a missing, unparseable or incomplete info.toml is
// skipped with a debug log; a bad directory must not block ingestion of its
// siblings. Only an unreadable root is an error.
func Scan(root string, logger *log.Logger) ([]models.Audiobook, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read library root %s: %w", root, err)
	}

	var audiobooks []models.Audiobook
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		audiobook, err := scanDirectory(filepath.Join(root, entry.Name()))
		if err != nil {
			logger.Debug("skipping directory", "dir", entry.Name(), "error", err)
			continue
		}

		audiobooks = append(audiobooks, audiobook)
	}

	return audiobooks, nil
}

// scanDirectory reads one audiobook directory's info.toml into a candidate.
func scanDirectory(dir string) (models.Audiobook, error) {
	var info bookInfo
	if _, err := toml.DecodeFile(filepath.Join(dir, "info.toml"), &info); err != nil {
		return models.Audiobook{}, fmt.Errorf("failed to read metadata in %s: %w", dir, err)
	}

	if info.Title == "" {
		return models.Audiobook{}, fmt.Errorf("%w: missing title in %s", shared.ErrInvalidMetadata, dir)
	}
	if info.Author == "" {
		return models.Audiobook{}, fmt.Errorf("%w: missing author in %s", shared.ErrInvalidMetadata, dir)
	}

	return models.Audiobook{
		Title:  info.Title,
		Author: info.Author,
		Path:   dir,
	}, nil
}
