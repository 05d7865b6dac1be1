package library

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/paulchambaz/illiad/internal/repositories"
)

// Synchronizer drives full library scans into the catalog store.
//
// Syncing is expected to finish before request traffic starts and is not safe
// to run concurrently with itself.
type Synchronizer struct {
	repo   *repositories.AudiobookRepository
	logger *log.Logger
}

// NewSynchronizer creates a Synchronizer writing to the given catalog repository.
func NewSynchronizer(repo *repositories.AudiobookRepository, logger *log.Logger) *Synchronizer {
	return &Synchronizer{repo: repo, logger: logger}
}

// Sync scans root and upserts every candidate into the catalog, keyed by its
// content hash. Returns the number of audiobooks ingested.
//
// Re-running over an unchanged tree leaves the catalog identical; a changed
// info.toml replaces the stored row under the same hash. The first upsert
// failure aborts the remaining work and is returned; rows upserted earlier in
// the same run stay committed. Entries whose source directory has since
// disappeared are never deleted.
func (s *Synchronizer) Sync(root string) (int, error) {
	audiobooks, err := Scan(root, s.logger)
	if err != nil {
		return 0, fmt.Errorf("failed to scan library: %w", err)
	}

	for i, audiobook := range audiobooks {
		audiobook.Hash = ComputeHash(audiobook.Title, audiobook.Author)

		if err := s.repo.Upsert(audiobook); err != nil {
			return i, fmt.Errorf("failed to sync %s: %w", audiobook.Path, err)
		}

		s.logger.Debug("indexed audiobook",
			"hash", audiobook.Hash,
			"title", audiobook.Title,
			"author", audiobook.Author,
		)
	}

	return len(audiobooks), nil
}
