package repositories

import (
	"database/sql"
	"fmt"

	"github.com/paulchambaz/illiad/internal/models"
	"github.com/paulchambaz/illiad/internal/shared"
)

// AudiobookRepository persists the audiobook catalog.
type AudiobookRepository struct {
	db *sql.DB
}

// NewAudiobookRepository creates a new [AudiobookRepository] with the given database connection
func NewAudiobookRepository(db *sql.DB) *AudiobookRepository {
	return &AudiobookRepository{db: db}
}

// Upsert inserts an audiobook or, when a row with the same hash already
// exists, replaces its title, author and path. Re-syncing an unchanged
// library is therefore a no-op in effect.
func (r *AudiobookRepository) Upsert(audiobook models.Audiobook) error {
	query := `
		INSERT OR REPLACE INTO audiobooks (hash, title, author, path)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, audiobook.Hash, audiobook.Title, audiobook.Author, audiobook.Path)
	if err != nil {
		return fmt.Errorf("failed to upsert audiobook: %w", err)
	}

	return nil
}

// List retrieves all catalog entries without their storage paths.
//
// Row order is store-defined; callers must not depend on it.
func (r *AudiobookRepository) List() ([]models.AudiobookSummary, error) {
	rows, err := r.db.Query("SELECT hash, title, author FROM audiobooks")
	if err != nil {
		return nil, fmt.Errorf("failed to query audiobooks: %w", err)
	}
	defer rows.Close()

	var audiobooks []models.AudiobookSummary
	for rows.Next() {
		var summary models.AudiobookSummary
		if err := rows.Scan(&summary.Hash, &summary.Title, &summary.Author); err != nil {
			return nil, fmt.Errorf("failed to scan audiobook: %w", err)
		}
		audiobooks = append(audiobooks, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return audiobooks, nil
}

// GetPath retrieves the storage path for the audiobook with the given hash.
//
// Returns [shared.ErrNotFound] when the hash is not in the catalog.
func (r *AudiobookRepository) GetPath(hash string) (string, error) {
	var path string
	err := r.db.QueryRow("SELECT path FROM audiobooks WHERE hash = ?", hash).Scan(&path)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("audiobook %s: %w", hash, shared.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to query audiobook path: %w", err)
	}

	return path, nil
}
