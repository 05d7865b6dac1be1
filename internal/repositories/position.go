package repositories

import (
	"database/sql"
	"fmt"

	"github.com/paulchambaz/illiad/internal/models"
	"github.com/paulchambaz/illiad/internal/shared"
)

// PositionRepository persists per-user playback positions.
type PositionRepository struct {
	db *sql.DB
}

// NewPositionRepository creates a new [PositionRepository] with the given database connection
func NewPositionRepository(db *sql.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

// Upsert records the last known position for a (audiobook, user) pair,
// inserting the row on first write and updating it afterwards.
//
// The write is a single statement riding on the UNIQUE(hash, user)
// constraint, so concurrent writers for the same pair cannot produce
// duplicate rows; the later commit wins.
func (r *PositionRepository) Upsert(hash, user string, position models.Position) error {
	query := `
		INSERT INTO positions (hash, user, file, position)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (hash, user) DO UPDATE SET file = excluded.file, position = excluded.position
	`

	_, err := r.db.Exec(query, hash, user, position.File, position.Position)
	if err != nil {
		return fmt.Errorf("failed to upsert position: %w", err)
	}

	return nil
}

// Get retrieves the last known position for a (audiobook, user) pair.
//
// Returns [shared.ErrNotFound] when no position was ever recorded for the pair.
func (r *PositionRepository) Get(hash, user string) (models.Position, error) {
	var position models.Position
	err := r.db.QueryRow(
		"SELECT file, position FROM positions WHERE hash = ? AND user = ?",
		hash, user,
	).Scan(&position.File, &position.Position)
	if err == sql.ErrNoRows {
		return models.Position{}, fmt.Errorf("position for %s: %w", hash, shared.ErrNotFound)
	}
	if err != nil {
		return models.Position{}, fmt.Errorf("failed to query position: %w", err)
	}

	return position, nil
}
