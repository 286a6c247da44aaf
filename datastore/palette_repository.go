package datastore

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/color-game/palette-studio/models"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

type PaletteRepository interface {
	Create(saved models.SavedPalette) (models.SavedPalette, error)
	Get(id string) (models.SavedPalette, error)
	List(limit int) ([]models.SavedPalette, error)
	Delete(id string) error
}

func NewPaletteDatabase(db *sql.DB) (PaletteDatabase, error) {
	var paletteDatabase PaletteDatabase
	paletteDatabase.database = db
	return paletteDatabase, nil
}

type PaletteDatabase struct {
	database *sql.DB
}

func (pgdb PaletteDatabase) Create(saved models.SavedPalette) (models.SavedPalette, error) {
	db := pgdb.database

	payload, err := saved.Palette.Serialize()
	if err != nil {
		return models.SavedPalette{}, err
	}

	_, insertErr := db.Exec(`
		INSERT INTO saved_palettes (
			id,
			name,
			pattern,
			palette,
			edit_key_hash,
			created_at
		) VALUES (
			$1,
			$2,
			$3,
			$4,
			$5,
			$6
		)`,
		saved.ID,
		saved.Palette.Name,
		saved.Palette.Pattern,
		payload,
		saved.EditKeyHash,
		saved.CreatedAt,
	)
	if insertErr != nil {
		return models.SavedPalette{}, fmt.Errorf("failed to save palette: %v", insertErr)
	}

	return saved, nil
}

// Get answers NoRowsError for ids that are not UUIDs without querying,
// since the uuid column would reject them with a type error.
func (pgdb PaletteDatabase) Get(id string) (models.SavedPalette, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.SavedPalette{}, NoRowsError{true, sql.ErrNoRows}
	}
	db := pgdb.database

	row := db.QueryRow(`
		SELECT id, palette, edit_key_hash, created_at
		FROM saved_palettes
		WHERE id = $1`, id)

	saved, err := scanSavedPalette(row)
	switch err {
	case sql.ErrNoRows:
		return models.SavedPalette{}, NoRowsError{true, err}
	case nil:
		return saved, nil
	default:
		return models.SavedPalette{}, err
	}
}

// List returns the most recently saved palettes first
func (pgdb PaletteDatabase) List(limit int) ([]models.SavedPalette, error) {
	db := pgdb.database

	rows, err := db.Query(`
		SELECT id, palette, edit_key_hash, created_at
		FROM saved_palettes
		ORDER BY created_at DESC
		LIMIT $1`, ClampLimit(limit))
	if err != nil {
		return []models.SavedPalette{}, err
	}
	defer rows.Close()

	palettes := []models.SavedPalette{}
	for rows.Next() {
		saved, err := scanSavedPalette(rows)
		if err != nil {
			return []models.SavedPalette{}, err
		}
		palettes = append(palettes, saved)
	}

	if err = rows.Err(); err != nil {
		return []models.SavedPalette{}, err
	}

	return palettes, nil
}

func (pgdb PaletteDatabase) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return NoRowsError{true, sql.ErrNoRows}
	}
	db := pgdb.database

	result, err := db.Exec(`DELETE FROM saved_palettes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return NoRowsError{true, sql.ErrNoRows}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSavedPalette(row rowScanner) (models.SavedPalette, error) {
	var saved models.SavedPalette
	var payload []byte
	if err := row.Scan(&saved.ID, &payload, &saved.EditKeyHash, &saved.CreatedAt); err != nil {
		return models.SavedPalette{}, err
	}
	if err := json.Unmarshal(payload, &saved.Palette); err != nil {
		return models.SavedPalette{}, fmt.Errorf("failed to decode palette %s: %v", saved.ID, err)
	}
	return saved, nil
}

// ClampLimit bounds a caller supplied page size
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
