package datastore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/color-game/palette-studio/models"
	_ "github.com/lib/pq"
)

type DailyPaletteRepository interface {
	Upsert(daily models.DailyPalette) (models.DailyPalette, error)
	GetByDate(date time.Time) (models.DailyPalette, error)
	GetToday() (models.DailyPalette, error)
	GetRecent(limit int) ([]models.DailyPalette, error)
}

type DailyPaletteDatabase struct {
	database *sql.DB
}

func NewDailyPaletteDatabase(db *sql.DB) (DailyPaletteDatabase, error) {
	var dailyPaletteDB DailyPaletteDatabase
	dailyPaletteDB.database = db
	return dailyPaletteDB, nil
}

// NormalizeDate truncates date to the start of its day
func NormalizeDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// Upsert stores the featured palette for a date, replacing any existing one
func (dpdb DailyPaletteDatabase) Upsert(daily models.DailyPalette) (models.DailyPalette, error) {
	db := dpdb.database

	payload, err := daily.Palette.Serialize()
	if err != nil {
		return models.DailyPalette{}, err
	}
	daily.Date = NormalizeDate(daily.Date)

	sqlStatement := `
		INSERT INTO daily_palette (date, base_hex, palette, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (date)
		DO UPDATE SET
			base_hex = EXCLUDED.base_hex,
			palette = EXCLUDED.palette,
			created_at = EXCLUDED.created_at
		RETURNING id`

	err = db.QueryRow(
		sqlStatement,
		daily.Date,
		daily.BaseHex,
		payload,
		daily.CreatedAt,
	).Scan(&daily.ID)

	if err != nil {
		return models.DailyPalette{}, fmt.Errorf("failed to store daily palette: %v", err)
	}

	return daily, nil
}

// GetByDate retrieves the featured palette for a date
func (dpdb DailyPaletteDatabase) GetByDate(date time.Time) (models.DailyPalette, error) {
	db := dpdb.database

	sqlStatement := `
		SELECT id, date, base_hex, palette, created_at
		FROM daily_palette
		WHERE date = $1`

	daily, err := scanDailyPalette(db.QueryRow(sqlStatement, NormalizeDate(date)))
	switch err {
	case sql.ErrNoRows:
		return models.DailyPalette{}, NoRowsError{true, err}
	case nil:
		return daily, nil
	default:
		return models.DailyPalette{}, err
	}
}

// GetToday retrieves today's featured palette
func (dpdb DailyPaletteDatabase) GetToday() (models.DailyPalette, error) {
	return dpdb.GetByDate(time.Now())
}

// GetRecent retrieves the latest featured palettes, newest first
func (dpdb DailyPaletteDatabase) GetRecent(limit int) ([]models.DailyPalette, error) {
	db := dpdb.database

	sqlStatement := `
		SELECT id, date, base_hex, palette, created_at
		FROM daily_palette
		ORDER BY date DESC
		LIMIT $1`

	rows, err := db.Query(sqlStatement, ClampLimit(limit))
	if err != nil {
		return []models.DailyPalette{}, err
	}
	defer rows.Close()

	dailyPalettes := []models.DailyPalette{}
	for rows.Next() {
		dp, err := scanDailyPalette(rows)
		if err != nil {
			return []models.DailyPalette{}, err
		}
		dailyPalettes = append(dailyPalettes, dp)
	}

	if err = rows.Err(); err != nil {
		return []models.DailyPalette{}, err
	}

	return dailyPalettes, nil
}

func scanDailyPalette(row rowScanner) (models.DailyPalette, error) {
	var dp models.DailyPalette
	var payload []byte
	err := row.Scan(
		&dp.ID,
		&dp.Date,
		&dp.BaseHex,
		&payload,
		&dp.CreatedAt,
	)
	if err != nil {
		return models.DailyPalette{}, err
	}
	if err := json.Unmarshal(payload, &dp.Palette); err != nil {
		return models.DailyPalette{}, fmt.Errorf("failed to decode daily palette %d: %v", dp.ID, err)
	}
	return dp, nil
}
