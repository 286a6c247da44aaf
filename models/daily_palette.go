package models

import "time"

// DailyPalette is the featured palette for a date
type DailyPalette struct {
	ID        int       `json:"id"`
	Date      time.Time `json:"date"`
	BaseHex   string    `json:"base_hex"`
	Palette   Palette   `json:"palette"`
	CreatedAt time.Time `json:"created_at"`
}

// DailyPaletteResponse is the simplified response for API endpoints
type DailyPaletteResponse struct {
	Date    string  `json:"date"`
	BaseHex string  `json:"base_hex"`
	Palette Palette `json:"palette"`
}

func (dp DailyPalette) Response() DailyPaletteResponse {
	return DailyPaletteResponse{
		Date:    dp.Date.Format("2006-01-02"),
		BaseHex: dp.BaseHex,
		Palette: dp.Palette,
	}
}
