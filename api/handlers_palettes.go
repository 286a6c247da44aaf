package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/color-game/palette-studio/colors"
	"github.com/color-game/palette-studio/datastore"
	"github.com/color-game/palette-studio/models"
	"github.com/color-game/palette-studio/palette"
)

const (
	defaultShareTokenDuration = 30 * 24 * time.Hour
	editKeyHeader             = "X-Edit-Key"
)

func (app *Application) shareTokenDuration() time.Duration {
	if app.Config.ShareTokenDuration <= 0 {
		return defaultShareTokenDuration
	}
	return time.Duration(app.Config.ShareTokenDuration) * time.Second
}

// POST /v1/palettes/generate
func (app *Application) generatePalettes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &models.GeneratePalettesRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	started := time.Now()
	palettes, err := app.Generator.Generate(r.Context(), req.BrandColors)
	switch {
	case err == nil:
	case errors.Is(err, palette.ErrNoBrandColors),
		errors.Is(err, palette.ErrTooManyBrandColors),
		errors.Is(err, colors.ErrMalformedHex):
		app.badRequest(w, r, err)
		return
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Printf("palette generation abandoned by client %s: %v", clientIP(r), err)
		return
	default:
		app.internalServerError(w, r, err)
		return
	}

	app.Metrics.observeGeneration(len(palettes), started)
	writeJSON(w, http.StatusOK, models.GeneratePalettesResponse{Palettes: palettes})
}

// GET, POST /v1/palettes
func (app *Application) palettes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		app.listPalettes(w, r)
	case http.MethodPost:
		app.savePalette(w, r)
	default:
		app.methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (app *Application) listPalettes(w http.ResponseWriter, r *http.Request) {
	limit := datastore.DefaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			app.badRequest(w, r, errors.New("limit must be a positive integer"))
			return
		}
		limit = datastore.ClampLimit(parsed)
	}

	saved, err := app.PaletteRepo.List(limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.SavedPaletteList{Palettes: saved, Count: len(saved)})
}

func (app *Application) savePalette(w http.ResponseWriter, r *http.Request) {
	req := &models.SavePaletteRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}
	if err := req.Palette.Validate(); err != nil {
		app.badRequest(w, r, err)
		return
	}

	saved, editKey, err := models.NewSavedPalette(req.Palette)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	stored, err := app.PaletteRepo.Create(saved)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	shareToken, expiresAt, err := models.NewShareToken(stored.ID, app.Config.JwtSecret, app.shareTokenDuration())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.Metrics.palettesSaved.Inc()
	writeJSON(w, http.StatusCreated, models.SavePaletteResponse{
		Palette:    stored,
		EditKey:    editKey,
		ShareToken: shareToken,
		ShareURL:   "/v1/shared/" + shareToken,
		ExpiresAt:  expiresAt,
	})
}

// lookupPalette writes a 404 or 500 and returns false when id cannot be loaded
func (app *Application) lookupPalette(w http.ResponseWriter, r *http.Request, id string) (models.SavedPalette, bool) {
	saved, err := app.PaletteRepo.Get(id)
	if errors.Is(err, datastore.ErrNotFound) {
		app.notFound(w, r, errors.New("palette not found"))
		return models.SavedPalette{}, false
	}
	if err != nil {
		app.internalServerError(w, r, err)
		return models.SavedPalette{}, false
	}
	return saved, true
}

// GET, DELETE /v1/palettes/{id}
func (app *Application) palette(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	switch r.Method {
	case http.MethodGet:
		saved, ok := app.lookupPalette(w, r, id)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, saved)

	case http.MethodDelete:
		saved, ok := app.lookupPalette(w, r, id)
		if !ok {
			return
		}
		if err := saved.CheckEditKey(r.Header.Get(editKeyHeader)); err != nil {
			app.forbidden(w, r, err)
			return
		}
		if err := app.PaletteRepo.Delete(id); err != nil {
			if errors.Is(err, datastore.ErrNotFound) {
				app.notFound(w, r, errors.New("palette not found"))
				return
			}
			app.internalServerError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		app.methodNotAllowed(w, r, http.MethodGet, http.MethodDelete)
	}
}

// GET /v1/palettes/{id}/export?format=css|json|yaml
func (app *Application) exportPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	format, err := models.ParseExportFormat(r.URL.Query().Get("format"))
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	saved, ok := app.lookupPalette(w, r, r.PathValue("id"))
	if !ok {
		return
	}

	body, err := saved.Palette.Export(format)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// GET /v1/shared/{token}
func (app *Application) getSharedPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	claims, err := models.ValidateScopedToken(r.PathValue("token"), app.Config.JwtSecret, models.ScopeShare)
	if err != nil {
		app.invalidAuthorization(w, r, err)
		return
	}

	saved, ok := app.lookupPalette(w, r, claims.PaletteID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// GET /v1/palettes/daily
func (app *Application) getDailyPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	daily, err := app.Scheduler.Today()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, daily.Response())
}

// POST /v1/admin/daily/regenerate
func (app *Application) regenerateDailyPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	daily, err := app.Scheduler.GenerateDailyPalette(true)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, daily.Response())
}

// GET /v1/palettes/daily/history?limit=
func (app *Application) getDailyPaletteHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = datastore.DefaultListLimit
	}

	recent, err := app.DailyPaletteRepo.GetRecent(limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	responses := make([]models.DailyPaletteResponse, 0, len(recent))
	for _, dp := range recent {
		responses = append(responses, dp.Response())
	}
	writeJSON(w, http.StatusOK, responses)
}
