package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/color-game/palette-studio/colors"
	"github.com/color-game/palette-studio/models"
	"github.com/color-game/palette-studio/palette"
)

// MaxTintCount bounds the tints and shades requested in one call
const MaxTintCount = 20

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseColorInput accepts hex (with or without '#', 3 or 6 digits), rgb() and hsl()
func parseColorInput(color string) (colors.RGB, error) {
	if strings.TrimSpace(color) == "" {
		return colors.RGB{}, errors.New("color is required")
	}
	rgb, err := colors.ParseColor(color)
	if err == nil {
		return rgb, nil
	}
	if !errors.Is(err, colors.ErrUnknownFormat) && !errors.Is(err, colors.ErrMalformedHex) {
		return colors.RGB{}, err
	}
	hex, hexErr := colors.NormalizeHex(color)
	if hexErr != nil {
		return colors.RGB{}, err
	}
	return colors.HexToRGB(hex)
}

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		app.notFound(w, r, fmt.Errorf("no route for %s", r.URL.Path))
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Palette Studio API")
}

// POST /v1/colors/convert
func (app *Application) convertColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &models.ConvertRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	format, err := colors.ParseFormat(req.Format)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}
	rgb, err := parseColorInput(req.Color)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	input := req.Color
	if _, err := colors.ParseColor(input); err != nil {
		// shorthand or bare hex digits
		input = rgb.Hex()
	}

	writeJSON(w, http.StatusOK, models.ConvertResponse{
		Color:  req.Color,
		Format: string(format),
		Result: colors.ConvertColor(input, format),
	})
}

// GET /v1/colors/inspect?color=
func (app *Application) inspectColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	color := r.URL.Query().Get("color")
	rgb, err := parseColorInput(color)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.InspectResponse{
		ColorEncodings: models.NewColorEncodings(rgb),
		Name:           palette.ColorName(rgb.HSL(), palette.RolePrimary, 0),
		IsLight:        colors.IsColorLight(rgb.Hex()),
	})
}

// POST /v1/colors/tints
func (app *Application) tintsAndShades(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &models.TintsRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}
	if req.Tints < 0 || req.Tints > MaxTintCount || req.Shades < 0 || req.Shades > MaxTintCount {
		app.badRequest(w, r, fmt.Errorf("tints and shades must be between 0 and %d", MaxTintCount))
		return
	}

	rgb, err := parseColorInput(req.Color)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}
	base := rgb.Hex()

	tints, err := colors.GenerateTints(base, req.Tints)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	shades, err := colors.GenerateShades(base, req.Shades)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.TintsResponse{Base: base, Tints: tints, Shades: shades})
}

// POST /v1/colors/contrast
func (app *Application) contrast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &models.ContrastRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	fg, err := parseColorInput(req.Foreground)
	if err != nil {
		app.badRequest(w, r, fmt.Errorf("foreground: %w", err))
		return
	}
	bg, err := parseColorInput(req.Background)
	if err != nil {
		app.badRequest(w, r, fmt.Errorf("background: %w", err))
		return
	}

	writeJSON(w, http.StatusOK, models.ContrastResponse{
		Foreground:     fg.Hex(),
		Background:     bg.Hex(),
		ContrastRating: colors.Rating(colors.Contrast(fg, bg)),
	})
}

// POST /v1/colors/harmony
func (app *Application) harmony(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &models.HarmonyRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	pattern, err := colors.ParsePattern(req.Pattern)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}
	rgb, err := parseColorInput(req.Color)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	harmony := colors.Harmony(rgb.HSL(), pattern)
	resp := models.HarmonyResponse{
		Pattern: string(pattern),
		Colors:  make([]models.ColorEncodings, 0, len(harmony)),
	}
	for _, c := range harmony {
		resp.Colors = append(resp.Colors, models.NewColorEncodings(c.RGB()))
	}

	writeJSON(w, http.StatusOK, resp)
}

// POST /v1/colors/adjust
func (app *Application) adjustColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &models.AdjustRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}
	if req.Target == 0 {
		req.Target = colors.ContrastAA
	}
	if req.Target < 1 || req.Target > 21 {
		app.badRequest(w, r, errors.New("target contrast must be between 1 and 21"))
		return
	}

	color, err := parseColorInput(req.Color)
	if err != nil {
		app.badRequest(w, r, fmt.Errorf("color: %w", err))
		return
	}
	reference, err := parseColorInput(req.Reference)
	if err != nil {
		app.badRequest(w, r, fmt.Errorf("reference: %w", err))
		return
	}

	cfg := app.Generator.Config().Adjust
	result := colors.AdjustForContrast(color.HSL(), reference, req.Target, cfg)

	writeJSON(w, http.StatusOK, models.AdjustResponse{
		Original:   color.Hex(),
		Reference:  reference.Hex(),
		Target:     req.Target,
		Adjusted:   models.NewColorEncodings(result.Color),
		Contrast:   result.Contrast,
		Iterations: result.Iterations,
		MetTarget:  result.Contrast >= req.Target-cfg.Tolerance,
	})
}
