package api

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

func cleanOrigin(origin string) string {
	cleanedOrigin := strings.TrimPrefix(origin, "https://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "http://")
	if idx := strings.Index(cleanedOrigin, "/"); idx != -1 {
		cleanedOrigin = cleanedOrigin[:idx]
	}
	return cleanedOrigin
}

var localhostPattern = regexp.MustCompile(`^(localhost|127\.0\.0\.1):\d+$`)

// isAllowedOrigin compares hosts only; localhost ports pass in dev mode
func isAllowedOrigin(origin string, allowedOrigins []string, devMode bool) bool {
	cleanedRequest := cleanOrigin(origin)

	if devMode && localhostPattern.MatchString(cleanedRequest) {
		return true
	}

	// Check against configured allowed origins
	for _, allowed := range allowedOrigins {
		cleanedAllowed := cleanOrigin(allowed)
		if cleanedAllowed == cleanedRequest {
			return true
		}
	}

	return false
}

func wrapMuxWithCorsAndOrigins(mux *http.ServeMux, app *Application) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin == "" {
			referer := r.Header.Get("Referer")
			if referer != "" {
				origin = referer
			}
		}

		if origin == "" {
			handleCors(mux.ServeHTTP)(w, r)
			return
		}

		// Check if origin is allowed
		if isAllowedOrigin(origin, app.Config.AllowedOrigins, app.Config.DevMode) {
			handleCors(mux.ServeHTTP)(w, r)
			return
		}

		app.forbidden(w, r, fmt.Errorf("origin not allowed: %s", cleanOrigin(origin)))
	})
}

func (app *Application) BuildRoutes(mux *http.ServeMux) *http.ServeMux {
	finalMux := http.NewServeMux()

	// Color tools
	mux.HandleFunc("/", app.home)
	mux.HandleFunc("/v1/colors/convert", app.instrument("convert", app.convertColor))
	mux.HandleFunc("/v1/colors/inspect", app.instrument("inspect", app.inspectColor))
	mux.HandleFunc("/v1/colors/tints", app.instrument("tints", app.tintsAndShades))
	mux.HandleFunc("/v1/colors/contrast", app.instrument("contrast", app.contrast))
	mux.HandleFunc("/v1/colors/harmony", app.instrument("harmony", app.harmony))
	mux.HandleFunc("/v1/colors/adjust", app.instrument("adjust", app.adjustColor))

	// Palettes
	mux.HandleFunc("/v1/palettes/generate", app.instrument("generate", app.rateLimit(app.generatePalettes)))
	mux.HandleFunc("/v1/palettes", app.instrument("palettes", app.palettes))
	mux.HandleFunc("/v1/palettes/daily", app.instrument("daily", app.getDailyPalette))
	mux.HandleFunc("/v1/palettes/daily/history", app.instrument("daily_history", app.getDailyPaletteHistory))
	mux.HandleFunc("/v1/palettes/{id}", app.instrument("palette", app.palette))
	mux.HandleFunc("/v1/palettes/{id}/export", app.instrument("export", app.exportPalette))
	mux.HandleFunc("/v1/shared/{token}", app.instrument("shared", app.getSharedPalette))

	// Admin endpoints
	mux.HandleFunc("/v1/admin/daily/regenerate", app.instrument("regenerate", app.verifyAdmin(app.regenerateDailyPalette)))

	mux.Handle("/metrics", app.Metrics.Handler())

	// Wrap entire mux with CORS and origins check
	finalMux.Handle("/", wrapMuxWithCorsAndOrigins(mux, app))

	return finalMux
}
