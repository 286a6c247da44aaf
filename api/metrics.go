package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/color-game/palette-studio/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can build many Applications.
type Metrics struct {
	Registry *prometheus.Registry

	requests           *prometheus.CounterVec
	palettesGenerated  prometheus.Counter
	generationDuration prometheus.Histogram
	palettesSaved      prometheus.Counter
	dailyGenerated     prometheus.Counter
	rateLimited        prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "palette_studio",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "method", "code"}),
		palettesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "palette_studio",
			Name:      "palettes_generated_total",
			Help:      "Palettes assembled by the generate endpoint.",
		}),
		generationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "palette_studio",
			Name:      "palette_generation_seconds",
			Help:      "Time to produce one batch, including the artificial delay.",
			Buckets:   []float64{0.01, 0.1, 0.5, 1, 1.5, 2, 5},
		}),
		palettesSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "palette_studio",
			Name:      "palettes_saved_total",
			Help:      "Palettes saved for sharing.",
		}),
		dailyGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "palette_studio",
			Name:      "daily_palettes_generated_total",
			Help:      "Daily featured palettes generated.",
		}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "palette_studio",
			Name:      "rate_limited_requests_total",
			Help:      "Requests rejected by the per-IP rate limiter.",
		}),
	}

	m.Registry.MustRegister(
		m.requests,
		m.palettesGenerated,
		m.generationDuration,
		m.palettesSaved,
		m.dailyGenerated,
		m.rateLimited,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observeGeneration(count int, started time.Time) {
	m.palettesGenerated.Add(float64(count))
	m.generationDuration.Observe(time.Since(started).Seconds())
}

func (m *Metrics) observeDaily(models.DailyPalette) {
	m.dailyGenerated.Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// instrument counts requests to route by status code
func (app *Application) instrument(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h.ServeHTTP(rec, r)
		app.Metrics.requests.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
	}
}
