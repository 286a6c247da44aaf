package api

import (
	"github.com/color-game/palette-studio/datastore"
	"github.com/color-game/palette-studio/palette"
	"github.com/color-game/palette-studio/scheduler"
)

type Config struct {
	HTTPPort           string
	DatabaseType       string
	DatabaseHost       string
	DatabaseUser       string
	DatabasePassword   string
	DatabaseName       string
	SSLMode            string
	JwtSecret          string
	ShareTokenDuration int // seconds
	AllowedOrigins     []string
	DevMode            bool
	RateLimitRPS       float64
	RateLimitBurst     int
	DailyPalette       bool
}

type Application struct {
	Config           Config
	Generator        *palette.Generator
	PaletteRepo      datastore.PaletteRepository
	DailyPaletteRepo datastore.DailyPaletteRepository
	Scheduler        *scheduler.Scheduler
	Metrics          *Metrics
	Limiter          *IPRateLimiter
}

// NewApplication wires the generator, repositories and daily scheduler behind
// one Application. The scheduler is created but not started.
func NewApplication(cfg Config, generator *palette.Generator, palettes datastore.PaletteRepository, daily datastore.DailyPaletteRepository) *Application {
	app := &Application{
		Config:           cfg,
		Generator:        generator,
		PaletteRepo:      palettes,
		DailyPaletteRepo: daily,
		Metrics:          NewMetrics(),
		Limiter:          NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}
	app.Scheduler = scheduler.NewScheduler(daily, generator)
	app.Scheduler.OnGenerate = app.Metrics.observeDaily
	return app
}
