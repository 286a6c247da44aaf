package scheduler

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/color-game/palette-studio/colors"
	"github.com/color-game/palette-studio/datastore"
	"github.com/color-game/palette-studio/models"
	"github.com/color-game/palette-studio/palette"
)

// goldenAngle spreads consecutive days evenly around the hue wheel.
const goldenAngle = 137.508

const (
	dailySaturation = 65
	dailyLightness  = 50
)

type Scheduler struct {
	DailyPaletteRepo datastore.DailyPaletteRepository
	Generator        *palette.Generator
	// OnGenerate is called after a palette is stored, if set.
	OnGenerate func(models.DailyPalette)

	now      func() time.Time
	mu       sync.Mutex
	ticker   *time.Ticker
	timer    *time.Timer
	done     chan struct{}
	stopOnce sync.Once
}

func NewScheduler(repo datastore.DailyPaletteRepository, generator *palette.Generator) *Scheduler {
	return &Scheduler{
		DailyPaletteRepo: repo,
		Generator:        generator,
		now:              time.Now,
		done:             make(chan struct{}),
	}
}

// DailyBaseColor is the base hue for date, derived from its day of year
func DailyBaseColor(date time.Time) colors.HSL {
	hue := math.Mod(float64(date.YearDay())*goldenAngle, 360)
	return colors.HSL{H: colors.NormalizeHue(math.Round(hue)), S: dailySaturation, L: dailyLightness}
}

// Start begins the scheduler to run at midnight every day
func (s *Scheduler) Start() {
	now := s.now()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	untilMidnight := nextMidnight.Sub(now)

	log.Printf("scheduler started, next daily palette in %v", untilMidnight)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer = time.AfterFunc(untilMidnight, func() {
		s.runDaily()

		ticker := s.startTicker()
		if ticker == nil {
			return
		}
		go func() {
			for {
				select {
				case <-ticker.C:
					s.runDaily()
				case <-s.done:
					return
				}
			}
		}()
	})
}

// startTicker installs the daily ticker, or returns nil once Stop has run.
func (s *Scheduler) startTicker() *time.Ticker {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.done:
		return nil
	default:
	}
	s.ticker = time.NewTicker(24 * time.Hour)
	return s.ticker
}

// Stop stops the scheduler. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		if s.timer != nil {
			s.timer.Stop()
		}
		if s.ticker != nil {
			s.ticker.Stop()
		}
		close(s.done)
		s.mu.Unlock()
		log.Println("scheduler stopped")
	})
}

func (s *Scheduler) runDaily() {
	if _, err := s.GenerateDailyPalette(false); err != nil {
		log.Printf("error generating daily palette: %v", err)
	}
}

// Today returns today's palette, generating and storing it on first request
func (s *Scheduler) Today() (models.DailyPalette, error) {
	daily, err := s.DailyPaletteRepo.GetByDate(s.now())
	if err == nil {
		return daily, nil
	}
	if !errors.Is(err, datastore.ErrNotFound) {
		return models.DailyPalette{}, err
	}
	return s.GenerateDailyPalette(false)
}

// GenerateDailyPalette assembles and stores today's palette. An existing
// palette is kept unless force is set.
func (s *Scheduler) GenerateDailyPalette(force bool) (models.DailyPalette, error) {
	today := datastore.NormalizeDate(s.now())

	if !force {
		existing, err := s.DailyPaletteRepo.GetByDate(today)
		if err == nil && existing.ID != 0 {
			log.Printf("daily palette already exists for %s: %s", today.Format("2006-01-02"), existing.Palette.Name)
			return existing, nil
		}
	}

	base := DailyBaseColor(today)
	baseHex := base.RGB().Hex()

	p, err := s.Generator.Assemble([]string{baseHex}, today.YearDay()-1)
	if err != nil {
		return models.DailyPalette{}, fmt.Errorf("failed to assemble daily palette: %v", err)
	}

	saved, err := s.DailyPaletteRepo.Upsert(models.DailyPalette{
		Date:      today,
		BaseHex:   baseHex,
		Palette:   p,
		CreatedAt: s.now(),
	})
	if err != nil {
		return models.DailyPalette{}, err
	}

	log.Printf("generated daily palette %q (%s, %s) for %s",
		saved.Palette.Name, saved.BaseHex, saved.Palette.Pattern, saved.Date.Format("2006-01-02"))

	if s.OnGenerate != nil {
		s.OnGenerate(saved)
	}
	return saved, nil
}
