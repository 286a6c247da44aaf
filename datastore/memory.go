package datastore

import (
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/color-game/palette-studio/models"
)

// MemoryStore keeps saved and daily palettes in process. It backs DB_TYPE=memory
// and the handler tests.
type MemoryStore struct {
	mu       sync.RWMutex
	palettes map[string]models.SavedPalette
	daily    map[string]models.DailyPalette
	nextID   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		palettes: make(map[string]models.SavedPalette),
		daily:    make(map[string]models.DailyPalette),
	}
}

func (m *MemoryStore) Create(saved models.SavedPalette) (models.SavedPalette, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.palettes[saved.ID] = saved
	return saved, nil
}

func (m *MemoryStore) Get(id string) (models.SavedPalette, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	saved, ok := m.palettes[id]
	if !ok {
		return models.SavedPalette{}, NoRowsError{true, sql.ErrNoRows}
	}
	return saved, nil
}

func (m *MemoryStore) List(limit int) ([]models.SavedPalette, error) {
	m.mu.RLock()
	palettes := make([]models.SavedPalette, 0, len(m.palettes))
	for _, saved := range m.palettes {
		palettes = append(palettes, saved)
	}
	m.mu.RUnlock()

	sort.Slice(palettes, func(i, j int) bool {
		if palettes[i].CreatedAt.Equal(palettes[j].CreatedAt) {
			return palettes[i].ID < palettes[j].ID
		}
		return palettes[i].CreatedAt.After(palettes[j].CreatedAt)
	})

	if limit = ClampLimit(limit); len(palettes) > limit {
		palettes = palettes[:limit]
	}
	return palettes, nil
}

func (m *MemoryStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.palettes[id]; !ok {
		return NoRowsError{true, sql.ErrNoRows}
	}
	delete(m.palettes, id)
	return nil
}

func (m *MemoryStore) Upsert(daily models.DailyPalette) (models.DailyPalette, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	daily.Date = NormalizeDate(daily.Date)
	key := dateKey(daily.Date)
	if existing, ok := m.daily[key]; ok {
		daily.ID = existing.ID
	} else {
		m.nextID++
		daily.ID = m.nextID
	}
	m.daily[key] = daily
	return daily, nil
}

func (m *MemoryStore) GetByDate(date time.Time) (models.DailyPalette, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	daily, ok := m.daily[dateKey(date)]
	if !ok {
		return models.DailyPalette{}, NoRowsError{true, sql.ErrNoRows}
	}
	return daily, nil
}

func (m *MemoryStore) GetToday() (models.DailyPalette, error) {
	return m.GetByDate(time.Now())
}

func (m *MemoryStore) GetRecent(limit int) ([]models.DailyPalette, error) {
	m.mu.RLock()
	recent := make([]models.DailyPalette, 0, len(m.daily))
	for _, daily := range m.daily {
		recent = append(recent, daily)
	}
	m.mu.RUnlock()

	sort.Slice(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if limit = ClampLimit(limit); len(recent) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}

func dateKey(date time.Time) string {
	return date.Format("2006-01-02")
}
