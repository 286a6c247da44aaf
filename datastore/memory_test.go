package datastore

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/color-game/palette-studio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ PaletteRepository      = (*MemoryStore)(nil)
	_ DailyPaletteRepository = (*MemoryStore)(nil)
	_ PaletteRepository      = PaletteDatabase{}
	_ DailyPaletteRepository = DailyPaletteDatabase{}
)

func savedPalette(id string, created time.Time) models.SavedPalette {
	return models.SavedPalette{
		ID:        id,
		Palette:   models.Palette{ID: id, Name: "Ocean Breeze"},
		CreatedAt: created,
	}
}

func TestMemoryStorePalettes(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()

	_, err := store.Create(savedPalette("a", now.Add(-time.Hour)))
	require.NoError(t, err)
	_, err = store.Create(savedPalette("b", now))
	require.NoError(t, err)

	got, err := store.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "Ocean Breeze", got.Palette.Name)

	list, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID, "newest first")

	require.NoError(t, store.Delete("a"))
	_, err = store.Get("a")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.ErrorIs(t, store.Delete("a"), ErrNotFound)
}

func TestMemoryStoreListLimit(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()
	for i := 0; i < MaxListLimit+5; i++ {
		_, err := store.Create(savedPalette(fmt.Sprintf("p%03d", i), now.Add(time.Duration(i)*time.Second)))
		require.NoError(t, err)
	}

	list, err := store.List(3)
	require.NoError(t, err)
	assert.Len(t, list, 3)
	assert.Equal(t, fmt.Sprintf("p%03d", MaxListLimit+4), list[0].ID)

	list, err = store.List(1000)
	require.NoError(t, err)
	assert.Len(t, list, MaxListLimit)
}

func TestMemoryStoreDaily(t *testing.T) {
	store := NewMemoryStore()
	morning := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	first, err := store.Upsert(models.DailyPalette{Date: morning, BaseHex: "#111111"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 0, first.Date.Hour())

	replaced, err := store.Upsert(models.DailyPalette{Date: morning.Add(5 * time.Hour), BaseHex: "#222222"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, replaced.ID)

	got, err := store.GetByDate(morning)
	require.NoError(t, err)
	assert.Equal(t, "#222222", got.BaseHex)

	_, err = store.GetByDate(morning.AddDate(0, 0, 1))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Upsert(models.DailyPalette{Date: morning.AddDate(0, 0, -1), BaseHex: "#333333"})
	require.NoError(t, err)
	recent, err := store.GetRecent(10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "#222222", recent[0].BaseHex)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, ClampLimit(0))
	assert.Equal(t, DefaultListLimit, ClampLimit(-4))
	assert.Equal(t, 7, ClampLimit(7))
	assert.Equal(t, MaxListLimit, ClampLimit(MaxListLimit+1))
}

func TestBuildDBConnStr(t *testing.T) {
	assert.Equal(t,
		"postgres://studio:secret@db:5432/palettes?sslmode=disable",
		BuildDBConnStr("db:5432", "secret", "studio", "palettes", "disable"))
}
